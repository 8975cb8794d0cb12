// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/katalvlaran/sptable/chart"
	"github.com/katalvlaran/sptable/export"
	"github.com/katalvlaran/sptable/ingest"
	"github.com/katalvlaran/sptable/sptable"
	"golang.org/x/sync/errgroup"
)

// stdinName selects standard input as a CSV source.
const stdinName = "-"

// analyzeJob is the outcome of one input file.
type analyzeJob struct {
	input  string
	layout ingest.Layout
	result *sptable.Result
	paths  []string
}

func runAnalyze(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	formats := fs.String("format", "", "comma-separated report formats: csv, xlsx, json (default from config)")
	chartKind := fs.String("chart", "", "also draw the S-P chart: html or png (default from config)")
	outDir := fs.String("out", "", "output directory (default from config)")
	layoutName := fs.String("layout", "auto", "input layout: auto, standard or transposed")
	sheet := fs.String("sheet", "", "worksheet of XLSX inputs (default first sheet)")
	strategy := fs.String("strategy", "", "caution index strategy: naive or prefix (default from config)")
	bom := fs.Bool("bom", false, "prefix CSV reports with a UTF-8 BOM")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no input files (use - for standard input)")
	}
	if err := checkReportBases(fs.Args()); err != nil {
		return err
	}

	cfg, logger, err := loadConfig(*configPath, stderr)
	if err != nil {
		return err
	}
	if *formats != "" {
		cfg.Export.Formats = strings.Split(*formats, ",")
	}
	if *chartKind != "" {
		cfg.Export.Chart = *chartKind
	}
	if *outDir != "" {
		cfg.Export.Dir = *outDir
	}
	if *bom {
		cfg.Export.BOM = true
	}
	if *strategy != "" {
		cfg.Analysis.Strategy = *strategy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	layout, err := ingest.ParseLayout(*layoutName)
	if err != nil {
		return err
	}

	inOpts := []ingest.Option{ingest.WithLayout(layout), ingest.WithLogger(logger)}
	outOpts := []export.Option{export.WithBOM(cfg.Export.BOM), export.WithLogger(logger)}
	analysisOpts := cfg.Analysis.Options()
	reportFormats := cfg.Export.ExportFormats()

	jobs := make([]analyzeJob, fs.NArg())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, input := range fs.Args() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parsed, err := readInput(input, stdin, *sheet, inOpts)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			res, err := sptable.Analyze(parsed.Raw, analysisOpts...)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}

			job := analyzeJob{input: input, layout: parsed.Layout, result: res}
			base := reportBase(input)
			for _, f := range reportFormats {
				path, err := export.SaveFile(cfg.Export.Dir, base, f, res, outOpts...)
				if err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
				job.paths = append(job.paths, path)
			}
			if cfg.Export.Chart != "" {
				path, err := saveChart(cfg.Export.Dir, base, cfg.Export.Chart, res)
				if err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
				job.paths = append(job.paths, path)
			}

			logger.Info("table analyzed",
				slog.String("input", input),
				slog.String("layout", parsed.Layout.String()),
				slog.Int("students", res.Summary.StudentCount),
				slog.Int("problems", res.Summary.ProblemCount),
				slog.Float64("disparity", res.Disparity))
			jobs[i] = job
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, job := range jobs {
		s := job.result.Summary
		fmt.Fprintf(stdout, "%s: %d students × %d problems (%s), D*=%.4f, KR-20=%s, caution students=%d problems=%d\n",
			job.input, s.StudentCount, s.ProblemCount, job.layout, job.result.Disparity, s.Reliability,
			s.CautionStudents, s.CautionProblems)
		for _, p := range job.paths {
			fmt.Fprintf(stdout, "  wrote %s\n", p)
		}
	}

	return nil
}

// readInput parses a CSV or XLSX file, or CSV from stdin for "-".
func readInput(input string, stdin io.Reader, sheet string, opts []ingest.Option) (*ingest.Parsed, error) {
	if input == stdinName {
		return ingest.ParseCSV(stdin, opts...)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(input), ".xlsx") {
		return ingest.ReadXLSX(f, sheet, opts...)
	}

	return ingest.ParseCSV(f, opts...)
}

// reportBase derives the report file name stem from an input path.
func reportBase(input string) string {
	if input == stdinName {
		return "stdin-sp"
	}
	name := filepath.Base(input)

	return strings.TrimSuffix(name, filepath.Ext(name)) + "-sp"
}

// checkReportBases rejects inputs whose reports would land on the same files.
func checkReportBases(inputs []string) error {
	seen := make(map[string]string, len(inputs))
	for _, input := range inputs {
		base := reportBase(input)
		if prev, ok := seen[base]; ok {
			return fmt.Errorf("inputs %s and %s both write %s.*; rename one or run them separately", prev, input, base)
		}
		seen[base] = input
	}

	return nil
}

// saveChart writes the S-P chart next to the reports.
func saveChart(dir, base, kind string, res *sptable.Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	path := filepath.Join(dir, base+"."+kind)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}

	title := strings.TrimSuffix(base, "-sp")
	switch kind {
	case "png":
		err = chart.WritePNG(file, res.Curves, title, 0, 0)
	default:
		err = chart.WriteHTML(file, res.Curves, title)
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}

	return path, nil
}
