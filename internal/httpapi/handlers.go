// SPDX-License-Identifier: MIT

package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/katalvlaran/sptable/chart"
	"github.com/katalvlaran/sptable/export"
	"github.com/katalvlaran/sptable/ingest"
	"github.com/katalvlaran/sptable/samples"
	"github.com/katalvlaran/sptable/sptable"
)

// AnalyzeRequest is the body of POST /analyze and POST /analyze/chart.
type AnalyzeRequest struct {
	StudentIDs []string `json:"studentIds" validate:"required,dive,required"`
	ProblemIDs []string `json:"problemIds" validate:"required"`
	Matrix     [][]int  `json:"matrix" validate:"required,dive,dive,oneof=0 1"`
	Strategy   string   `json:"strategy,omitempty" validate:"omitempty,oneof=naive prefix"`
	Title      string   `json:"title,omitempty" validate:"max=200"`
}

func (req AnalyzeRequest) raw() sptable.Raw {
	return sptable.Raw{StudentIDs: req.StudentIDs, ProblemIDs: req.ProblemIDs, Matrix: req.Matrix}
}

// AnalyzeResponse wraps one Result with the identifier of the run.
type AnalyzeResponse struct {
	ID     uuid.UUID       `json:"id"`
	Source string          `json:"source"`
	Result *sptable.Result `json:"result"`
}

// SampleInfo describes one bundled sample.
type SampleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Students    int    `json:"students"`
	Problems    int    `json:"problems"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) handleSampleList(w http.ResponseWriter, r *http.Request) {
	all := samples.All()
	out := make([]SampleInfo, len(all))
	for i, smp := range all {
		out[i] = SampleInfo{
			Name:        smp.Name,
			Description: smp.Description,
			Students:    len(smp.Raw.StudentIDs),
			Problems:    len(smp.Raw.ProblemIDs),
		}
	}
	render.JSON(w, r, out)
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	smp, err := samples.ByName(chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.analyze("sample", smp.Raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, "sample:"+smp.Name, res)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	strategy, _ := strategyOption(req.Strategy)
	res, err := s.analyze("json", req.raw(), strategy...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, "json", res)
}

func (s *Server) handleAnalyzeCSV(w http.ResponseWriter, r *http.Request) {
	layout, err := ingest.ParseLayout(r.URL.Query().Get("layout"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	strategy, err := strategyOption(r.URL.Query().Get("strategy"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	parsed, err := ingest.ParseCSV(r.Body, ingest.WithLayout(layout), ingest.WithLogger(s.logger))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.analyze("csv", parsed.Raw, strategy...)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, "csv:"+parsed.Layout.String(), res)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	strategy, _ := strategyOption(req.Strategy)
	res, err := s.analyze("chart", req.raw(), strategy...)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	title := req.Title
	if title == "" {
		title = "S-P chart"
	}
	switch format := r.URL.Query().Get("format"); format {
	case "", "html":
		s.writeRendered(w, r, http.Header{"Content-Type": {"text/html; charset=utf-8"}}, func(out io.Writer) error {
			return chart.WriteHTML(out, res.Curves, title)
		})
	case "png":
		s.writeRendered(w, r, http.Header{"Content-Type": {"image/png"}}, func(out io.Writer) error {
			return chart.WritePNG(out, res.Curves, title, 0, 0)
		})
	default:
		s.fail(w, r, fmt.Errorf("%w: chart format %q", errBadQuery, format))
	}
}

// decode reads and validates an AnalyzeRequest.
func (s *Server) decode(r *http.Request) (AnalyzeRequest, error) {
	var req AnalyzeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	if err := s.validate.Struct(req); err != nil {
		return req, err
	}

	return req, nil
}

// analyze runs sptable.Analyze with the configured options followed by extra.
func (s *Server) analyze(source string, raw sptable.Raw, extra ...sptable.Option) (*sptable.Result, error) {
	opts := append(append([]sptable.Option(nil), s.analysis...), extra...)
	start := time.Now()
	res, err := sptable.Analyze(raw, opts...)
	s.metrics.observe(source, time.Since(start), len(raw.StudentIDs)*len(raw.ProblemIDs), err)

	return res, err
}

// respond writes res as the JSON envelope or, with ?format=, as an export
// document.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, source string, res *sptable.Result) {
	format := r.URL.Query().Get("format")
	if format == "" {
		render.JSON(w, r, AnalyzeResponse{ID: uuid.New(), Source: source, Result: res})
		return
	}

	f, err := export.ParseFormat(format)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	header := http.Header{
		"Content-Type":        {f.ContentType()},
		"Content-Disposition": {fmt.Sprintf("attachment; filename=%q", "sp-analysis"+f.Ext())},
	}
	s.writeRendered(w, r, header, func(out io.Writer) error {
		return export.Write(out, f, res, export.WithLogger(s.logger))
	})
}

// writeRendered runs render into memory and sends header and body only when
// it succeeds, so a failed render still answers with a clean error envelope.
func (s *Server) writeRendered(w http.ResponseWriter, r *http.Request, header http.Header, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.fail(w, r, err)
		return
	}

	for k, v := range header {
		w.Header()[k] = v
	}
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.WarnContext(r.Context(), "response write failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("error", err.Error()))
	}
}

// strategyOption maps a strategy name to an option; "" keeps the configured one.
func strategyOption(name string) ([]sptable.Option, error) {
	if name == "" {
		return nil, nil
	}
	st, err := sptable.ParseStrategy(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadQuery, err)
	}

	return []sptable.Option{sptable.WithStrategy(st)}, nil
}
