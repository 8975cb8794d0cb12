// SPDX-License-Identifier: MIT

// Command sptable analyzes student × problem response tables.
//
//	sptable analyze [flags] <file.csv|file.xlsx|->...
//	sptable sample  [flags]
//	sptable serve   [flags]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/sptable/internal/config"
)

const version = "0.3.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "analyze":
		err = runAnalyze(ctx, args[1:], stdin, stdout, stderr)
	case "sample":
		err = runSample(args[1:], stdout, stderr)
	case "serve":
		err = runServe(ctx, args[1:], stderr)
	case "version":
		fmt.Fprintf(stdout, "sptable version %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 2
	}

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	default:
		fmt.Fprintf(stderr, "sptable %s: %v\n", args[0], err)
		return 1
	}
}

// loadConfig loads path (or $SPTABLE_CONFIG) and builds the logger on stderr.
func loadConfig(path string, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	return cfg, cfg.Logging.NewLogger(stderr), nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `sptable - S-P table analysis

Usage: sptable <command> [options]

Commands:
  analyze    Analyze CSV or XLSX tables and write reports
  sample     Write a bundled sample table as CSV
  serve      Run the HTTP API
  version    Show the sptable version
  help       Show this help message

Common Flags:
  -config <file>   YAML configuration file (default $SPTABLE_CONFIG)

Environment variables prefixed with SPTABLE_ override the file, for example
SPTABLE_SERVER_ADDR=:9090 or SPTABLE_ANALYSIS_STRATEGY=naive.

Examples:
  sptable sample -name medium > class.csv
  sptable analyze -format csv,xlsx -chart html -out reports class.csv
  sptable serve -addr :9090
`)
}
