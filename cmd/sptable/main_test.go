// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/sptable/internal/config"
	"github.com/katalvlaran/sptable/samples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anomalousCSV = "id,Q1,Q2,Q3,Q4\nann,1,1,1,0\nbob,0,0,1,1\ncid,1,0,0,0\n"

func runCmd(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCmd(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage: sptable")

	code, _, stderr = runCmd(t, "", "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Unknown command: frobnicate")

	code, stdout, _ := runCmd(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "sptable version "+version+"\n", stdout)

	code, _, _ = runCmd(t, "", "analyze", "-h")
	assert.Equal(t, 0, code)
}

func TestRun_Sample(t *testing.T) {
	code, stdout, _ := runCmd(t, "", "sample", "-list")
	require.Equal(t, 0, code)
	for _, name := range samples.Names() {
		assert.Contains(t, stdout, name)
	}

	code, stdout, _ = runCmd(t, "", "sample", "-name", "small")
	require.Equal(t, 0, code)
	assert.Equal(t, samples.CSV(samples.Small()), stdout)

	out := filepath.Join(t.TempDir(), "medium.csv")
	code, _, _ = runCmd(t, "", "sample", "-name", "medium", "-out", out)
	require.Equal(t, 0, code)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, samples.CSV(samples.Medium()), string(data))

	code, _, stderr := runCmd(t, "", "sample", "-name", "huge")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "huge")
}

func TestRun_Analyze(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "quiz.csv")
	require.NoError(t, os.WriteFile(in, []byte(anomalousCSV), 0o600))
	out := filepath.Join(dir, "reports")

	code, stdout, stderr := runCmd(t, "", "analyze", "-format", "csv,json", "-chart", "html", "-out", out, in)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "3 students × 4 problems (standard), D*=0.4286")

	for _, name := range []string{"quiz-sp.csv", "quiz-sp.json", "quiz-sp.html"} {
		assert.FileExists(t, filepath.Join(out, name))
		assert.Contains(t, stdout, filepath.Join(out, name))
	}
}

func TestRun_AnalyzeStdinAndSample(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.csv")
	require.NoError(t, os.WriteFile(small, []byte(samples.CSV(samples.Small())), 0o600))

	code, stdout, stderr := runCmd(t, anomalousCSV, "analyze", "-format", "xlsx", "-out", dir, "-strategy", "naive", "-", small)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4, "summary and path per input, in input order")
	assert.True(t, strings.HasPrefix(lines[0], "-: "))
	assert.True(t, strings.HasPrefix(lines[2], small+": 5 students × 5 problems"))
	assert.Contains(t, lines[2], "D*=0.0000")
	assert.FileExists(t, filepath.Join(dir, "stdin-sp.xlsx"))
	assert.FileExists(t, filepath.Join(dir, "small-sp.xlsx"))
}

func TestRun_AnalyzeErrors(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCmd(t, "", "analyze")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "no input files")

	code, _, stderr = runCmd(t, "", "analyze", "-out", dir, filepath.Join(dir, "missing.csv"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing.csv")

	code, _, stderr = runCmd(t, "id,Q1\nann,maybe\n", "analyze", "-out", dir, "-")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "ingest:")

	code, _, stderr = runCmd(t, anomalousCSV, "analyze", "-format", "pdf", "-out", dir, "-")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "pdf")

	code, _, _ = runCmd(t, anomalousCSV, "analyze", "-layout", "sideways", "-out", dir, "-")
	assert.Equal(t, 1, code)
}

func TestRun_AnalyzeRejectsCollidingReports(t *testing.T) {
	dir := t.TempDir()
	var inputs []string
	for _, sub := range []string{"a", "b"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
		in := filepath.Join(dir, sub, "x.csv")
		require.NoError(t, os.WriteFile(in, []byte(anomalousCSV), 0o600))
		inputs = append(inputs, in)
	}
	out := filepath.Join(dir, "reports")

	args := append([]string{"analyze", "-format", "csv", "-out", out}, inputs...)
	code, stdout, stderr := runCmd(t, "", args...)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "both write x-sp.*")
	assert.NoFileExists(t, filepath.Join(out, "x-sp.csv"), "nothing is written when reports collide")
}

func TestRun_ServeStopsOnCancel(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"serve", "-addr", "127.0.0.1:0"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
}
