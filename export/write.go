// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sptable/sptable"
)

// Write encodes res in format f.
func Write(w io.Writer, f Format, res *sptable.Result, opts ...Option) error {
	switch f {
	case CSV:
		return WriteCSV(w, res, opts...)
	case XLSX:
		return WriteXLSX(w, res, opts...)
	case JSON:
		return WriteJSON(w, res, opts...)
	default:
		return fmt.Errorf("Write: %s: %w", f, ErrUnknownFormat)
	}
}

// SaveFile writes res to dir/<base><ext>, creating dir when needed, and
// returns the path written.
func SaveFile(dir, base string, f Format, res *sptable.Result, opts ...Option) (string, error) {
	if _, err := ParseFormat(f.String()); err != nil {
		return "", fmt.Errorf("SaveFile: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, base+f.Ext())
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	if err := Write(file, f, res, opts...); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}

	newOptions(opts...).logger.Info("export: file saved",
		slog.String("path", path),
		slog.String("format", f.String()))

	return path, nil
}
