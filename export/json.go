// SPDX-License-Identifier: MIT

package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/katalvlaran/sptable/sptable"
)

// document is the JSON export: the result plus an export timestamp.
type document struct {
	*sptable.Result
	ExportedAt time.Time `json:"exportedAt"`
}

// WriteJSON writes res as indented JSON with an "exportedAt" RFC 3339 timestamp.
func WriteJSON(w io.Writer, res *sptable.Result, opts ...Option) error {
	o := newOptions(opts...)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(document{Result: res, ExportedAt: o.now().UTC()})
}
