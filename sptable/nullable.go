// SPDX-License-Identifier: MIT

package sptable

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// NotComputable is the marker rendered for a null value.
const NotComputable = "n/a"

// NullFloat is a real number that may be absent.
//
// A caution index is null exactly when its denominator is zero; that is an
// expected outcome, not an error. NullFloat keeps "absent" out of the float
// domain entirely: it is never encoded as 0 or NaN, so arithmetic on a null
// value cannot leak into thresholds or averages.
//
// The zero value is null.
type NullFloat struct {
	v     float64
	valid bool
}

// Float returns a present NullFloat holding v.
func Float(v float64) NullFloat { return NullFloat{v: v, valid: true} }

// Null returns an absent NullFloat.
func Null() NullFloat { return NullFloat{} }

// Get returns the value and whether it is present.
func (n NullFloat) Get() (float64, bool) { return n.v, n.valid }

// IsNull reports whether the value is absent.
func (n NullFloat) IsNull() bool { return !n.valid }

// AtLeast reports whether the value is present and ≥ threshold.
// A null value is never at least anything.
func (n NullFloat) AtLeast(threshold float64) bool { return n.valid && n.v >= threshold }

// Format renders the value with prec decimals, or NotComputable when null.
func (n NullFloat) Format(prec int) string {
	if !n.valid {
		return NotComputable
	}

	return strconv.FormatFloat(n.v, 'f', prec, 64)
}

// String implements fmt.Stringer (4 decimals, or NotComputable).
func (n NullFloat) String() string { return n.Format(4) }

// MarshalJSON encodes a null value as JSON null.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}

	return json.Marshal(n.v)
}

// UnmarshalJSON accepts a JSON number or null.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = NullFloat{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Float(v)

	return nil
}
