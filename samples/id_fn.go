// SPDX-License-Identifier: MIT

package samples

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates an identifier from a zero-based index.
// It must be pure and deterministic.
type IDFn func(idx int) string

// PaddedIDFn returns prefix + (idx+1) left-padded with zeros to width digits,
// e.g. PaddedIDFn("S", 3)(0) → "S001".
// Panics if width < 1.
func PaddedIDFn(prefix string, width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("PaddedIDFn: width must be ≥ 1, got %d", width))
	}
	format := prefix + "%0" + strconv.Itoa(width) + "d"

	return func(idx int) string {
		return fmt.Sprintf(format, idx+1)
	}
}

// NumberedIDFn returns prefix + (idx+1), e.g. "P1", "P2", ...
func NumberedIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx+1)
	}
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	var sb strings.Builder
	for k := len(runes) - 1; k >= 0; k-- {
		sb.WriteRune(runes[k])
	}

	return sb.String()
}

// idsOf materializes n identifiers.
func idsOf(fn IDFn, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}
