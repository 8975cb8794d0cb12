// SPDX-License-Identifier: MIT
// Package: sptable/samples
//
// errors.go: sentinel errors for the samples package.
// Callers branch with errors.Is; context is attached with %w.

package samples

import (
	"errors"
	"fmt"
)

// ErrTooFew indicates a negative student or problem count.
var ErrTooFew = errors.New("samples: count must be ≥ 0")

// ErrBadRange indicates a base/span pair that leaves [0,1].
var ErrBadRange = errors.New("samples: range outside [0,1]")

// ErrUnknownSample indicates ByName was given a name that is not bundled.
var ErrUnknownSample = errors.New("samples: unknown sample")

// samplesErrorf attaches the method name to err.
func samplesErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
