// SPDX-License-Identifier: MIT
// Package: thetanav/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with `%w` by builderErrorf.
//   • Rasterize MUST NOT panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadGround indicates a ground whose size is non-positive, NaN or infinite.
// Usage: if errors.Is(err, ErrBadGround) { /* fix the scene */ }.
var ErrBadGround = errors.New("builder: invalid ground")

// ErrGridTooLarge indicates that the lattice would exceed MaxCells nodes.
// Usage: if errors.Is(err, ErrGridTooLarge) { /* raise NodeDistance */ }.
var ErrGridTooLarge = errors.New("builder: grid too large")

// builderErrorf wraps sentinel with method context and a formatted detail:
// "<method>: <sentinel>: <detail>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
