// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with errors.Wrapf; hbr sentinels raised
//     while emitting faces pass through unchanged underneath that context.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"github.com/pkg/errors"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not emit its
// topology: a nil constructor, an unknown solid, or a face rejected by the
// mesh (the hbr cause stays reachable through errors.Is).
var ErrConstructFailed = errors.New("builder: construction failed")
