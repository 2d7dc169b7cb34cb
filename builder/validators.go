// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns ErrTooFewVertices wrapped with the method context
// when its precondition is violated.
package builder

import (
	"github.com/pkg/errors"
)

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <name>=<got> < min=<min>: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return errors.Wrapf(ErrTooFewVertices, "%s: %s=%d < min=%d", method, name, got, min)
	}
	return nil
}
