// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before mesh construction begins.
type BuilderOption func(*builderConfig)

// WithScale multiplies every canonical position by s.
// Panics if s <= 0 or s is not finite.
func WithScale(s float64) BuilderOption {
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOrigin translates every canonical position by o (after scaling).
func WithOrigin(o r3.Vec) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithPlanarUV writes each corner's placed x/y into every facevarying channel
// of the mesh. Corners sharing a vertex get identical values, so the data is
// continuous across every interior edge.
func WithPlanarUV() BuilderOption {
	return func(c *builderConfig) {
		c.planarUV = true
	}
}

// WithCreaseAll sets sharpness s on every edge the constructor emits.
// Panics if s < 0 or s is NaN.
func WithCreaseAll(s float32) BuilderOption {
	if s < 0 || math.IsNaN(float64(s)) {
		panic("builder: WithCreaseAll(s<0)")
	}
	return func(c *builderConfig) {
		c.crease = s
		c.hasCrease = true
	}
}
