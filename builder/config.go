// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • scale     = 1.0
//   • origin    = (0,0,0)
//   • planarUV  = false (facevarying values stay zero)
//   • crease    = none  (every edge smooth)

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Geometry transform applied to canonical positions: p*scale + origin.
	scale  float64
	origin r3.Vec

	// planarUV fills every facevarying channel with the corner's x/y.
	planarUV bool

	// crease is applied to every edge of every emitted face when hasCrease.
	crease    float32
	hasCrease bool
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultScale = 1.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale: defaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// place maps a canonical position into the configured frame.
func (c builderConfig) place(p r3.Vec) r3.Vec {
	return r3.Add(r3.Scale(c.scale, p), c.origin)
}

// uvFor returns the facevarying values of one corner for a channel of the
// given width: x and y of the placed position, zero-padded or truncated.
func (c builderConfig) uvFor(v *hbr.Vertex, width int) []float32 {
	vals := make([]float32, width)
	p := v.Position()
	for i, x := range []float64{p.X, p.Y} {
		if i < width {
			vals[i] = float32(x)
		}
	}
	return vals
}
