// SPDX-License-Identifier: MIT
// Package: builder
//
// variants_platonic.go: canonical data for closed Platonic shells.
//
// Design:
//   • Single source of truth for each solid: canonical positions and face loops.
//   • Face loops wind counter-clockwise seen from outside, so every directed
//     edge is used exactly once and every edge is paired.
//   • Datasets are package-level literals and never mutated.
//
// AI-Hints:
//   • Extend with new solids by adding an enum value and a platonicSolid entry;
//     existing datasets are part of the public contract (vertex IDs, face paths).

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// PlatonicName enumerates the supported Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case SolidTetrahedron:
		return "Tetrahedron"
	case SolidCube:
		return "Cube"
	case SolidOctahedron:
		return "Octahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	SolidTetrahedron PlatonicName = iota // V=4, E=6,  F=4
	SolidCube                            // V=8, E=12, F=6
	SolidOctahedron                      // V=6, E=12, F=8
)

// platonicSolid is the canonical embedding of one solid.
type platonicSolid struct {
	positions []r3.Vec
	faces     [][]int
}

var platonicSolids = map[PlatonicName]platonicSolid{
	SolidTetrahedron: {
		positions: []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}},
		faces:     [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}},
	},
	SolidCube: {
		positions: []r3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		faces: [][]int{
			{0, 3, 2, 1}, // bottom
			{4, 5, 6, 7}, // top
			{0, 1, 5, 4}, // front
			{2, 3, 7, 6}, // back
			{0, 4, 7, 3}, // left
			{1, 2, 6, 5}, // right
		},
	},
	SolidOctahedron: {
		positions: []r3.Vec{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		},
		faces: [][]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	},
}
