// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_polygon.go: implementation of Polygon(n) constructor.
//
// Canonical model:
//   • One regular n-gon inscribed in the unit circle of the z=0 plane.
//   • Vertex i sits at angle 2πi/n, so the loop winds counter-clockwise.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Faces with n > 4 exercise the overflow edge block.
//   • All n edges are boundaries.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the vertex slice.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// Polygon returns a Constructor that builds a single regular n-gon.
func Polygon(n int) Constructor {
	return func(m *hbr.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodPolygon, "n", n, MinPolygonVertices); err != nil {
			return err
		}

		pts := make([]r3.Vec, n)
		loop := make([]int, n)
		for i := range pts {
			theta := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
			loop[i] = i
		}
		verts := addVertices(m, cfg, pts)

		_, err := emitFaces(m, cfg, MethodPolygon, verts, [][]int{loop})
		return err
	}
}
