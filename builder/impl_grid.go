// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go: implementation of QuadGrid(rows, cols) constructor.
//
// Canonical model:
//   • A rows×cols sheet of unit quads in the z=0 plane.
//   • Lattice vertex (r,c) sits at (c, r, 0) with index r*(cols+1)+c
//     (row-major over (rows+1)×(cols+1) lattice points).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Quad (r,c) is (r,c) → (r,c+1) → (r+1,c+1) → (r+1,c), counter-clockwise.
//   • Interior edges are paired; 2*(rows+cols) boundary edges remain.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(rows*cols) for the index loops.
//
// Determinism:
//   • Stable vertex order: row-major (r asc, then c asc).
//   • Stable face order: row-major, so face (r,c) has path r*cols+c (in a
//     fresh mesh).

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// QuadGrid returns a Constructor that builds a rows×cols quad sheet.
func QuadGrid(rows, cols int) Constructor {
	return func(m *hbr.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodQuadGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodQuadGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		stride := cols + 1
		pts := make([]r3.Vec, 0, (rows+1)*stride)
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				pts = append(pts, r3.Vec{X: float64(c), Y: float64(r)})
			}
		}
		verts := addVertices(m, cfg, pts)

		at := func(r, c int) int { return r*stride + c }
		loops := make([][]int, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				loops = append(loops, []int{at(r, c), at(r, c+1), at(r+1, c+1), at(r+1, c)})
			}
		}

		_, err := emitFaces(m, cfg, MethodQuadGrid, verts, loops)
		return err
	}
}
