// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_strip.go: implementation of TriangleStrip(n) constructor.
//
// Canonical model:
//   • Two rails in the z=0 plane: bottom b_j = (j, 0, 0), top t_j = (j, 1, 0).
//   • Triangle k, with j = k/2, is
//       even k: b_j → b_{j+1} → t_j
//       odd  k: b_{j+1} → t_{j+1} → t_j
//     so consecutive triangles share one diagonal or rung.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Vertex order: bottom rail then top rail; only used rail points are
//     added, n+2 vertices in total.
//   • n-1 interior edges, n+2 boundary edges.
//
// Complexity:
//   • Time: O(n). Space: O(n).

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// TriangleStrip returns a Constructor that builds a strip of n triangles.
func TriangleStrip(n int) Constructor {
	return func(m *hbr.Mesh, cfg builderConfig) error {
		if err := validateMin(MethodTriangleStrip, "n", n, MinStripTriangles); err != nil {
			return err
		}

		bottom, top := (n+1)/2+1, n/2+1
		pts := make([]r3.Vec, 0, bottom+top)
		for j := 0; j < bottom; j++ {
			pts = append(pts, r3.Vec{X: float64(j)})
		}
		for j := 0; j < top; j++ {
			pts = append(pts, r3.Vec{X: float64(j), Y: 1})
		}
		verts := addVertices(m, cfg, pts)

		b := func(j int) int { return j }
		t := func(j int) int { return bottom + j }
		loops := make([][]int, n)
		for k := range loops {
			j := k / 2
			if k%2 == 0 {
				loops[k] = []int{b(j), b(j + 1), t(j)}
			} else {
				loops[k] = []int{b(j + 1), t(j + 1), t(j)}
			}
		}

		_, err := emitFaces(m, cfg, MethodTriangleStrip, verts, loops)
		return err
	}
}
