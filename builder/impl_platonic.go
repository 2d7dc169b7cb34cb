// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_platonic.go: implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {SolidTetrahedron, SolidCube, SolidOctahedron}; unknown name → ErrConstructFailed.
//   • Adds vertices in canonical index order, then faces in canonical order.
//   • The result is closed: no boundary edges.
//
// Complexity:
//   • Time: O(V+F) for the selected solid (V≤8, F≤8).

package builder

import (
	"github.com/pkg/errors"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// PlatonicSolid returns a Constructor that builds the chosen closed shell.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *hbr.Mesh, cfg builderConfig) error {
		solid, ok := platonicSolids[name]
		if !ok {
			return errors.Wrapf(ErrConstructFailed, "%s: unknown solid %v", MethodPlatonicSolid, name)
		}
		verts := addVertices(m, cfg, solid.positions)
		_, err := emitFaces(m, cfg, MethodPlatonicSolid, verts, solid.faces)
		return err
	}
}

// Cube builds the unit cube with six quads.
func Cube() Constructor { return PlatonicSolid(SolidCube) }

// Tetrahedron builds the corner tetrahedron with four triangles.
func Tetrahedron() Constructor { return PlatonicSolid(SolidTetrahedron) }
