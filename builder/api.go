// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical meshes
//     (vertex IDs, face paths, facevarying values).
//   - Constructors never panic; they return sentinel errors. Option constructors panic.

package builder

import (
	"github.com/pkg/errors"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// Constructor applies a deterministic mesh mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices before faces, and faces in a stable, documented order.
//   - Apply the config's geometry transform, UV and crease policies to what they add.
type Constructor func(m *hbr.Mesh, cfg builderConfig) error

// BuildMesh creates a new hbr.Mesh with mesh options mopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Constructors share the mesh, so composing two shapes that touch the same
// vertices is not possible; each constructor adds its own vertices.
//
// Errors:
//   - Wraps constructor errors with "BuildMesh"; callers should branch with
//     errors.Is against builder sentinels (ErrTooFewVertices, ErrConstructFailed)
//     or hbr sentinels surfaced by face creation.
func BuildMesh(mopts []hbr.MeshOption, bopts []BuilderOption, cons ...Constructor) (*hbr.Mesh, error) {
	m := hbr.NewMesh(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildMesh: nil constructor at index %d", i)
		}
		if err := fn(m, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildMesh")
		}
	}
	return m, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices in ascending index order (vertex IDs follow).
//   - Emit faces in a stable, documented order with consistent winding, so
//     every interior edge is paired exactly once.
//   - Return only sentinel errors; NEVER panic at runtime.

// Polygon builds a single regular n-gon (n ≥ 3) in the z=0 plane.
// Complexity: O(n).
//func Polygon(n int) Constructor

// QuadGrid builds a rows×cols sheet of unit quads (rows, cols ≥ 1).
// Complexity: O(rows*cols).
//func QuadGrid(rows, cols int) Constructor

// TriangleStrip builds a strip of n triangles (n ≥ 1) between two rails.
// Complexity: O(n).
//func TriangleStrip(n int) Constructor

// PlatonicSolid builds a closed Platonic shell (Tetrahedron, Cube, Octahedron).
// Complexity: O(V+F) for the chosen solid.
//func PlatonicSolid(name PlatonicName) Constructor

// Cube and Tetrahedron are shorthands for PlatonicSolid.
//func Cube() Constructor
//func Tetrahedron() Constructor
