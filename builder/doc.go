// Package builder provides reusable “functional-options”-style fixtures for
// hbr meshes: deterministic control meshes for tests, examples and the
// hbrdump tool.
//
// The package offers the following key components:
//
//   - Orchestration:
//     - BuildMesh(mopts, bopts, cons...): creates an hbr.Mesh and applies
//     Constructors in order.
//     - Constructor: func(*hbr.Mesh, builderConfig) error.
//   - Topology factories:
//     - Polygon(n):           one regular n-gon (overflow edge block for n > 4).
//     - QuadGrid(rows, cols): an open sheet of quads.
//     - TriangleStrip(n):     a strip of n triangles between two rails.
//     - PlatonicSolid(name), Cube(), Tetrahedron(): closed shells.
//   - Configuration primitives (BuilderOption):
//     - WithScale, WithOrigin: geometry transform of canonical positions.
//     - WithPlanarUV:          continuous facevarying data from x/y.
//     - WithCreaseAll:         uniform edge sharpness.
//   - Shared constants:
//     - MinPolygonVertices, MinGridDim, MinStripTriangles.
//     - MethodPolygon, MethodQuadGrid, … tokens for error context.
//
// Guarantees:
//
//   - Consistent winding: every interior edge of a fixture is paired exactly once.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices, ErrConstructFailed)
//     wrapped with the method name.
//
// Example:
//
//	m, err := builder.BuildMesh(
//		[]hbr.MeshOption{hbr.WithFVarWidths(2)},
//		[]builder.BuilderOption{builder.WithPlanarUV()},
//		builder.QuadGrid(2, 3),
//	)
package builder
