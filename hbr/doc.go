// Package hbr is the topology core of a hierarchical subdivision-surface
// engine: a polygonal control mesh made of directed half-edges that is refined
// level by level.
//
// The mesh G = (V, F) is stored as:
//
//   - Faces, each owning a contiguous, never-relocated block of N half-edges
//     (an inline block for triangles and quads, an overflow block otherwise).
//   - Vertices, each carrying a position, a subdivision-mask validity flag and
//     a parent link to the half-edge that produced it during refinement.
//   - A Mesh registry holding facevarying channel metadata and the pluggable
//     Subdivision strategy.
//
// Half-edges:
//
//	- Adjacency without links
//	    Next/Previous/Index are pure functions of the edge's slot in its face
//	    block and the first/last-in-face flags.
//
//	- Shared state between opposites
//	    Two paired half-edges share one token holding the edge sharpness and
//	    the single child vertex. Sharpness is mirrored by construction and a
//	    geometric edge can never own two children.
//
//	- Child ownership
//	    Authority over a child vertex is its parent link. Clear transfers it to
//	    the opposite (orphan, then reassign) or orphans the child when the edge
//	    is a boundary.
//
//	- Facevarying sharpness
//	    FVarInfiniteSharp lazily decides, per channel, whether facevarying data
//	    disagrees across the edge (tolerance FVarTolerance) and caches the
//	    verdict on both sides in the faces' fvarsharp tables.
//
// Core methods:
//
//	// Mesh
//	NewMesh(opts ...MeshOption) *Mesh
//	NewVertex(pos r3.Vec) *Vertex
//	NewFace(verts []*Vertex, opts ...FaceOption) (*Face, error)
//	DeleteFace(f *Face) error
//	Clear()
//
//	// HalfEdge traversal
//	Next(), Previous(), Index(), OriginVertex(), DestinationVertex()
//	LeftFace(), RightFace(), IsBoundary()
//
//	// HalfEdge lifecycle
//	SetOpposite(o) error, Clear(), Subdivide() (*Vertex, error)
//	RemoveChild(), GuaranteeNeighbor() error
//
//	// Sharpness
//	SetSharpness(v) error, IsSharp(next), FVarInfiniteSharp(ch) (bool, error)
//	FVarSharpness(ch, ignoreGeometry) (float32, error)
//
// Concurrency:
//
//	None of the types are safe for concurrent mutation. Refinement is expected
//	to run one mesh level at a time on one goroutine. Subdivide's
//	check-then-create and the facevarying cache read-modify-write both race if
//	two goroutines touch edges sharing a face or an opposite pairing.
//
// Errors:
//
//	ErrChannelOutOfRange  - facevarying channel outside [0, FVarCount)
//	ErrCornerOutOfRange   - face corner outside [0, NumVertices)
//	ErrFVarWidth          - facevarying value slice of the wrong width
//	ErrNegativeSharpness  - negative or NaN sharpness
//	ErrNoSubdivision      - mesh has no Subdivision strategy
//	ErrNilChild           - strategy produced no vertex
//	ErrChildConflict      - SetOpposite would join two different children
//	ErrInvalidOpposite    - SetOpposite with an edge that does not run backwards
//	ErrTooFewVertices     - face with fewer than 3 vertices
//	ErrNilVertex          - nil vertex passed to NewFace
//	ErrForeignVertex      - vertex from another mesh
//	ErrDuplicateVertex    - vertex repeated inside one face
//	ErrNonManifoldEdge    - directed edge already used, or edge already paired
//	ErrDuplicatePath      - child face path already registered
//	ErrFaceNotFound       - face not part of this mesh
//	ErrParentReassign     - parent link overwritten without orphaning (panic)
//	ErrBrokenLoop         - face loop does not contain an edge endpoint (panic)
package hbr
