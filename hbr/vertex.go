package hbr

import (
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vertex is a mesh vertex at some refinement level.
//
// The vertex container owns the vertex. A half-edge that subdivided into this
// vertex only holds the authority to orphan or reassign the parent link.
type Vertex struct {
	id       int
	mesh     *Mesh
	position r3.Vec

	// parent is the half-edge this vertex was created from, or nil.
	parent *HalfEdge

	// maskValid is false until the subdivision strategy has computed the
	// vertex mask for the current sharpness configuration.
	maskValid bool
	// maskGen counts ClearMask calls.
	maskGen uint64
}

// ID returns the vertex index within its mesh.
func (v *Vertex) ID() int { return v.id }

// Mesh returns the owning mesh.
func (v *Vertex) Mesh() *Mesh { return v.mesh }

// Position returns the vertex position.
func (v *Vertex) Position() r3.Vec { return v.position }

// SetPosition moves the vertex and invalidates its mask.
func (v *Vertex) SetPosition(p r3.Vec) {
	v.position = p
	v.ClearMask()
}

// ParentEdge returns the half-edge whose subdivision produced v, or nil.
func (v *Vertex) ParentEdge() *HalfEdge { return v.parent }

// SetParent sets or clears the parent link. Moving the link from one
// half-edge to another requires clearing it first; doing it in one step
// panics with ErrParentReassign.
func (v *Vertex) SetParent(e *HalfEdge) {
	if e != nil && v.parent != nil && v.parent != e {
		panic(errors.Wrapf(ErrParentReassign, "%s: held by %s, requested by %s", v, v.parent, e))
	}
	v.parent = e
}

// ClearMask invalidates the cached subdivision mask.
func (v *Vertex) ClearMask() {
	v.maskValid = false
	v.maskGen++
}

// MaskGeneration returns how many times the mask has been invalidated.
func (v *Vertex) MaskGeneration() uint64 { return v.maskGen }

// ValidateMask records that the strategy has recomputed the mask.
func (v *Vertex) ValidateMask() { v.maskValid = true }

// MaskValid reports whether the cached mask is current.
func (v *Vertex) MaskValid() bool { return v.maskValid }

// String renders the vertex as "v<id>".
func (v *Vertex) String() string { return "v" + strconv.Itoa(v.id) }
