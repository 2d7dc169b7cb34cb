// SPDX-License-Identifier: MIT
// Package: hbr
//
// types.go - sentinel errors, sharpness constants and mesh/face options.

package hbr

import (
	"github.com/pkg/errors"
)

// Sentinel errors for half-edge topology operations.
var (
	// ErrChannelOutOfRange indicates a facevarying channel index outside [0, FVarCount).
	ErrChannelOutOfRange = errors.New("hbr: facevarying channel out of range")

	// ErrCornerOutOfRange indicates a face corner index outside [0, NumVertices).
	ErrCornerOutOfRange = errors.New("hbr: face corner out of range")

	// ErrFVarWidth indicates facevarying values whose length differs from the channel width.
	ErrFVarWidth = errors.New("hbr: facevarying value width mismatch")

	// ErrNegativeSharpness indicates a negative or NaN sharpness.
	ErrNegativeSharpness = errors.New("hbr: sharpness must be non-negative")

	// ErrNoSubdivision indicates the mesh was built without a Subdivision strategy.
	ErrNoSubdivision = errors.New("hbr: mesh has no subdivision strategy")

	// ErrNilChild indicates the Subdivision strategy returned no vertex.
	ErrNilChild = errors.New("hbr: subdivision produced no child vertex")

	// ErrChildConflict indicates both half-edges of a new pairing own different children.
	ErrChildConflict = errors.New("hbr: both half-edges already hold a child vertex")

	// ErrInvalidOpposite indicates an opposite candidate that does not run in reverse.
	ErrInvalidOpposite = errors.New("hbr: half-edge cannot be paired as opposite")

	// ErrTooFewVertices indicates a face with fewer than MinFaceVertices vertices.
	ErrTooFewVertices = errors.New("hbr: face needs at least 3 vertices")

	// ErrNilVertex indicates a nil vertex in a face definition.
	ErrNilVertex = errors.New("hbr: vertex is nil")

	// ErrForeignVertex indicates a vertex created by another mesh.
	ErrForeignVertex = errors.New("hbr: vertex belongs to another mesh")

	// ErrDuplicateVertex indicates a vertex repeated inside one face loop.
	ErrDuplicateVertex = errors.New("hbr: vertex repeated in face")

	// ErrNonManifoldEdge indicates a directed edge already used by another face,
	// or an undirected edge already shared by two faces.
	ErrNonManifoldEdge = errors.New("hbr: non-manifold edge")

	// ErrDuplicatePath indicates a child face whose path is already registered.
	ErrDuplicatePath = errors.New("hbr: face path already registered")

	// ErrFaceNotFound indicates a face that is nil, deleted, or owned by another mesh.
	ErrFaceNotFound = errors.New("hbr: face not found")

	// ErrForeignEdge indicates a half-edge from another mesh.
	ErrForeignEdge = errors.New("hbr: half-edge belongs to another mesh")

	// ErrParentReassign is raised (via panic) when a vertex parent link is
	// overwritten without being cleared first.
	ErrParentReassign = errors.New("hbr: vertex parent reassigned without orphaning")

	// ErrBrokenLoop is raised (via panic) when a face loop does not contain an
	// endpoint of an edge it is supposed to share.
	ErrBrokenLoop = errors.New("hbr: face loop does not contain edge endpoint")
)

// Sharpness classes. InfinitelySharp is out of band: finite decayed
// sharpness values used during refinement stay well below it.
const (
	Smooth          float32 = 0
	Sharp           float32 = 1
	InfinitelySharp float32 = 10
)

// FVarTolerance is the per-component tolerance used to compare facevarying
// values across an edge.
const FVarTolerance float32 = 0.001

// MinFaceVertices is the smallest polygon a face can be.
const MinFaceVertices = 3

// inlineEdges is the capacity of a face's inline edge block (tri or quad).
const inlineEdges = 4

// MeshOption configures a Mesh before creation.
type MeshOption func(m *Mesh)

// WithFVarWidths declares one facevarying channel per width. Channel i starts
// at the sum of the widths before it. Panics on a negative width.
func WithFVarWidths(widths ...int) MeshOption {
	for i, w := range widths {
		if w < 0 {
			panic(errors.Errorf("hbr: WithFVarWidths: channel %d has negative width %d", i, w))
		}
	}
	ws := append([]int(nil), widths...)
	return func(m *Mesh) {
		m.fvarWidths = ws
		m.fvarStarts = make([]int, len(ws))
		total := 0
		for i, w := range ws {
			m.fvarStarts[i] = total
			total += w
		}
		m.fvarTotal = total
	}
}

// WithSubdivision installs the refinement strategy. Panics on nil.
func WithSubdivision(s Subdivision) MeshOption {
	if s == nil {
		panic("hbr: WithSubdivision(nil)")
	}
	return func(m *Mesh) { m.subdivision = s }
}

// FaceOption configures a face passed to Mesh.NewFace.
type FaceOption func(c *faceConfig)

// faceConfig collects per-face construction parameters.
type faceConfig struct {
	parent     *Face
	childIndex int
}

// WithParentFace makes the new face the child-th child of parent. Its path
// extends parent's and its level is one deeper.
func WithParentFace(parent *Face, child int) FaceOption {
	return func(c *faceConfig) {
		c.parent = parent
		c.childIndex = child
	}
}
