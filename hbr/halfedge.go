// SPDX-License-Identifier: MIT
// Package: hbr
//
// halfedge.go - the half-edge entity: adjacency traversal, sharpness and
// diagnostics. Lifecycle lives in halfedge_lifecycle.go, facevarying
// sharpness in halfedge_fvar.go.
//
// Invariants:
//   - opposite is symmetric or nil on both sides.
//   - paired half-edges share one edgeShare, so sharpness and the child
//     vertex exist once per geometric edge.
//   - Next/Previous/Index depend only on the slot in the face block.

package hbr

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// edgeShare is the state of a geometric edge, shared by its half-edges.
type edgeShare struct {
	sharpness float32
	// child is the vertex produced by subdividing the edge. The half-edge
	// its parent link points at holds ownership authority.
	child *Vertex
}

// HalfEdge is one directed side of a mesh edge, stored in its incident
// face's edge block. The zero value is not usable; half-edges are created by
// Mesh.NewFace.
type HalfEdge struct {
	opposite *HalfEdge
	face     *Face
	origin   *Vertex
	shared   *edgeShare

	index  int32
	first  bool // slot 0 of the face block
	last   bool // slot N-1 of the face block
	coarse bool // belongs to the level-0 control mesh
}

// Opposite returns the half-edge running the other way, or nil on a boundary.
func (e *HalfEdge) Opposite() *HalfEdge { return e.opposite }

// Face returns the incident face.
func (e *HalfEdge) Face() *Face { return e.face }

// LeftFace returns the incident face.
func (e *HalfEdge) LeftFace() *Face { return e.face }

// RightFace returns the opposite's incident face, or nil on a boundary.
func (e *HalfEdge) RightFace() *Face {
	if e.opposite == nil {
		return nil
	}
	return e.opposite.face
}

// Mesh returns the mesh of the incident face.
func (e *HalfEdge) Mesh() *Mesh {
	if e.face == nil {
		return nil
	}
	return e.face.mesh
}

// IsBoundary reports whether the edge has no opposite.
func (e *HalfEdge) IsBoundary() bool { return e.opposite == nil }

// Index returns the edge's position in its face loop.
func (e *HalfEdge) Index() int { return int(e.index) }

// Next returns the following half-edge around the incident face.
func (e *HalfEdge) Next() *HalfEdge {
	if e.last {
		return &e.face.edges[0]
	}
	return &e.face.edges[e.index+1]
}

// Previous returns the preceding half-edge around the incident face.
func (e *HalfEdge) Previous() *HalfEdge {
	if e.first {
		return &e.face.edges[len(e.face.edges)-1]
	}
	return &e.face.edges[e.index-1]
}

// OriginVertex returns the vertex the edge leaves.
func (e *HalfEdge) OriginVertex() *Vertex { return e.origin }

// SetOrigin replaces the origin vertex. The mesh edge directory is not
// updated, so this is only safe while rewiring a face under construction.
func (e *HalfEdge) SetOrigin(v *Vertex) { e.origin = v }

// DestinationVertex returns the vertex the edge enters, or nil for an
// uninitialized edge.
func (e *HalfEdge) DestinationVertex() *Vertex {
	if e.face == nil {
		return nil
	}
	return e.Next().origin
}

// IsCoarse reports whether the edge belongs to the control mesh.
func (e *HalfEdge) IsCoarse() bool { return e.coarse }

// SetCoarse marks the edge as belonging (or not) to the control mesh.
func (e *HalfEdge) SetCoarse(c bool) { e.coarse = c }

// Sharpness returns the raw geometric sharpness.
func (e *HalfEdge) Sharpness() float32 { return e.shared.sharpness }

// SetSharpness sets the sharpness on both sides of the edge and invalidates
// the endpoint vertex masks.
func (e *HalfEdge) SetSharpness(s float32) error {
	if s < 0 || math.IsNaN(float64(s)) {
		return errors.Wrapf(ErrNegativeSharpness, "%s: %v", e, s)
	}
	e.shared.sharpness = s
	e.ClearMask()
	return nil
}

// IsSharp reports whether the edge is sharp at the current level
// (next=false, sharpness ≥ 1) or at the next level (next=true, sharpness > 0).
func (e *HalfEdge) IsSharp(next bool) bool {
	if next {
		return e.shared.sharpness > Smooth
	}
	return e.shared.sharpness >= Sharp
}

// ClearMask invalidates the masks of both endpoint vertices.
func (e *HalfEdge) ClearMask() {
	if e.origin != nil {
		e.origin.ClearMask()
	}
	if d := e.DestinationVertex(); d != nil {
		d.ClearMask()
	}
}

// String renders "[boundary ]edge connecting <org> to <dst>", using
// "(none)" for an unknown endpoint.
func (e *HalfEdge) String() string {
	var b strings.Builder
	if e.IsBoundary() {
		b.WriteString("boundary ")
	}
	b.WriteString("edge connecting ")
	writeVertex(&b, e.origin)
	b.WriteString(" to ")
	writeVertex(&b, e.DestinationVertex())
	return b.String()
}

func writeVertex(b *strings.Builder, v *Vertex) {
	if v == nil {
		b.WriteString("(none)")
		return
	}
	b.WriteString(v.String())
}
