// SPDX-License-Identifier: MIT
// Package: hbr
//
// face.go - face container and its edge-block layout contract.
//
// Layout contract (relied on by HalfEdge.Next/Previous/Index):
//   - A face of N vertices owns exactly N half-edges, allocated once.
//   - N ≤ 4: edges live in the inline block; otherwise in the overflow block.
//   - Edge i is the edge leaving corner i; edges never move after NewFace.
//   - Faces are only created through Mesh.NewFace and must not be copied.

package hbr

import (
	"github.com/pkg/errors"

	"github.com/mkuruc/OpenSubdiv/fvarsharp"
)

// Face is a polygon of the mesh and the owner of its half-edges.
type Face struct {
	id    int
	mesh  *Mesh
	path  FacePath
	level int

	inline [inlineEdges]HalfEdge
	extra  []HalfEdge
	edges  []HalfEdge // view over inline or extra

	// fvar holds NumVertices × mesh.TotalFVarWidth() per-corner values.
	fvar []float32
	// fvarBits caches facevarying sharpness per edge slot; nil when the mesh
	// has no facevarying channels.
	fvarBits *fvarsharp.Table

	deleted bool
}

// ID returns the face's creation-order identifier.
func (f *Face) ID() int { return f.id }

// Mesh returns the owning mesh.
func (f *Face) Mesh() *Mesh { return f.mesh }

// Path returns the face's hierarchical path.
func (f *Face) Path() FacePath { return f.path }

// Level returns the refinement level (0 for control-mesh faces).
func (f *Face) Level() int { return f.level }

// NumVertices returns the number of corners (and half-edges).
func (f *Face) NumVertices() int { return len(f.edges) }

// IsDeleted reports whether the face was removed from its mesh.
func (f *Face) IsDeleted() bool { return f.deleted }

// FirstEdge returns the half-edge at loop position 0.
func (f *Face) FirstEdge() *HalfEdge { return &f.edges[0] }

// Edge returns the half-edge leaving corner i, or nil when i is out of range.
func (f *Face) Edge(i int) *HalfEdge {
	if i < 0 || i >= len(f.edges) {
		return nil
	}
	return &f.edges[i]
}

// Vertex returns the vertex at corner i, or nil when i is out of range.
func (f *Face) Vertex(i int) *Vertex {
	if e := f.Edge(i); e != nil {
		return e.origin
	}
	return nil
}

// Vertices returns the corner vertices in loop order.
func (f *Face) Vertices() []*Vertex {
	out := make([]*Vertex, len(f.edges))
	for i := range f.edges {
		out[i] = f.edges[i].origin
	}
	return out
}

// usesInlineBlock reports whether the edges live in the inline block.
func (f *Face) usesInlineBlock() bool { return f.extra == nil }

// ApplyOperator runs op on every half-edge in loop order.
func (f *Face) ApplyOperator(op EdgeOperator) {
	for i := range f.edges {
		op.ApplyToEdge(&f.edges[i])
	}
}

// cornersOf walks the face loop once and returns the corner positions of a
// and b, or -1 for a vertex that is not on the loop.
func (f *Face) cornersOf(a, b *Vertex) (ia, ib int) {
	ia, ib = -1, -1
	e := f.FirstEdge()
	for i := 0; i < len(f.edges); i++ {
		if e.origin == a {
			ia = i
		}
		if e.origin == b {
			ib = i
		}
		e = e.Next()
	}
	return ia, ib
}

// FVarData returns the live facevarying values of corner, all channels
// concatenated. Writes through the slice do not invalidate cached
// facevarying sharpness; use SetFVarData for that. Returns nil when the mesh
// has no facevarying data or corner is out of range.
func (f *Face) FVarData(corner int) []float32 {
	total := f.mesh.fvarTotal
	if total == 0 || corner < 0 || corner >= len(f.edges) {
		return nil
	}
	return f.fvar[corner*total : (corner+1)*total : (corner+1)*total]
}

// fvarValues returns width values of corner starting at offset start.
func (f *Face) fvarValues(corner, start, width int) []float32 {
	base := corner*f.mesh.fvarTotal + start
	return f.fvar[base : base+width]
}

// SetFVarData writes the values of one channel at one corner and
// invalidates the cached sharpness of that channel on both edges touching
// the corner (and their opposites).
func (f *Face) SetFVarData(corner, channel int, values []float32) error {
	if corner < 0 || corner >= len(f.edges) {
		return errors.Wrapf(ErrCornerOutOfRange, "face %s corner %d of %d", f.path, corner, len(f.edges))
	}
	m := f.mesh
	if err := m.checkChannel(channel); err != nil {
		return err
	}
	width := m.fvarWidths[channel]
	if len(values) != width {
		return errors.Wrapf(ErrFVarWidth, "channel %d wants %d values, got %d", channel, width, len(values))
	}
	copy(f.fvarValues(corner, m.fvarStarts[channel], width), values)

	leaving := &f.edges[corner]
	leaving.invalidateFVarChannel(channel)
	leaving.Previous().invalidateFVarChannel(channel)
	return nil
}

// String renders the face as "face <path>".
func (f *Face) String() string { return "face " + f.path.String() }
