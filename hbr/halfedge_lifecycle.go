// SPDX-License-Identifier: MIT
// Package: hbr
//
// halfedge_lifecycle.go - pairing, child-vertex ownership and teardown.
//
// Ownership protocol:
//   - A geometric edge holds at most one child, in the edgeShare both of its
//     half-edges point at.
//   - The half-edge the child's parent link names has the authority to orphan
//     or reassign it. Reassignment always orphans first.
//   - Detaching a pair transfers authority to the remaining side; clearing an
//     unpaired edge orphans the child.

package hbr

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// initialize fixes the slot flags of an edge freshly placed in face's block
// and joins it to opposite, if any. Called once, by Mesh.NewFace.
func (e *HalfEdge) initialize(opposite *HalfEdge, index int, origin *Vertex, face *Face) {
	e.face = face
	e.origin = origin
	e.index = int32(index)
	e.first = index == 0
	e.last = index == len(face.edges)-1
	e.coarse = face.level == 0

	if opposite == nil {
		e.shared = &edgeShare{}
		if face.fvarBits != nil {
			face.fvarBits.ResetRow(index)
		}
		return
	}
	e.opposite = opposite
	opposite.opposite = e
	e.shared = opposite.shared
	if face.fvarBits != nil {
		face.fvarBits.CopyRow(index, opposite.face.fvarBits, int(opposite.index))
	}
}

// SetOpposite pairs e with o, which must run the other way between the same
// vertices. Either side is first detached from a previous partner. e adopts
// o's sharpness. A child held by an unpaired side carries over to the pair;
// if both sides hold different children the call fails with
// ErrChildConflict and nothing changes. The facevarying cache of both sides
// restarts Unknown. SetOpposite(nil) is Clear.
func (e *HalfEdge) SetOpposite(o *HalfEdge) error {
	if o == nil {
		e.Clear()
		return nil
	}
	if o == e.opposite {
		return nil
	}
	if o.Mesh() != e.Mesh() {
		return errors.Wrapf(ErrForeignEdge, "pairing %s with %s", e, o)
	}
	if o == e || o.origin != e.DestinationVertex() || o.DestinationVertex() != e.origin {
		return errors.Wrapf(ErrInvalidOpposite, "pairing %s with %s", e, o)
	}

	ce, co := e.retainedChild(), o.retainedChild()
	if ce != nil && co != nil && ce != co {
		return errors.Wrapf(ErrChildConflict, "%s holds %s, %s holds %s", e, ce, o, co)
	}

	if e.opposite != nil {
		e.Clear()
	}
	if o.opposite != nil {
		o.Clear()
	}
	sh := o.shared
	if sh.child == nil {
		sh.child = e.shared.child
	}
	e.shared = sh
	e.opposite, o.opposite = o, e

	e.resetFVarRow()
	o.resetFVarRow()
	e.ClearMask()
	klog.V(3).Infof("hbr: paired %s with %s", e, o)
	return nil
}

// retainedChild is the child e would bring into a new pairing: none when e
// is currently paired, because Clear leaves the child with the partner.
func (e *HalfEdge) retainedChild() *Vertex {
	if e.opposite != nil {
		return nil
	}
	return e.shared.child
}

// Clear severs the pairing of e. With an opposite, a child e has authority
// over is handed to the opposite (orphaned, then reassigned) and the child
// stays with the opposite's side. Without one, an owned child is orphaned
// and e forgets it. The facevarying cache of both sides restarts Unknown.
func (e *HalfEdge) Clear() {
	sh := e.shared
	if o := e.opposite; o != nil {
		e.opposite, o.opposite = nil, nil
		e.shared = &edgeShare{sharpness: sh.sharpness}
		if c := sh.child; c != nil && c.parent == e {
			c.SetParent(nil)
			c.SetParent(o)
			klog.V(2).Infof("hbr: child %s transferred from %s to %s", c, e, o)
		}
		e.resetFVarRow()
		o.resetFVarRow()
		return
	}
	if c := sh.child; c != nil {
		if c.parent == e {
			c.SetParent(nil)
			klog.V(2).Infof("hbr: child %s orphaned by %s", c, e)
		}
		sh.child = nil
	}
	e.resetFVarRow()
}

// Subdivide returns the child vertex of the geometric edge, asking the
// mesh's Subdivision strategy to create it on first use. Whichever side
// creates the child becomes its parent; the other side gets the same vertex.
func (e *HalfEdge) Subdivide() (*Vertex, error) {
	if e.face != nil && e.face.deleted {
		return nil, errors.Wrapf(ErrFaceNotFound, "subdividing %s", e)
	}
	if c := e.shared.child; c != nil {
		return c, nil
	}
	m := e.Mesh()
	if m == nil || m.subdivision == nil {
		return nil, errors.Wrapf(ErrNoSubdivision, "subdividing %s", e)
	}
	c := m.subdivision.Subdivide(m, e)
	if c == nil {
		return nil, errors.Wrapf(ErrNilChild, "subdividing %s", e)
	}
	e.shared.child = c
	c.SetParent(e)
	return c, nil
}

// RemoveChild drops the edge's reference to its child without touching the
// vertex. Used for order-independent teardown where the vertex container
// resets parent links itself.
func (e *HalfEdge) RemoveChild() { e.shared.child = nil }

// Child returns the child vertex of the geometric edge, or nil.
func (e *HalfEdge) Child() *Vertex { return e.shared.child }

// OwnsChild reports whether e has authority over the child vertex.
func (e *HalfEdge) OwnsChild() bool {
	c := e.shared.child
	return c != nil && c.parent == e
}

// GuaranteeNeighbor asks the Subdivision strategy to make sure the face
// across e exists.
func (e *HalfEdge) GuaranteeNeighbor() error {
	m := e.Mesh()
	if m == nil || m.subdivision == nil {
		return errors.Wrapf(ErrNoSubdivision, "neighbor of %s", e)
	}
	m.subdivision.GuaranteeNeighbor(m, e)
	return nil
}
