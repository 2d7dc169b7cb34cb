// SPDX-License-Identifier: MIT
// Package: hbr
//
// halfedge_fvar.go - lazily computed facevarying infinite sharpness.
//
// Cache:
//   - One fvarsharp.State per (edge slot, channel), stored in the incident
//     face's table. Unknown until first queried.
//   - A computed verdict is written to both sides of the pair.
//   - Face.SetFVarData, SetOpposite and Clear reset the affected slots.
//
// Decision, on a cache miss:
//  1. No facevarying data on the mesh: not sharp.
//  2. Boundary edge: sharp.
//  3. Otherwise compare the channel values of both faces at the edge's
//     origin and destination corners; any component differing by more than
//     FVarTolerance makes the edge sharp.

package hbr

import (
	"github.com/pkg/errors"

	"github.com/mkuruc/OpenSubdiv/fvarsharp"
)

// FVarInfiniteSharp reports whether the facevarying data of channel ch is
// discontinuous across e. The answer is computed once and cached on both
// sides of the edge.
func (e *HalfEdge) FVarInfiniteSharp(ch int) (bool, error) {
	if err := e.face.mesh.checkChannel(ch); err != nil {
		return false, err
	}
	return e.fvarInfiniteSharp(ch), nil
}

func (e *HalfEdge) fvarInfiniteSharp(ch int) bool {
	if s := e.face.fvarBits.Get(int(e.index), ch); s.Known() {
		return s == fvarsharp.Sharp
	}
	sharp := e.computeFVarInfiniteSharp(ch)
	e.setFVarState(ch, fvarsharp.FromBool(sharp))
	return sharp
}

func (e *HalfEdge) computeFVarInfiniteSharp(ch int) bool {
	m := e.face.mesh
	if m.fvarTotal == 0 {
		return false
	}
	o := e.opposite
	if o == nil || o.face == nil {
		return true
	}

	left, right := e.face, o.face
	org, dst := e.origin, e.DestinationVertex()
	lo, ld := left.cornersOf(org, dst)
	ro, rd := right.cornersOf(org, dst)
	if lo < 0 || ld < 0 || ro < 0 || rd < 0 {
		panic(errors.Wrapf(ErrBrokenLoop, "%s between %s and %s", e, left, right))
	}

	start, width := m.fvarStarts[ch], m.fvarWidths[ch]
	return !fvarMatch(left.fvarValues(lo, start, width), right.fvarValues(ro, start, width)) ||
		!fvarMatch(left.fvarValues(ld, start, width), right.fvarValues(rd, start, width))
}

// fvarMatch compares two equally long value runs within FVarTolerance.
func fvarMatch(a, b []float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d > FVarTolerance || d < -FVarTolerance {
			return false
		}
	}
	return true
}

// setFVarState stores s for channel ch on e and on its opposite.
func (e *HalfEdge) setFVarState(ch int, s fvarsharp.State) {
	e.face.fvarBits.Set(int(e.index), ch, s)
	if o := e.opposite; o != nil {
		o.face.fvarBits.Set(int(o.index), ch, s)
	}
}

// SetFVarInfiniteSharp tags channel ch of the edge (both sides) as sharp or
// not, overriding whatever the data would say until the cache is reset.
// A tag on a boundary edge does not survive pairing: NewFace, SetOpposite
// and Clear reset both rows, and the next query recomputes from the data.
func (e *HalfEdge) SetFVarInfiniteSharp(ch int, sharp bool) error {
	if err := e.face.mesh.checkChannel(ch); err != nil {
		return err
	}
	e.setFVarState(ch, fvarsharp.FromBool(sharp))
	return nil
}

// IsFVarInfiniteSharpAnywhere reports whether any channel is discontinuous
// across e. Cached verdicts are checked before anything is computed.
func (e *HalfEdge) IsFVarInfiniteSharpAnywhere() bool {
	bits := e.face.fvarBits
	if bits == nil {
		return false
	}
	if bits.Any(int(e.index)) {
		return true
	}
	for ch := 0; ch < bits.Channels(); ch++ {
		if e.fvarInfiniteSharp(ch) {
			return true
		}
	}
	return false
}

// FVarSharpness returns InfinitelySharp when channel ch is discontinuous
// across e, or when ignoreGeometry is false and the edge has any geometric
// sharpness. Otherwise it returns Smooth.
func (e *HalfEdge) FVarSharpness(ch int, ignoreGeometry bool) (float32, error) {
	sharp, err := e.FVarInfiniteSharp(ch)
	if err != nil {
		return Smooth, err
	}
	if sharp {
		return InfinitelySharp, nil
	}
	if !ignoreGeometry && e.shared.sharpness > Smooth {
		return InfinitelySharp, nil
	}
	return Smooth, nil
}

// CopyFVarInfiniteSharpness copies every cached verdict of src onto e. Only
// e's slot is written; the opposite keeps its own.
func (e *HalfEdge) CopyFVarInfiniteSharpness(src *HalfEdge) error {
	if src.Mesh() != e.Mesh() {
		return errors.Wrapf(ErrForeignEdge, "copying facevarying sharpness from %s", src)
	}
	if bits := e.face.fvarBits; bits != nil {
		bits.CopyRow(int(e.index), src.face.fvarBits, int(src.index))
	}
	return nil
}

// InvalidateFVarSharpness forgets every cached verdict on both sides of e.
func (e *HalfEdge) InvalidateFVarSharpness() {
	e.resetFVarRow()
	if o := e.opposite; o != nil {
		o.resetFVarRow()
	}
}

// invalidateFVarChannel forgets the verdict of one channel on both sides.
func (e *HalfEdge) invalidateFVarChannel(ch int) {
	if e.face.fvarBits == nil {
		return
	}
	e.setFVarState(ch, fvarsharp.Unknown)
}

func (e *HalfEdge) resetFVarRow() {
	if bits := e.face.fvarBits; bits != nil {
		bits.ResetRow(int(e.index))
	}
}
