// Package bfs provides tunable options and error definitions
// for breadth-first search over the faces of an hbr.Mesh.
package bfs

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartFaceNotFound is returned when the start face is nil, deleted,
	// or belongs to another mesh.
	ErrStartFaceNotFound = errors.New("bfs: start face not found")

	// ErrMeshNil is returned if a nil mesh pointer is passed.
	ErrMeshNil = errors.New("bfs: mesh is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a face is enqueued, before visiting.
	// Receives the face and its depth from the start.
	OnEnqueue func(f *hbr.Face, depth int)

	// OnDequeue is called immediately before visiting a face.
	OnDequeue func(f *hbr.Face, depth int)

	// OnVisit is called when visiting a face. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(f *hbr.Face, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEdge can refuse to cross a half-edge by returning false.
	// Called for each paired half-edge of the current face.
	FilterEdge func(e *hbr.HalfEdge) bool

	// EdgeOperator, if set, is applied to every half-edge of each visited
	// face, in loop order.
	EdgeOperator hbr.EdgeOperator

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (every paired edge is crossed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - no edge operator.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnEnqueue:  func(*hbr.Face, int) {},
		OnDequeue:  func(*hbr.Face, int) {},
		OnVisit:    func(*hbr.Face, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(*hbr.HalfEdge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(f *hbr.Face, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(f *hbr.Face, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(f *hbr.Face, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterEdge skips half-edges for which fn returns false. A typical
// filter stops at creases: func(e) bool { return !e.IsSharp(false) }.
func WithFilterEdge(fn func(e *hbr.HalfEdge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithEdgeOperator applies op to every half-edge of each visited face.
func WithEdgeOperator(op hbr.EdgeOperator) Option {
	return func(o *BFSOptions) {
		if op != nil {
			o.EdgeOperator = op
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: faces visited, in visit sequence.
//   - Depth: map from face to its distance (in crossed edges) from the start.
//   - Parent: map from face to the half-edge of its predecessor that was
//     crossed to reach it (Parent[f].RightFace() == f).
type BFSResult struct {
	Order  []*hbr.Face
	Depth  map[*hbr.Face]int
	Parent map[*hbr.Face]*hbr.HalfEdge
}

// PathTo reconstructs the face path from the start face to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest *hbr.Face) ([]*hbr.Face, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []*hbr.Face{}
	for cur := dest; ; {
		path = append(path, cur)
		e, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = e.LeftFace()
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// EdgesTo returns the half-edges crossed on the way from the start face to
// dest, in traversal order.
func (r *BFSResult) EdgesTo(dest *hbr.Face) ([]*hbr.HalfEdge, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return nil, err
	}
	edges := make([]*hbr.HalfEdge, 0, len(path)-1)
	for _, f := range path[1:] {
		edges = append(edges, r.Parent[f])
	}
	return edges, nil
}
