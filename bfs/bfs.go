package bfs

import (
	"context"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/mkuruc/OpenSubdiv/hbr"
)

// queueItem pairs a face with its BFS depth.
type queueItem struct {
	face  *hbr.Face
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[*hbr.Face]bool
	res     *BFSResult
}

// BFS runs breadth-first search on m starting from start,
// applying any number of functional Options.
// Returns ErrMeshNil or ErrStartFaceNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(m *hbr.Mesh, start *hbr.Face, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMeshNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start face
	if start == nil || start.Mesh() != m || start.IsDeleted() {
		return nil, ErrStartFaceNotFound
	}

	n := m.FaceCount()
	w := &walker{
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[*hbr.Face]bool, n),
		res: &BFSResult{
			Order:  make([]*hbr.Face, 0, n),
			Depth:  make(map[*hbr.Face]int, n),
			Parent: make(map[*hbr.Face]*hbr.HalfEdge, n),
		},
	}

	// Seed queue with start face (no parent edge)
	w.enqueue(start, 0, nil)
	err := w.loop()
	klog.V(3).Infof("bfs: visited %d of %d faces from %s", len(w.res.Order), n, start)
	return w.res, err
}

// enqueue marks f visited at depth d, records the crossed edge, calls
// OnEnqueue and adds it to the queue.
func (w *walker) enqueue(f *hbr.Face, d int, via *hbr.HalfEdge) {
	w.visited[f] = true
	w.res.Depth[f] = d
	if via != nil {
		w.res.Parent[f] = via
	}
	w.opts.OnEnqueue(f, d)
	w.queue = append(w.queue, queueItem{face: f, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.face, item.depth)
	return item
}

// visit records the face in Order, runs the edge operator and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.face)
	if w.opts.EdgeOperator != nil {
		item.face.ApplyOperator(w.opts.EdgeOperator)
	}
	if err := w.opts.OnVisit(item.face, item.depth); err != nil {
		return errors.Wrapf(err, "bfs: OnVisit error at %s", item.face)
	}
	return nil
}

// enqueueNeighbors walks the face loop, applies filtering and MaxDepth,
// and enqueues the unseen face across each paired half-edge.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for i := 0; i < item.face.NumVertices(); i++ {
		e := item.face.Edge(i)
		nbr := e.RightFace()
		if nbr == nil || w.visited[nbr] {
			continue
		}
		if !w.opts.FilterEdge(e) {
			continue
		}
		w.enqueue(nbr, nextDepth, e)
	}
}
