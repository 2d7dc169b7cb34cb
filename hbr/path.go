package hbr

import (
	"sort"
	"strconv"
	"strings"
)

// FacePath identifies a face by its level-0 ancestor and the child index
// taken at every refinement level below it. Paths order faces
// deterministically across levels: ancestors sort before descendants.
type FacePath struct {
	Top      int
	Children []int
}

// Child returns the path of the i-th child of p.
func (p FacePath) Child(i int) FacePath {
	c := make([]int, len(p.Children), len(p.Children)+1)
	copy(c, p.Children)
	return FacePath{Top: p.Top, Children: append(c, i)}
}

// Depth is the number of refinement steps below the level-0 ancestor.
func (p FacePath) Depth() int { return len(p.Children) }

// Compare orders paths by Top, then lexicographically by child indices,
// a prefix sorting first. It returns -1, 0 or +1.
func (p FacePath) Compare(q FacePath) int {
	switch {
	case p.Top < q.Top:
		return -1
	case p.Top > q.Top:
		return 1
	}
	for i := 0; i < len(p.Children) && i < len(q.Children); i++ {
		switch {
		case p.Children[i] < q.Children[i]:
			return -1
		case p.Children[i] > q.Children[i]:
			return 1
		}
	}
	switch {
	case len(p.Children) < len(q.Children):
		return -1
	case len(p.Children) > len(q.Children):
		return 1
	}
	return 0
}

// Less reports whether p sorts before q.
func (p FacePath) Less(q FacePath) bool { return p.Compare(q) < 0 }

// String renders the path as "top.c0.c1...".
func (p FacePath) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(p.Top))
	for _, c := range p.Children {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(c))
	}
	return b.String()
}

// comparePaths adapts FacePath.Compare to the gods comparator signature.
func comparePaths(a, b interface{}) int {
	return a.(FacePath).Compare(b.(FacePath))
}

// CompareHalfEdges orders half-edges by the paths of their incident faces.
// Edges of the same face compare equal.
func CompareHalfEdges(a, b *HalfEdge) int {
	return a.face.path.Compare(b.face.path)
}

// SortHalfEdges sorts edges by incident face path, keeping the relative order
// of edges that share a face.
func SortHalfEdges(edges []*HalfEdge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return CompareHalfEdges(edges[i], edges[j]) < 0
	})
}
