package hbr

// EdgeOperator is applied to half-edges by batch traversals such as
// Face.ApplyOperator and Mesh.ApplyOperatorAllEdges.
type EdgeOperator interface {
	ApplyToEdge(e *HalfEdge)
}

// EdgeOperatorFunc adapts a function to EdgeOperator.
type EdgeOperatorFunc func(e *HalfEdge)

// ApplyToEdge calls f(e).
func (f EdgeOperatorFunc) ApplyToEdge(e *HalfEdge) { f(e) }
