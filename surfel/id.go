package surfel

// ID identifies a surfel within the fan-in of child node arrays passed
// to the reduction driver: which input node it came from, and its
// index within that node's array. Once assigned, an ID is never
// mutated; a merged surfel is written under a fresh ID rather than
// reusing one of its parents'.
//
// ID is totally ordered lexicographically by (Node, Index), which is
// what lets Edge canonicalize its endpoints and k-NN break ties
// deterministically.
type ID struct {
	Node  int
	Index int
}

// Less reports whether id sorts strictly before other under the
// lexicographic (Node, Index) order.
func (id ID) Less(other ID) bool {
	if id.Node != other.Node {
		return id.Node < other.Node
	}
	return id.Index < other.Index
}
