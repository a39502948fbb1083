package ir

// Free releases the subtree rooted at node: children are freed
// recursively, then the node's name, payload and child list are
// cleared.  A node must be freed at most once and must not be used
// afterwards; the zeroed state makes accidental reuse loud rather than
// subtly wrong.
func Free(node *Node) {
	if node == nil {
		return
	}
	for _, kid := range node.Kids {
		Free(kid)
	}
	*node = Node{}
}
