// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A document is a tree of [Node] values.  Every node has a [Type] (Array,
// Object, Var or Bool), an optional name, and, for containers, an ordered
// list of children.  Var and Bool nodes carry one tagged [Value].
//
// The tree is a strict out-tree: each container exclusively owns its
// children, and no node is shared or revisited.  Trees come either from
// the parse package or from the constructor functions here:
//
//	root := ir.Object("")
//	ir.ObjectAdd(root, ir.Str("date", "2020/10/13"))
//	ir.ObjectAdd(root, ir.Num("count", 3))
//
// Mutation is append-only: ArrayAdd and ObjectAdd are the only operations
// that change a tree's shape.  [Free] releases a subtree; a freed node
// must not be used again.
//
// # Numbers
//
// [ParseNumber] selects the narrowest integer representation for a
// numeric literal.  A leading '-' selects the signed family; the bounds
// are exclusive, so the exact boundary values land in the next wider
// type.  Literals with a fraction or exponent become single-precision
// floats.
//
// # Thread safety
//
// Nodes are not thread safe.  Concurrent reads of one tree require that
// no mutation happens concurrently; synchronization is the caller's
// responsibility.
package ir
