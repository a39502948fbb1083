// Package eval bridges IR trees to plain Go values and evaluates
// expressions over them.
//
// [Filter] selects the elements of an array node for which an
// expr-lang predicate holds.  [ToAny] and [MarshalJSON] convert trees
// to Go values and strict JSON for interop with libraries that consume
// those.
//
// # Related Packages
//
//   - github.com/tjson-format/go-tjson/ir - IR representation
//   - github.com/tjson-format/go-tjson/parse - Parse text to IR
package eval
