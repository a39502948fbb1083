// Package encode encodes IR nodes to JSON text.
//
// # Usage
//
//	node := ir.Object("")
//	ir.ObjectAdd(node, ir.Str("name", "alice"))
//	err := encode.Encode(node, os.Stdout)
//
//	// Pretty printed, with colors on a terminal
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodePretty(true),
//	    encode.EncodeColors(encode.NewColors()))
//
// Encode adds no trailing newline; callers add one if desired.
//
// # Related Packages
//
//   - github.com/tjson-format/go-tjson/ir - IR representation
//   - github.com/tjson-format/go-tjson/parse - Parse text to IR
package encode
