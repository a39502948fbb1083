// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name":"alice","age":30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from a file
//	node, err := parse.ParseFile("config.json")
//
// Parse returns the root of the tree directly; there is no shared
// parser state, so independent parses may run concurrently.
//
// # Related Packages
//
//   - github.com/tjson-format/go-tjson/ir - IR representation
//   - github.com/tjson-format/go-tjson/encode - Encode IR to text
//   - github.com/tjson-format/go-tjson/token - Tokenization
package parse
