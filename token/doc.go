// Package token provides tokenization support for JSON documents.
//
// [Tokenize] tokenizes bytes and [TokenizeFile] tokenizes the contents
// of a file.  Both produce the same token sequence for the same input.
package token
