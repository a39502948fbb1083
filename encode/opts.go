package encode

type EncodeOption func(*EncState)

// EncodePretty enables multi-line output with indentation.  The
// default is the compact single-line form.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// Indent sets the indentation width for pretty output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors enables colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
