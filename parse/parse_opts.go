package parse

type parseOpts struct {
	trace bool
}

type ParseOption func(*parseOpts)

// ParseTrace dumps the token stream to stderr before parsing.  The
// JT_DEBUG_TOKENS environment variable enables the same trace.
func ParseTrace(v bool) ParseOption {
	return func(o *parseOpts) { o.trace = v }
}
