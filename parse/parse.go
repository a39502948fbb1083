package parse

import (
	"fmt"

	"github.com/tjson-format/go-tjson/debug"
	"github.com/tjson-format/go-tjson/ir"
	"github.com/tjson-format/go-tjson/token"
)

// Parse parses a JSON document from a byte buffer and returns the root
// of the resulting tree.  On failure no partial tree is returned; any
// partially built subtree is released before the error is reported.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	return parseTokens(toks, opts...)
}

// ParseFile parses a JSON document from the file at path.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	toks, err := token.TokenizeFile(path)
	if err != nil {
		return nil, err
	}
	return parseTokens(toks, opts...)
}

func parseTokens(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.trace || debug.Tokens() {
		for i := range toks {
			debug.Logf("%s\n", toks[i].Info())
		}
	}
	if len(toks) == 0 {
		return nil, ErrEmptyDoc
	}
	off := 0
	res, err := parseValue(toks, "", &off)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		ir.Free(res)
		t := &toks[off]
		return nil, fmt.Errorf("%w: trailing %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
	return res, nil
}

func parseValue(toks []token.Token, name string, pi *int) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		*pi++
		return parseObj(toks, ir.Object(name), t.Pos, pi)
	case token.TLSquare:
		*pi++
		return parseArr(toks, ir.Array(name), t.Pos, pi)
	case token.TString:
		*pi++
		return ir.Str(name, t.String()), nil
	case token.TInteger, token.TFloat:
		*pi++
		return ir.ParseNumber(name, string(t.Bytes)), nil
	case token.TTrue:
		*pi++
		return ir.Bool(name, 1), nil
	case token.TFalse:
		*pi++
		return ir.Bool(name, 0), nil
	case token.TNull:
		*pi++
		return ir.Var(name), nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
}

func parseObj(toks []token.Token, obj *ir.Node, open *token.Pos, pi *int) (*ir.Node, error) {
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return obj, nil
	}
	for {
		if *pi >= len(toks) {
			ir.Free(obj)
			return nil, fmt.Errorf("%w: unmatched { %s", ErrParse, open)
		}
		t := &toks[*pi]
		if t.Type != token.TString {
			ir.Free(obj)
			return nil, fmt.Errorf("%w: expected member name, got %q %s", ErrParse, string(t.Bytes), t.Pos)
		}
		key := t.String()
		*pi++
		if *pi >= len(toks) || toks[*pi].Type != token.TColon {
			ir.Free(obj)
			return nil, fmt.Errorf("%w: expected ':' after member name %s", ErrParse, t.Pos)
		}
		*pi++
		kid, err := parseValue(toks, key, pi)
		if err != nil {
			ir.Free(obj)
			return nil, err
		}
		if err := ir.ObjectAdd(obj, kid); err != nil {
			ir.Free(kid)
			ir.Free(obj)
			return nil, err
		}
		if *pi >= len(toks) {
			ir.Free(obj)
			return nil, fmt.Errorf("%w: unmatched { %s", ErrParse, open)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return obj, nil
		default:
			t := &toks[*pi]
			ir.Free(obj)
			return nil, fmt.Errorf("%w: expected ',' or '}', got %q %s", ErrParse, string(t.Bytes), t.Pos)
		}
	}
}

func parseArr(toks []token.Token, arr *ir.Node, open *token.Pos, pi *int) (*ir.Node, error) {
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return arr, nil
	}
	for {
		if *pi >= len(toks) {
			ir.Free(arr)
			return nil, fmt.Errorf("%w: unmatched [ %s", ErrParse, open)
		}
		kid, err := parseValue(toks, "", pi)
		if err != nil {
			ir.Free(arr)
			return nil, err
		}
		if err := ir.ArrayAdd(arr, kid); err != nil {
			ir.Free(kid)
			ir.Free(arr)
			return nil, err
		}
		if *pi >= len(toks) {
			ir.Free(arr)
			return nil, fmt.Errorf("%w: unmatched [ %s", ErrParse, open)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			*pi++
			return arr, nil
		default:
			t := &toks[*pi]
			ir.Free(arr)
			return nil, fmt.Errorf("%w: expected ',' or ']', got %q %s", ErrParse, string(t.Bytes), t.Pos)
		}
	}
}
