package encode

import (
	"encoding/base64"
	"io"
	"strings"

	"github.com/tjson-format/go-tjson/ir"
)

type EncState struct {
	depth, indent int
	pretty        bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node as JSON text to w.  In the compact default,
// named nodes are preceded by `"name" : `, siblings are comma
// separated, and no trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return EncodeComma(node, w, false, opts...)
}

// EncodeComma is Encode with an explicit leading-comma signal, for
// callers emitting a sequence of siblings themselves.
func EncodeComma(node *ir.Node, w io.Writer, comma bool, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, comma, es)
}

// encode emits one node.  The comma signal is threaded through the
// recursion so containers and scalars share one emission routine.
func encode(node *ir.Node, w io.Writer, comma bool, es *EncState) error {
	if node == nil {
		return nil
	}
	if comma {
		if err := writeString(w, es.color(node.Type, SepColor, ",")); err != nil {
			return err
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	if node.Name != "" {
		name := es.color(node.Type, FieldColor, `"`+node.Name+`"`)
		if err := writeString(w, name+" : "); err != nil {
			return err
		}
	}
	switch node.Type {
	case ir.ArrayType:
		return encodeKids(node, w, "[", "]", es)
	case ir.ObjectType:
		return encodeKids(node, w, "{", "}", es)
	case ir.BoolType:
		v := "false"
		if node.Var.U16 > 0 {
			v = "true"
		}
		return writeString(w, es.color(ir.BoolType, ValueColor, v))
	case ir.VarType:
		return writeString(w, es.color(ir.VarType, ValueColor, varString(&node.Var)))
	default:
		return nil
	}
}

func encodeKids(node *ir.Node, w io.Writer, open, shut string, es *EncState) error {
	if err := writeString(w, es.color(node.Type, SepColor, open)); err != nil {
		return err
	}
	if es.pretty && len(node.Kids) > 0 {
		es.depth++
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	for i, kid := range node.Kids {
		if err := encode(kid, w, i > 0, es); err != nil {
			return err
		}
	}
	if es.pretty && len(node.Kids) > 0 {
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es.color(node.Type, SepColor, shut))
}

// varString renders a var value per its tag.  Strings are quoted with
// no escaping of the content.  Invalid renders as null, all integer
// widths render numerically and blobs render as quoted base64.
func varString(v *ir.Value) string {
	switch v.Type {
	case ir.StrVal:
		return `"` + v.Str + `"`
	case ir.BlobVal:
		return `"` + base64.StdEncoding.EncodeToString(v.Blob) + `"`
	case ir.InvalidVal:
		return "null"
	default:
		return v.String()
	}
}

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
