package eval

import (
	"encoding/json"
	"strconv"

	"github.com/tjson-format/go-tjson/ir"
)

// MarshalJSON renders node as strict JSON, escaping string content.
// Unlike encode, the output is always parseable by standard JSON
// consumers, at the price of losing member order guarantees for
// objects.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}

// ToAny converts a tree to plain Go values: objects become maps keyed
// by member name, arrays become slices, vars become their tagged value
// and Invalid becomes nil.
func ToAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Kids))
		for i, kid := range node.Kids {
			name := kid.Name
			if name == "" {
				name = strconv.Itoa(i)
			}
			res[name] = ToAny(kid)
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Kids))
		for i, kid := range node.Kids {
			res[i] = ToAny(kid)
		}
		return res
	case ir.BoolType:
		return node.Var.U16 != 0
	case ir.VarType:
		return valAny(&node.Var)
	default:
		return nil
	}
}

func valAny(v *ir.Value) any {
	switch v.Type {
	case ir.UInt16Val:
		return int64(v.U16)
	case ir.Int16Val:
		return int64(v.I16)
	case ir.UInt32Val:
		return int64(v.U32)
	case ir.Int32Val:
		return int64(v.I32)
	case ir.UInt64Val:
		return v.U64
	case ir.Int64Val:
		return v.I64
	case ir.FloatVal:
		return float64(v.F32)
	case ir.StrVal:
		return v.Str
	case ir.BlobVal:
		return v.Blob
	default:
		return nil
	}
}
