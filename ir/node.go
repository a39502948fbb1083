package ir

import (
	"strconv"
	"strings"
)

// Node is one element of a document tree.  Name is "" for anonymous
// nodes (roots and array elements).  Kids holds the ordered children of
// Array and Object nodes; Var holds the payload of Var and Bool nodes.
type Node struct {
	Type Type
	Name string
	Kids []*Node
	Var  Value
}

// Array creates an empty array node.  name may be "" for an anonymous
// array.
func Array(name string) *Node {
	return &Node{Type: ArrayType, Name: name}
}

// Object creates an empty object node.  name may be "" for an anonymous
// object.
func Object(name string) *Node {
	return &Node{Type: ObjectType, Name: name}
}

// Var creates an untyped var node.  Its value tag is InvalidVal until a
// value is assigned.
func Var(name string) *Node {
	return &Node{Type: VarType, Name: name}
}

// Num creates a var node holding num as a UInt32.
func Num(name string, num int) *Node {
	v := Var(name)
	v.Var.Type = UInt32Val
	v.Var.Len = 4
	v.Var.U32 = uint32(num)
	return v
}

// Float creates a var node holding a single-precision float.
func Float(name string, f float32) *Node {
	v := Var(name)
	v.Var.Type = FloatVal
	v.Var.Len = 4
	v.Var.F32 = f
	return v
}

// Bool creates a bool node.  num is 0 for false, positive for true.
func Bool(name string, num int) *Node {
	v := Var(name)
	v.Type = BoolType
	v.Var.Type = UInt16Val
	v.Var.Len = 2
	if num > 0 {
		v.Var.U16 = 1
	}
	return v
}

// Str creates a var node holding a string value.
func Str(name, s string) *Node {
	v := Var(name)
	v.Var.Type = StrVal
	v.Var.Len = len(s)
	v.Var.Str = s
	return v
}

// Blob creates a var node holding an opaque byte payload.
func Blob(name string, d []byte) *Node {
	v := Var(name)
	v.Var.Type = BlobVal
	v.Var.Len = len(d)
	v.Var.Blob = d
	return v
}

// ParseNumber creates a var node from a numeric literal, choosing the
// narrowest integer representation that contains it.  A leading '-'
// selects the signed family; the bounds are exclusive, so the exact
// boundary values land in the next wider type.  A literal with a
// fraction or exponent becomes a single-precision float.  Malformed
// input yields the value 0 rather than an error.
func ParseNumber(name, numstr string) *Node {
	v := Var(name)
	if strings.ContainsAny(numstr, ".eE") {
		f, _ := strconv.ParseFloat(numstr, 32)
		v.Var.Type = FloatVal
		v.Var.Len = 4
		v.Var.F32 = float32(f)
		return v
	}
	if strings.HasPrefix(numstr, "-") {
		// out of range clamps to the widest type
		lli, _ := strconv.ParseInt(numstr, 10, 64)
		switch {
		case lli > -32768 && lli < 32767:
			v.Var.Type = Int16Val
			v.Var.Len = 2
			v.Var.I16 = int16(lli)
		case lli > -2147483648 && lli < 2147483647:
			v.Var.Type = Int32Val
			v.Var.Len = 4
			v.Var.I32 = int32(lli)
		default:
			v.Var.Type = Int64Val
			v.Var.Len = 8
			v.Var.I64 = lli
		}
		return v
	}
	llu, _ := strconv.ParseUint(numstr, 10, 64)
	switch {
	case llu < 65535:
		v.Var.Type = UInt16Val
		v.Var.Len = 2
		v.Var.U16 = uint16(llu)
	case llu < 4294967295:
		v.Var.Type = UInt32Val
		v.Var.Len = 4
		v.Var.U32 = uint32(llu)
	default:
		v.Var.Type = UInt64Val
		v.Var.Len = 8
		v.Var.U64 = llu
	}
	return v
}
