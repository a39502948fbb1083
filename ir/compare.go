package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Two trees compare equal exactly when they have the same shape,
// names, value tags and values.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(rank(a.Type), rank(b.Type)); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	switch a.Type {
	case VarType, BoolType:
		return compareValues(&a.Var, &b.Var)
	case ArrayType, ObjectType:
		return compareKids(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Var < Bool < Array < Object.
func rank(t Type) int {
	switch t {
	case VarType:
		return 0
	case BoolType:
		return 1
	case ArrayType:
		return 2
	case ObjectType:
		return 3
	}
	return 100
}

func compareValues(a, b *Value) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	switch a.Type {
	case UInt16Val:
		return cmp.Compare(a.U16, b.U16)
	case Int16Val:
		return cmp.Compare(a.I16, b.I16)
	case UInt32Val:
		return cmp.Compare(a.U32, b.U32)
	case Int32Val:
		return cmp.Compare(a.I32, b.I32)
	case UInt64Val:
		return cmp.Compare(a.U64, b.U64)
	case Int64Val:
		return cmp.Compare(a.I64, b.I64)
	case FloatVal:
		return cmp.Compare(a.F32, b.F32)
	case StrVal:
		return strings.Compare(a.Str, b.Str)
	case BlobVal:
		return bytes.Compare(a.Blob, b.Blob)
	}
	return 0
}

func compareKids(a, b *Node) int {
	if c := cmp.Compare(len(a.Kids), len(b.Kids)); c != 0 {
		return c
	}
	for i := range a.Kids {
		if c := Compare(a.Kids[i], b.Kids[i]); c != 0 {
			return c
		}
	}
	return 0
}
