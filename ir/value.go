package ir

import (
	"fmt"
)

// ValType is the tag of a Value.  The tag fully determines which payload
// field of the Value is meaningful.
type ValType int

const (
	InvalidVal ValType = iota
	UInt16Val
	Int16Val
	UInt32Val
	Int32Val
	UInt64Val
	Int64Val
	FloatVal
	StrVal
	BlobVal
)

func (t ValType) String() string {
	s, ok := map[ValType]string{
		InvalidVal: "Invalid",
		UInt16Val:  "UInt16",
		Int16Val:   "Int16",
		UInt32Val:  "UInt32",
		Int32Val:   "Int32",
		UInt64Val:  "UInt64",
		Int64Val:   "Int64",
		FloatVal:   "Float",
		StrVal:     "Str",
		BlobVal:    "Blob",
	}[t]
	if ok {
		return s
	}
	return "<unknown val type>"
}

// Value is the tagged payload of a Var or Bool node.  Len is the byte
// length of the active variant: the storage width for numbers, the
// string length for StrVal and the blob size for BlobVal.
type Value struct {
	Type ValType
	Len  int

	U16  uint16
	I16  int16
	U32  uint32
	I32  int32
	U64  uint64
	I64  int64
	F32  float32
	Str  string
	Blob []byte
}

func (v *Value) String() string {
	switch v.Type {
	case UInt16Val:
		return fmt.Sprintf("%d", v.U16)
	case Int16Val:
		return fmt.Sprintf("%d", v.I16)
	case UInt32Val:
		return fmt.Sprintf("%d", v.U32)
	case Int32Val:
		return fmt.Sprintf("%d", v.I32)
	case UInt64Val:
		return fmt.Sprintf("%d", v.U64)
	case Int64Val:
		return fmt.Sprintf("%d", v.I64)
	case FloatVal:
		return fmt.Sprintf("%f", v.F32)
	case StrVal:
		return v.Str
	case BlobVal:
		return fmt.Sprintf("<blob %d bytes>", len(v.Blob))
	default:
		return "<invalid>"
	}
}
