package ir

import "fmt"

// Type is the kind of a Node.
type Type int

const (
	ArrayType Type = iota
	ObjectType
	VarType
	BoolType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ArrayType:  "Array",
		ObjectType: "Object",
		VarType:    "Var",
		BoolType:   "Bool",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Array":  ArrayType,
		"Object": ObjectType,
		"Var":    VarType,
		"Bool":   BoolType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ArrayType,
		ObjectType,
		VarType,
		BoolType,
	}
}

// IsContainer reports whether nodes of type t own children.
func (t Type) IsContainer() bool {
	switch t {
	case ArrayType, ObjectType:
		return true
	default:
		return false
	}
}
