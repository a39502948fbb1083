package ir

// The typed getters look up a named member of an object node and return
// its value when the member's kind and value tag match the requested
// type exactly.  Absence and type mismatch are deliberately
// indistinguishable: both report not found.

// GetStr returns the string value of the member of node named name.
func GetStr(node *Node, name string) (string, bool) {
	v := getVal(node, name, VarType, StrVal)
	if v == nil {
		return "", false
	}
	return v.Str, true
}

// GetBool returns the boolean value of the member of node named name.
func GetBool(node *Node, name string) (bool, bool) {
	if node == nil || node.Type != ObjectType || name == "" {
		return false, false
	}
	for _, kid := range node.Kids {
		if kid.Name != name {
			continue
		}
		if kid.Type == BoolType && kid.Var.Type == UInt16Val {
			return kid.Var.U16 != 0, true
		}
	}
	return false, false
}

// GetNum returns the integer value of the member of node named name.
// Only a UInt32-tagged var matches; use GetI64 for the other widths.
func GetNum(node *Node, name string) (int, bool) {
	v := getVal(node, name, VarType, UInt32Val)
	if v == nil {
		return 0, false
	}
	return int(v.U32), true
}

// GetI64 returns the value of the member of node named name widened to
// int64.  Any integer-tagged var matches.
func GetI64(node *Node, name string) (int64, bool) {
	if node == nil || node.Type != ObjectType || name == "" {
		return 0, false
	}
	for _, kid := range node.Kids {
		if kid.Name != name || kid.Type != VarType {
			continue
		}
		switch kid.Var.Type {
		case UInt16Val:
			return int64(kid.Var.U16), true
		case Int16Val:
			return int64(kid.Var.I16), true
		case UInt32Val:
			return int64(kid.Var.U32), true
		case Int32Val:
			return int64(kid.Var.I32), true
		case UInt64Val:
			return int64(kid.Var.U64), true
		case Int64Val:
			return kid.Var.I64, true
		}
	}
	return 0, false
}

// GetFloat returns the float value of the member of node named name.
func GetFloat(node *Node, name string) (float32, bool) {
	v := getVal(node, name, VarType, FloatVal)
	if v == nil {
		return 0, false
	}
	return v.F32, true
}

// GetVar returns the value of the member var of node named name.  The
// returned value is a reference into the tree and must not be modified.
func GetVar(node *Node, name string) *Value {
	if node == nil || node.Type != ObjectType || name == "" {
		return nil
	}
	for _, kid := range node.Kids {
		if kid.Name == name && kid.Type == VarType {
			return &kid.Var
		}
	}
	return nil
}

func getVal(node *Node, name string, nt Type, vt ValType) *Value {
	if node == nil || node.Type != ObjectType || name == "" {
		return nil
	}
	for _, kid := range node.Kids {
		if kid.Name != name {
			continue
		}
		if kid.Type == nt && kid.Var.Type == vt {
			return &kid.Var
		}
	}
	return nil
}
