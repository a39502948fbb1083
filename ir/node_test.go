package ir

import (
	"testing"
)

func TestParseNumberWidths(t *testing.T) {
	tests := []struct {
		in  string
		tag ValType
		i64 int64
	}{
		{"0", UInt16Val, 0},
		{"1", UInt16Val, 1},
		{"65534", UInt16Val, 65534},
		// boundary values land in the next wider type
		{"65535", UInt32Val, 65535},
		{"4294967294", UInt32Val, 4294967294},
		{"4294967295", UInt64Val, 4294967295},
		{"18446744073709551615", UInt64Val, -1},
		{"-1", Int16Val, -1},
		{"-32767", Int16Val, -32767},
		{"-32768", Int32Val, -32768},
		{"32767", UInt16Val, 32767},
		{"-40000", Int32Val, -40000},
		{"-2147483647", Int32Val, -2147483647},
		{"-2147483648", Int64Val, -2147483648},
		{"2147483647", UInt32Val, 2147483647},
	}
	for _, tt := range tests {
		n := ParseNumber("x", tt.in)
		if n.Type != VarType {
			t.Errorf("ParseNumber(%q).Type = %v, want VarType", tt.in, n.Type)
		}
		if n.Var.Type != tt.tag {
			t.Errorf("ParseNumber(%q) tag = %v, want %v", tt.in, n.Var.Type, tt.tag)
			continue
		}
		var got int64
		switch tt.tag {
		case UInt16Val:
			got = int64(n.Var.U16)
		case Int16Val:
			got = int64(n.Var.I16)
		case UInt32Val:
			got = int64(n.Var.U32)
		case Int32Val:
			got = int64(n.Var.I32)
		case UInt64Val:
			got = int64(n.Var.U64)
		case Int64Val:
			got = n.Var.I64
		}
		if got != tt.i64 {
			t.Errorf("ParseNumber(%q) = %d, want %d", tt.in, got, tt.i64)
		}
	}
}

func TestParseNumberFloat(t *testing.T) {
	for _, in := range []string{"1.5", "1e14", "-2.5e-3", "0.0"} {
		n := ParseNumber("", in)
		if n.Var.Type != FloatVal {
			t.Errorf("ParseNumber(%q) tag = %v, want FloatVal", in, n.Var.Type)
		}
	}
	if got := ParseNumber("", "2.5").Var.F32; got != 2.5 {
		t.Errorf("got %v, want 2.5", got)
	}
}

func TestParseNumberMalformed(t *testing.T) {
	// malformed input parses to zero
	n := ParseNumber("", "--3")
	if n.Var.Type != Int16Val || n.Var.I16 != 0 {
		t.Errorf("got tag=%v val=%d, want Int16Val 0", n.Var.Type, n.Var.I16)
	}
	// out of range clamps to the widest type
	n = ParseNumber("", "-99999999999999999999")
	if n.Var.Type != Int64Val || n.Var.I64 != -9223372036854775808 {
		t.Errorf("got tag=%v val=%d, want Int64Val min", n.Var.Type, n.Var.I64)
	}
}

func TestConstructors(t *testing.T) {
	if n := Bool("b", 1); n.Type != BoolType || n.Var.U16 != 1 || n.Var.Len != 2 {
		t.Errorf("Bool(1): %+v", n)
	}
	if n := Bool("b", 0); n.Var.U16 != 0 {
		t.Errorf("Bool(0): %+v", n)
	}
	if n := Num("n", 7); n.Var.Type != UInt32Val || n.Var.U32 != 7 || n.Var.Len != 4 {
		t.Errorf("Num: %+v", n)
	}
	if n := Str("s", "hi"); n.Var.Type != StrVal || n.Var.Str != "hi" || n.Var.Len != 2 {
		t.Errorf("Str: %+v", n)
	}
	if n := Var("v"); n.Var.Type != InvalidVal {
		t.Errorf("Var: %+v", n)
	}
	if n := Blob("d", []byte{1, 2, 3}); n.Var.Type != BlobVal || n.Var.Len != 3 {
		t.Errorf("Blob: %+v", n)
	}
}
