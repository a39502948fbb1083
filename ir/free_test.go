package ir

import (
	"testing"
)

func TestFree(t *testing.T) {
	root := Object("root")
	kid := Str("s", "hello")
	if err := ObjectAdd(root, kid); err != nil {
		t.Fatal(err)
	}
	arr := Array("list")
	if err := ArrayAdd(arr, Num("", 1)); err != nil {
		t.Fatal(err)
	}
	if err := ObjectAdd(root, arr); err != nil {
		t.Fatal(err)
	}
	Free(root)
	if root.Name != "" || root.Kids != nil || root.Type != ArrayType {
		t.Errorf("root not zeroed: %+v", root)
	}
	if kid.Var.Str != "" || kid.Var.Type != InvalidVal {
		t.Errorf("kid not zeroed: %+v", kid)
	}
	if arr.Kids != nil {
		t.Errorf("arr not zeroed: %+v", arr)
	}
}

func TestFreeNil(t *testing.T) {
	Free(nil)
}
