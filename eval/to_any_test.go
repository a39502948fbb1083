package eval

import (
	"testing"

	"github.com/tjson-format/go-tjson/ir"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	node := mustParse(t, `{"a":1,"b":[true,null],"c":"x","f":2.5}`)
	defer ir.Free(node)
	want := map[string]any{
		"a": int64(1),
		"b": []any{true, nil},
		"c": "x",
		"f": float64(2.5),
	}
	if d := cmp.Diff(want, ToAny(node)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestToAnyAnonymousMembers(t *testing.T) {
	obj := ir.Object("")
	if err := ir.ObjectAdd(obj, ir.Num("", 7)); err != nil {
		t.Fatal(err)
	}
	defer ir.Free(obj)
	want := map[string]any{"0": int64(7)}
	if d := cmp.Diff(want, ToAny(obj)); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestMarshalJSON(t *testing.T) {
	node := mustParse(t, `{"a":[1,2]}`)
	defer ir.Free(node)
	d, err := MarshalJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(d); got != `{"a":[1,2]}` {
		t.Errorf("got %s", got)
	}
}

func TestMarshalJSONEscapes(t *testing.T) {
	node := ir.Str("", "a\tb")
	d, err := MarshalJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(d); got != `"a\tb"` {
		t.Errorf("got %s", got)
	}
}
