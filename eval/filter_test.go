package eval

import (
	"errors"
	"testing"

	"github.com/tjson-format/go-tjson/ir"
	"github.com/tjson-format/go-tjson/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestFilterObjects(t *testing.T) {
	arr := mustParse(t, `[
		{"name":"a","n":1},
		{"name":"b","n":2},
		{"name":"c","n":3}
	]`)
	defer ir.Free(arr)
	tests := []struct {
		src   string
		names []string
	}{
		{`n > 1`, []string{"b", "c"}},
		{`name == "a"`, []string{"a"}},
		{`n > 1 && name != "c"`, []string{"b"}},
		{`n > 9`, nil},
		{`missing == 1`, nil},
	}
	for _, tt := range tests {
		sel, err := Filter(arr, tt.src)
		if err != nil {
			t.Errorf("Filter(%q): %v", tt.src, err)
			continue
		}
		if len(sel) != len(tt.names) {
			t.Errorf("Filter(%q): got %d elements, want %d", tt.src, len(sel), len(tt.names))
			continue
		}
		for i, n := range sel {
			if s, ok := ir.GetStr(n, "name"); !ok || s != tt.names[i] {
				t.Errorf("Filter(%q)[%d] = %q, want %q", tt.src, i, s, tt.names[i])
			}
		}
	}
}

func TestFilterScalars(t *testing.T) {
	arr := mustParse(t, `[1,2,3,4]`)
	defer ir.Free(arr)
	sel, err := Filter(arr, `value % 2 == 0`)
	if err != nil {
		t.Fatal(err)
	}
	if len(sel) != 2 {
		t.Fatalf("got %d elements, want 2", len(sel))
	}
}

func TestFilterNonArray(t *testing.T) {
	obj := mustParse(t, `{"a":1}`)
	defer ir.Free(obj)
	if _, err := Filter(obj, `true`); !errors.Is(err, ir.ErrUnsupportedOperation) {
		t.Errorf("Filter on object = %v", err)
	}
}

func TestFilterBadExpr(t *testing.T) {
	arr := mustParse(t, `[1]`)
	defer ir.Free(arr)
	if _, err := Filter(arr, `((`); err == nil {
		t.Error("Filter(\"((\"): no error")
	}
}

func TestFilterNonBool(t *testing.T) {
	arr := mustParse(t, `[1,2]`)
	defer ir.Free(arr)
	// a non-boolean result selects nothing
	sel, err := Filter(arr, `value + 1`)
	if err != nil {
		t.Fatal(err)
	}
	if len(sel) != 0 {
		t.Errorf("got %d elements, want 0", len(sel))
	}
}
