package encode

import (
	"bytes"
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

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`true`, `true`},
		{`false`, `false`},
		{`null`, `null`},
		{`"hi"`, `"hi"`},
		{`42`, `42`},
		{`-40000`, `-40000`},
		{`[1,2,3]`, `[1,2,3]`},
		{`{"a":1}`, `{"a" : 1}`},
		{
			`{"a":1,"b":[true,false,"x"],"c":-40000}`,
			`{"a" : 1,"b" : [true,false,"x"],"c" : -40000}`,
		},
		{`{"o":{"i":null}}`, `{"o" : {"i" : null}}`},
		{`2.5`, `2.500000`},
	}
	for _, tt := range tests {
		node := mustParse(t, tt.in)
		var buf bytes.Buffer
		if err := Encode(node, &buf); err != nil {
			t.Errorf("Encode(%q): %v", tt.in, err)
			ir.Free(node)
			continue
		}
		if got := buf.String(); got != tt.out {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.out)
		}
		ir.Free(node)
	}
}

func TestEncodePretty(t *testing.T) {
	node := mustParse(t, `{"a":1,"b":[2,3]}`)
	defer ir.Free(node)
	var buf bytes.Buffer
	if err := Encode(node, &buf, EncodePretty(true)); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a" : 1,
  "b" : [
    2,
    3
  ]
}`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	node := mustParse(t, `[1]`)
	defer ir.Free(node)
	var buf bytes.Buffer
	if err := Encode(node, &buf, EncodePretty(true), Indent(4)); err != nil {
		t.Fatal(err)
	}
	want := "[\n    1\n]"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeUnescaped(t *testing.T) {
	// string content is emitted raw
	node := ir.Str("", "a\tb")
	var buf bytes.Buffer
	if err := Encode(node, &buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\"a\tb\"" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeBlob(t *testing.T) {
	node := ir.Blob("d", []byte("hi"))
	var buf bytes.Buffer
	if err := Encode(node, &buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `"d" : "aGk="` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeComma(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeComma(ir.Num("a", 1), &buf, false); err != nil {
		t.Fatal(err)
	}
	if err := EncodeComma(ir.Num("b", 2), &buf, true); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `"a" : 1,"b" : 2` {
		t.Errorf("got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	ins := []string{
		`{"a":1,"b":[true,false,"x"],"c":-40000}`,
		`[[],{},null,"s",2.5]`,
		`{"wide":4294967295,"neg":-2147483648}`,
	}
	for _, in := range ins {
		node := mustParse(t, in)
		back, err := parse.Parse([]byte(MustString(node)))
		if err != nil {
			t.Errorf("reparse of %q: %v", in, err)
			ir.Free(node)
			continue
		}
		if ir.Compare(node, back) != 0 {
			t.Errorf("round trip of %q changed the tree", in)
		}
		ir.Free(back)
		ir.Free(node)
	}
}
