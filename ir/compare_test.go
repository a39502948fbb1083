package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	pair := func(a, b *Node) *Node {
		arr := Array("")
		arr.Kids = []*Node{a, b}
		return arr
	}
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// type ranking: Var < Bool < Array < Object
		{"Var < Bool", Var(""), Bool("", 0), -1},
		{"Bool < Array", Bool("", 1), Array(""), -1},
		{"Array < Object", Array(""), Object(""), -1},

		{"nil < node", nil, Var(""), -1},
		{"nil == nil", nil, nil, 0},

		{"name order", Num("a", 1), Num("b", 1), -1},

		{"false < true", Bool("", 0), Bool("", 1), -1},
		{"true == true", Bool("", 1), Bool("", 1), 0},

		{"num order", Num("", 1), Num("", 2), -1},
		{"num equal", Num("", 2), Num("", 2), 0},
		// differing value tags order by tag
		{"tag order", ParseNumber("", "1"), ParseNumber("", "70000"), -1},
		{"str order", Str("", "a"), Str("", "b"), -1},
		{"float order", Float("", 1.5), Float("", 2.5), -1},
		{"invalid == invalid", Var(""), Var(""), 0},

		{"empty arrays", Array(""), Array(""), 0},
		{"short array first", Array(""), pair(Num("", 1), Num("", 2)), -1},
		{"kid order", pair(Num("", 1), Num("", 2)), pair(Num("", 1), Num("", 3)), -1},
		{"deep equal", pair(Num("", 1), Str("", "x")), pair(Num("", 1), Str("", "x")), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}
