package eval

import (
	"fmt"

	"github.com/tjson-format/go-tjson/debug"
	"github.com/tjson-format/go-tjson/ir"

	"github.com/expr-lang/expr"
)

// Filter returns the elements of arr for which the predicate src
// evaluates to true.  Object elements expose their members as
// variables; every element is also available as `value`.
func Filter(arr *ir.Node, src string) ([]*ir.Node, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	var res []*ir.Node
	iterErr := ir.Iterate(arr, func(n *ir.Node) error {
		out, err := expr.Run(prg, filterEnv(n))
		if err != nil {
			return err
		}
		if debug.Eval() {
			debug.Logf("filter %q on %v: %v\n", src, ToAny(n), out)
		}
		if b, ok := out.(bool); ok && b {
			res = append(res, n)
		}
		return nil
	})
	if iterErr != nil {
		return nil, iterErr
	}
	return res, nil
}

func filterEnv(n *ir.Node) map[string]any {
	v := ToAny(n)
	env := map[string]any{"value": v}
	if m, ok := v.(map[string]any); ok {
		for k, kv := range m {
			env[k] = kv
		}
	}
	return env
}
