package main

import (
	"fmt"

	"github.com/tjson-format/go-tjson/encode"
	"github.com/tjson-format/go-tjson/ir"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Build.Parse(cc, args); err != nil {
		return err
	}
	node, err := buildObj()
	if err != nil {
		return err
	}
	defer ir.Free(node)
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}

// buildObj assembles a small document exercising every constructor.
func buildObj() (*ir.Node, error) {
	root := ir.Object("")
	consts := ir.Object("constants")
	for _, c := range []struct {
		name string
		val  float32
	}{
		{"pi", 3.14159265},
		{"phi", 1.61803399},
		{"e", 2.71828183},
		{"ln2", 0.69314718},
	} {
		if err := ir.ObjectAdd(consts, ir.Float(c.name, c.val)); err != nil {
			return nil, err
		}
	}
	if err := ir.ObjectAdd(root, consts); err != nil {
		return nil, err
	}
	primes := ir.Array("primes")
	for _, p := range []int{2, 3, 5, 7, 11, 13} {
		if err := ir.ArrayAdd(primes, ir.Num("", p)); err != nil {
			return nil, err
		}
	}
	if err := ir.ObjectAdd(root, primes); err != nil {
		return nil, err
	}
	for _, kid := range []*ir.Node{
		ir.Str("name", "sample"),
		ir.Bool("generated", 1),
		ir.Num("version", 1),
		ir.Var("extra"),
	} {
		if err := ir.ObjectAdd(root, kid); err != nil {
			return nil, err
		}
	}
	return root, nil
}
