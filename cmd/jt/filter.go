package main

import (
	"fmt"

	"github.com/tjson-format/go-tjson/encode"
	"github.com/tjson-format/go-tjson/eval"
	"github.com/tjson-format/go-tjson/ir"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range objArgs(args[1:]) {
		node, err := objFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		sel, err := eval.Filter(node, src)
		if err != nil {
			ir.Free(node)
			return fmt.Errorf("error filtering %s: %w", arg, err)
		}
		for _, elt := range sel {
			if err := encode.Encode(elt, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				ir.Free(node)
				return fmt.Errorf("error encoding result: %w", err)
			}
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				ir.Free(node)
				return err
			}
		}
		ir.Free(node)
	}
	return nil
}
