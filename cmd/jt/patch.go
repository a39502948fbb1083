package main

import (
	"fmt"
	"os"

	"github.com/tjson-format/go-tjson/encode"
	"github.com/tjson-format/go-tjson/eval"
	"github.com/tjson-format/go-tjson/ir"
	"github.com/tjson-format/go-tjson/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a patch file", cli.ErrUsage)
	}
	pd, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	for _, arg := range objArgs(args[1:]) {
		node, err := objFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		doc, err := eval.MarshalJSON(node)
		ir.Free(node)
		if err != nil {
			return fmt.Errorf("error marshaling %s: %w", arg, err)
		}
		patched, err := p.Apply(doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		res, err := parse.Parse(patched, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding patched %s: %w", arg, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			ir.Free(res)
			return fmt.Errorf("error encoding result: %w", err)
		}
		ir.Free(res)
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
