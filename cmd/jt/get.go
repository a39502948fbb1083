package main

import (
	"fmt"

	"github.com/tjson-format/go-tjson/encode"
	"github.com/tjson-format/go-tjson/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an element name", cli.ErrUsage)
	}
	key := args[0]
	if key == "" {
		return fmt.Errorf("%w: invalid name \"\"", cli.ErrUsage)
	}
	for _, arg := range objArgs(args[1:]) {
		node, err := objFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		found := ir.Find(node, key)
		if found == nil {
			ir.Free(node)
			return fmt.Errorf("%q not found in %s", key, arg)
		}
		if err := encode.Encode(found, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			ir.Free(node)
			return fmt.Errorf("error encoding result: %w", err)
		}
		ir.Free(node)
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
