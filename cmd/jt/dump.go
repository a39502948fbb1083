package main

import (
	"fmt"

	"github.com/tjson-format/go-tjson/encode"
	"github.com/tjson-format/go-tjson/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range objArgs(args) {
		node, err := objFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			ir.Free(node)
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		ir.Free(node)
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
