package main

import (
	"bytes"
	"fmt"

	"github.com/tjson-format/go-tjson/encode"
	"github.com/tjson-format/go-tjson/ir"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := objFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	defer ir.Free(a)
	b, err := objFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	defer ir.Free(b)
	if ir.Compare(a, b) == 0 {
		return nil
	}
	as, bs, err := diffTexts(a, b)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(as, bs, true)
	if cfg.colorOut(cc.Out) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		fmt.Fprint(cc.Out, dmp.PatchToText(dmp.PatchMake(as, diffs)))
	}
	return cli.ExitCodeErr(1)
}

// diffTexts renders both trees pretty and uncolored so the diff is
// line oriented and stable.
func diffTexts(a, b *ir.Node) (string, string, error) {
	var abuf, bbuf bytes.Buffer
	if err := encode.Encode(a, &abuf, encode.EncodePretty(true)); err != nil {
		return "", "", err
	}
	if err := encode.Encode(b, &bbuf, encode.EncodePretty(true)); err != nil {
		return "", "", err
	}
	return abuf.String(), bbuf.String(), nil
}
