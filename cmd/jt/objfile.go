package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tjson-format/go-tjson/ir"
	"github.com/tjson-format/go-tjson/parse"

	"github.com/klauspost/compress/gzip"
	"github.com/scott-cotton/cli"
)

// objFile reads and parses one document argument.  "-" reads the
// command input and a ".gz" suffix selects gzip decompression.
func objFile(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	if strings.HasSuffix(arg, ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("could not decompress %q: %w", arg, err)
		}
		defer zr.Close()
		r = zr
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func objArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
