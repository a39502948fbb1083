package main

import (
	"io"
	"os"

	"github.com/tjson-format/go-tjson/encode"
	"github.com/tjson-format/go-tjson/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=p aliases=pretty desc='pretty print output'"`
	Debug  bool `cli:"name=d desc='dump the token stream to stderr'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseTrace(cfg.Debug),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(cfg.Pretty),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorOut reports whether output to w should be colorized.
func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type BuildConfig struct {
	*MainConfig

	Build *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
