package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sgf-format/go-sgf/encode"
	"github.com/sgf-format/go-sgf/format"
	"github.com/sgf-format/go-sgf/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render output with color'"`
	Compact bool `cli:"name=c aliases=compact desc='compact output without whitespace'"`
	Strict  bool `cli:"name=strict desc='strict validation: unique game-info properties, GM range check'"`

	S bool `cli:"name=s aliases=sgf desc='output in sgf'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.S:
		return format.SGFFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.SGFFormat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Compact(cfg.Compact),
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

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type LintConfig struct {
	*MainConfig
	Recurse bool `cli:"name=r aliases=recurse desc='descend into subdirectories'"`

	Lint *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}
