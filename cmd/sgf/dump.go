package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sgf-format/go-sgf/encode"
	"github.com/sgf-format/go-sgf/format"
	"github.com/sgf-format/go-sgf/sgf"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		col, err := getCollection(cc, arg, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if err := dumpCollection(cfg, cc.Out, col); err != nil {
			return err
		}
	}
	return nil
}

func dumpCollection(cfg *DumpConfig, w io.Writer, col sgf.Collection) error {
	switch cfg.outFormat() {
	case format.JSONFormat:
		d, err := json.MarshalIndent(col.Interface(), "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(col.Interface())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return encode.Encode(col, w, cfg.encOpts(w)...)
	}
}
