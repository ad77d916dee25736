package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sgf-format/go-sgf/parse"
	"github.com/sgf-format/go-sgf/sgf"

	"github.com/scott-cotton/cli"
)

// getCollection parses one file argument, with "-" meaning stdin.
func getCollection(cc *cli.Context, path string, opts ...parse.ParseOption) (sgf.Collection, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}
