package main

import (
	"fmt"
	"os"

	"github.com/sgf-format/go-sgf/load"

	"github.com/scott-cotton/cli"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: lint requires files or directories", cli.ErrUsage)
	}
	var results []load.Result
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			results = append(results, load.Result{Path: arg, Err: err})
			continue
		}
		if fi.IsDir() {
			dirRes, err := load.Dir(arg, cfg.Recurse, cfg.parseOpts()...)
			if err != nil {
				results = append(results, load.Result{Path: arg, Err: err})
				continue
			}
			results = append(results, dirRes...)
			continue
		}
		results = append(results, load.Files([]string{arg}, cfg.parseOpts()...)...)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cc.Out, "%s: %v\n", res.Path, res.Err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok (%d game trees)\n", res.Path, len(res.Collection))
	}
	if failed > 0 {
		fmt.Fprintf(cc.Out, "%d of %d failed\n", failed, len(results))
		return cli.ExitCodeErr(1)
	}
	return nil
}
