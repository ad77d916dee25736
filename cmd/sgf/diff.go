package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sgf-format/go-sgf/encode"
	"github.com/sgf-format/go-sgf/sgf"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	c1, err := getCollection(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	c2, err := getCollection(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	s1, err := canonical(c1)
	if err != nil {
		return err
	}
	s2, err := canonical(c2)
	if err != nil {
		return err
	}
	if s1 == s2 {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(s1, s2, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if cfg.Color {
		fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	} else {
		printDiffs(cfg, cc, diffs)
	}
	return cli.ExitCodeErr(1)
}

// canonical renders the collection in its whitespace-normalized text
// form so the diff reflects game content, not layout.
func canonical(col sgf.Collection) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(col, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func printDiffs(cfg *DiffConfig, cc *cli.Context, diffs []diffpatch.Diff) {
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		switch d.Type {
		case diffpatch.DiffInsert:
			for _, ln := range strings.Split(text, "\n") {
				fmt.Fprintf(cc.Out, "+%s\n", ln)
			}
		case diffpatch.DiffDelete:
			for _, ln := range strings.Split(text, "\n") {
				fmt.Fprintf(cc.Out, "-%s\n", ln)
			}
		case diffpatch.DiffEqual:
			for _, ln := range strings.Split(text, "\n") {
				fmt.Fprintf(cc.Out, " %s\n", ln)
			}
		}
	}
}
