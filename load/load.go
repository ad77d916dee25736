// Package load reads SGF files and directories into parsed
// collections. Batch loading isolates failures per file: one bad file
// never aborts the rest of the batch.
package load

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgf-format/go-sgf/debug"
	"github.com/sgf-format/go-sgf/parse"
	"github.com/sgf-format/go-sgf/sgf"
)

// Extension is the file extension Dir selects candidate files by.
const Extension = ".sgf"

// Result is the outcome of loading one file. Exactly one of
// Collection and Err is set.
type Result struct {
	Path       string
	Collection sgf.Collection
	Err        error
}

// File reads and parses one SGF file.
func File(path string, opts ...parse.ParseOption) (sgf.Collection, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	col, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if debug.Load() {
		debug.Logf("loaded %s: %d game trees\n", path, len(col))
	}
	return col, nil
}

// Files loads each path, collecting per-file results.
func Files(paths []string, opts ...parse.ParseOption) []Result {
	res := make([]Result, 0, len(paths))
	for _, path := range paths {
		col, err := File(path, opts...)
		res = append(res, Result{Path: path, Collection: col, Err: err})
	}
	return res
}

// Dir enumerates files under root carrying the SGF extension,
// descending into subdirectories only when recurse is set, and loads
// each candidate.
func Dir(root string, recurse bool, opts ...parse.ParseOption) ([]Result, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if !recurse && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), Extension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %q: %w", root, err)
	}
	return Files(paths, opts...), nil
}
