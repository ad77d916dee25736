package load

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgf-format/go-sgf/parse"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "game.sgf", `(;FF[4]GM[1];B[aa])`)
	col, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(col) != 1 || len(col[0].Nodes) != 2 {
		t.Errorf("got %d trees, want 1 with 2 nodes", len(col))
	}
}

func TestFileNotFound(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.sgf"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not-exist", err)
	}
}

func TestFilesIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.sgf", `(;B[aa])`)
	bad := writeFile(t, dir, "bad.sgf", `(;C[unterminated`)
	good2 := writeFile(t, dir, "good2.sgf", `(;W[bb])`)

	res := Files([]string{good, bad, good2})
	if len(res) != 3 {
		t.Fatalf("got %d results, want 3", len(res))
	}
	if res[0].Err != nil || res[2].Err != nil {
		t.Errorf("good files errored: %v, %v", res[0].Err, res[2].Err)
	}
	if res[1].Err == nil {
		t.Error("bad file did not error")
	}
	if !errors.Is(res[1].Err, parse.ErrSyntax) {
		t.Errorf("bad file: got %v, want syntax error", res[1].Err)
	}
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sgf", `(;B[aa])`)
	writeFile(t, dir, "b.SGF", `(;W[bb])`)
	writeFile(t, dir, "notes.txt", `not sgf`)
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "c.sgf", `(;B[cc])`)

	res, err := Dir(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("flat: got %d results, want 2", len(res))
	}

	res, err = Dir(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 3 {
		t.Fatalf("recursive: got %d results, want 3", len(res))
	}
	for _, r := range res {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Path, r.Err)
		}
	}
}
