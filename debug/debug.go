// Package debug gates optional diagnostics on SGF_DEBUG_* environment
// variables. It replaces ad-hoc verbosity levels; the library itself
// never writes to the console unless one of these is set.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Load   bool
	Schema bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SGF_DEBUG_PARSE")
	d.Load = boolEnv("SGF_DEBUG_LOAD")
	d.Schema = boolEnv("SGF_DEBUG_SCHEMA")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Load() bool {
	return d.Load
}
func Schema() bool {
	return d.Schema
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
