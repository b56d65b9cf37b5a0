//go:build debug

// Package debug provides opt-in trace logging, used by the parser's
// error path. It is a no-op unless the binary is built with the
// "debug" tag.
package debug

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
)

const Enabled = true

var logger = log.New(os.Stderr, "|xmlparser debug| ", 0)

// Printf logs a formatted trace line. Only active in "debug" builds.
func Printf(f string, args ...interface{}) {
	logger.Printf(f, args...)
}

// Dump pretty-prints v using go-spew. Only active in "debug" builds.
func Dump(v ...interface{}) {
	spew.Dump(v...)
}
