// Command procode is a minimal terminal text editor with a file tree,
// line numbers and Python syntax colouring.
package main

import (
	"os"

	"github.com/iw2rmb/procode"
)

// Build information injected via ldflags. An empty version falls back to
// the embedded release version.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	if err := newRootCmd(procode.Describe(version, commit, date)).Execute(); err != nil {
		os.Exit(1)
	}
}
