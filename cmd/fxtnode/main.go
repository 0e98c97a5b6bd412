// Command fxtnode is the non-interactive CLI host for FoxTail (spec §6):
// it owns process startup/shutdown and binds to the same Node operations
// the original's interactive TShell bound to, without the shell itself
// (spec §1 keeps the interactive terminal out of scope).
package main

import (
	"fmt"
	"os"

	"github.com/foxtail/fxt/cmd/fxtnode/cmd"
	"github.com/foxtail/fxt/internal/fxerr"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode mirrors the top byte of the hierarchical error value (spec §6
// "Exit codes ... the specific code mirrors the top byte of the
// hierarchical error value").
func exitCode(err error) int {
	code, ok := fxerr.CodeOf(err)
	if !ok || code == fxerr.Success {
		return 1
	}
	return int(byte(uint32(code)))
}
