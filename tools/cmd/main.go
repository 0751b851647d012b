// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package main

import (
	"fmt"
	"os"

	"github.com/termcells/termcells/tools/cmd/benchmark"
	"github.com/termcells/termcells/tools/cmd/cells"
)

func main() {
	root := cells.NewRootCommand()
	benchmark.EntryPoint(root)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
