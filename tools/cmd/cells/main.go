// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package cells

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/kovidgoyal/go-parallel"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/termcells/termcells"
	"github.com/termcells/termcells/tools/unicode_data"
	"github.com/termcells/termcells/tools/wcswidth"
)

var _ = fmt.Print

type global_options struct {
	unicode_version string
	debug           bool
	nfc             bool
	strip_escapes   bool
}

var opts global_options

func table() *unicode_data.CellTable {
	return unicode_data.Load(opts.unicode_version)
}

func cell_string(text string) *wcswidth.CellString {
	if opts.strip_escapes {
		text = wcswidth.StripEscapeCodes(text)
	}
	if opts.nfc {
		text = norm.NFC.String(text)
	}
	return wcswidth.NewCellString(text, wcswidth.WithTable(table()))
}

// input_lines returns the command line arguments, or the lines of stdin when
// there are none.
func input_lines(args []string, stdin io.Reader) (ans []string, err error) {
	if len(args) > 0 {
		return args, nil
	}
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		ans = append(ans, scanner.Text())
	}
	return ans, scanner.Err()
}

// run wraps a command implementation so that panics are reported as errors
func run(impl func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = parallel.Format_stacktrace_on_panic(r, 1)
			}
		}()
		return impl(cmd, args)
	}
}

func setup(cmd *cobra.Command, args []string) {
	if opts.debug {
		logger := log.New(cmd.ErrOrStderr(), "cells: ", log.Ltime|log.Lmicroseconds)
		unicode_data.Default().Debug = logger.Printf
	}
}

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "cells",
		Short:             "Measure, split and lay out text in terminal cells",
		Version:           termcells.VersionString,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRun:  setup,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.unicode_version, "unicode-version", "u", unicode_data.AUTO,
		"The Unicode version whose character widths to use. auto means the version from the "+unicode_data.UNICODE_VERSION_ENV+" environment variable, falling back to latest.")
	pf.BoolVar(&opts.debug, "debug", false, "Log how the Unicode version is resolved and when width tables are loaded")
	pf.BoolVar(&opts.nfc, "nfc", false, "Normalize input text to NFC before processing it")
	pf.BoolVarP(&opts.strip_escapes, "strip-escape-codes", "e", false, "Remove terminal escape codes, such as those used for colors, from input text before processing it")

	root.AddCommand(width_command(), split_command(), chop_command(), fit_command(), divide_command(), versions_command())
	return root
}
