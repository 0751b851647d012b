// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package cells

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termcells/termcells/tools/unicode_data"
	"github.com/termcells/termcells/tools/utils"
)

var _ = fmt.Print

func versions_command() *cobra.Command {
	show_narrow_to_wide := false
	cmd := &cobra.Command{
		Use:   "versions [version ...]",
		Short: "List the bundled Unicode versions or show which one a version resolves to",
		RunE: run(func(cmd *cobra.Command, args []string) error {
			r := unicode_data.Default()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				selected := r.Resolve(opts.unicode_version)
				for _, v := range r.Versions() {
					marker := " "
					if v == selected {
						marker = "*"
					}
					fmt.Fprintln(out, marker, v)
				}
				return nil
			}
			for _, q := range args {
				t := r.Load(q)
				fmt.Fprintf(out, "%s: %s (%d ranges, %d narrow to wide)\n", q, t.Name, len(t.Widths), t.NarrowToWide.Len())
				if show_narrow_to_wide {
					codepoints := utils.SortedItems(t.NarrowToWide)
					parts := make([]string, len(codepoints))
					for i, ch := range codepoints {
						parts[i] = fmt.Sprintf("U+%04X", ch)
					}
					fmt.Fprintln(out, " ", strings.Join(parts, " "))
				}
			}
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&show_narrow_to_wide, "narrow-to-wide", "n", false, "List the codepoints that become two cells wide when followed by U+FE0F, in ascending order")
	return cmd
}
