// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package cells

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var _ = fmt.Print

func width_command() *cobra.Command {
	show_spans := false
	cmd := &cobra.Command{
		Use:   "width [text ...]",
		Short: "Print the number of cells each text occupies",
		Long:  "Print the number of cells each argument occupies when displayed in a terminal. With no arguments, every line of stdin is measured.",
		RunE: run(func(cmd *cobra.Command, args []string) error {
			lines, err := input_lines(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range lines {
				cs := cell_string(line)
				if !show_spans {
					fmt.Fprintln(out, cs.CellLength())
					continue
				}
				fmt.Fprintf(out, "%d %s\n", cs.CellLength(), strconv.Quote(cs.Text()))
				for _, s := range cs.Spans() {
					fmt.Fprintf(out, "  %d-%d %d %s\n", s.Start, s.End, s.Width, strconv.Quote(cs.Text()[s.Start:s.End]))
				}
			}
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&show_spans, "spans", "s", false, "Also print the display units of the text with their byte offsets and widths")
	return cmd
}
