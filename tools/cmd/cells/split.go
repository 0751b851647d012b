// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package cells

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var _ = fmt.Print

func split_command() *cobra.Command {
	at := 0
	cmd := &cobra.Command{
		Use:   "split --at N [text ...]",
		Short: "Split text at a cell offset",
		Long:  "Split each text at the specified cell offset, printing the two halves quoted. A double width character straddling the offset is replaced by a space on either side.",
		RunE: run(func(cmd *cobra.Command, args []string) error {
			lines, err := input_lines(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, line := range lines {
				left, right := cell_string(line).SplitAt(at)
				fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(left), strconv.Quote(right))
			}
			return nil
		}),
	}
	cmd.Flags().IntVar(&at, "at", 0, "The cell offset at which to split")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func chop_command() *cobra.Command {
	width := 80
	cmd := &cobra.Command{
		Use:   "chop [text ...]",
		Short: "Fold text into lines no wider than the specified number of cells",
		RunE: run(func(cmd *cobra.Command, args []string) error {
			lines, err := input_lines(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, line := range lines {
				for _, chunk := range cell_string(line).Chop(width) {
					fmt.Fprintln(cmd.OutOrStdout(), chunk)
				}
			}
			return nil
		}),
	}
	cmd.Flags().IntVarP(&width, "width", "w", width, "The maximum number of cells per line")
	return cmd
}

func fit_command() *cobra.Command {
	size := 0
	truncate := false
	cmd := &cobra.Command{
		Use:   "fit --size N [text ...]",
		Short: "Crop or pad text to exactly the specified number of cells",
		RunE: run(func(cmd *cobra.Command, args []string) error {
			lines, err := input_lines(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			for _, line := range lines {
				cs := cell_string(line)
				var fitted string
				if truncate {
					fitted, _ = cs.Truncate(size)
				} else {
					fitted = cs.SetCellSize(size)
				}
				fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(fitted))
			}
			return nil
		}),
	}
	cmd.Flags().IntVar(&size, "size", 0, "The number of cells")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "Only crop, keeping whole characters and never padding")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}
