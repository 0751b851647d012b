// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package cells

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/termcells/termcells/tools/ratio"
)

var _ = fmt.Print

type divide_mode string

const (
	DIVIDE  divide_mode = "divide"
	RESOLVE divide_mode = "resolve"
)

var _ pflag.Value = (*divide_mode)(nil)

func (self *divide_mode) String() string { return string(*self) }
func (self *divide_mode) Type() string   { return "mode" }

func (self *divide_mode) Set(val string) error {
	switch m := divide_mode(strings.ToLower(val)); m {
	case DIVIDE, RESOLVE:
		*self = m
		return nil
	}
	return fmt.Errorf("must be one of %s or %s", DIVIDE, RESOLVE)
}

func divide_command() *cobra.Command {
	total := 0
	mode := DIVIDE
	cmd := &cobra.Command{
		Use:   "divide --total N request ...",
		Short: "Divide a number of cells between regions",
		Long: `Divide a number of cells between regions, printing the size of each region.
Every region is described by a comma separated list of key=value pairs, where the keys are:
ratio (the share of the flexible space), min (the minimum size) and size (a fixed size).
A bare number is a ratio. For example: divide --total 80 size=20 ratio=2,min=10 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string) error {
			requests, err := ratio.ParseSizeRequests(args...)
			if err != nil {
				return err
			}
			var sizes []int
			if mode == RESOLVE {
				sizes = ratio.Resolve(total, requests)
			} else {
				sizes = ratio.Divide(total, requests)
			}
			parts := make([]string, len(sizes))
			for i, s := range sizes {
				parts[i] = strconv.Itoa(s)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		}),
	}
	cmd.Flags().IntVarP(&total, "total", "t", 0, "The number of cells to divide")
	cmd.Flags().Var(&mode, "mode", "How to divide: divide uses largest remainder rounding with exact totals, resolve carries fractional cells from region to region")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}
