// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/termcells/termcells/tools/unicode_data"
)

var _ = fmt.Print

const (
	ZERO_WIDTH_JOINER     = 0x200d
	VARIATION_SELECTOR_16 = 0xfe0f
)

// Span is a range of bytes in some text that is displayed as a single
// unit, occupying Width cells.
type Span struct {
	Start, End, Width int
}

func IteratorOverGraphemes(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		var cluster string
		for len(text) > 0 {
			cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
			if !yield(cluster) {
				return
			}
		}
	}
}

func SplitIntoGraphemes(text string) []string {
	ans := make([]string, 0, len(text))
	for t := range IteratorOverGraphemes(text) {
		ans = append(ans, t)
	}
	return ans
}

// ClusterWidth returns the number of cells occupied by a single grapheme
// cluster. Codepoints joined by U+200D share the cell(s) of the codepoint
// before the joiner and U+FE0F widens the preceding codepoint when it is
// one that the table says turns from narrow to wide.
func ClusterWidth(cluster string, table *unicode_data.CellTable) (width int) {
	var last_measured rune
	after_joiner := false
	for _, ch := range cluster {
		switch {
		case after_joiner:
			after_joiner = false
		case ch == ZERO_WIDTH_JOINER:
			after_joiner = true
		case ch == VARIATION_SELECTOR_16:
			if last_measured != 0 && table.IsNarrowToWide(last_measured) {
				width++
			}
			last_measured = 0
		default:
			if w := CellWidth(ch, table); w > 0 {
				width += w
				last_measured = ch
			}
		}
	}
	return
}

// SplitGraphemes divides text into spans, one per grapheme cluster, and
// returns them along with their total width.
func SplitGraphemes(text string, table *unicode_data.CellTable) (spans []Span, total_width int) {
	spans = make([]Span, 0, len(text))
	state := -1
	pos := 0
	var cluster string
	for rest := text; len(rest) > 0; {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := ClusterWidth(cluster, table)
		spans = append(spans, Span{Start: pos, End: pos + len(cluster), Width: w})
		pos += len(cluster)
		total_width += w
	}
	return
}

func single_cell_spans(text string) []Span {
	ans := make([]Span, 0, len(text))
	for pos, ch := range text {
		ans = append(ans, Span{Start: pos, End: pos + utf8.RuneLen(ch), Width: 1})
	}
	return ans
}
