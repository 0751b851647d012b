// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/termcells/termcells/tools/unicode_data"
)

var _ = fmt.Print

// Blocks whose every codepoint is one cell wide in all bundled Unicode versions
var single_cell_ranges = [...][2]rune{
	{0x20, 0x7e},     // Latin (excluding non-printable)
	{0xa0, 0xac},     // Latin-1 punctuation, excluding the soft hyphen
	{0xae, 0x2ff},    // Latin-1 and Latin extended, IPA, spacing modifiers
	{0x370, 0x482},   // Greek / Cyrillic
	{0x2500, 0x25fc}, // Box drawing, block elements, geometric shapes
	{0x2800, 0x28ff}, // Braille
}

const single_cell_limit = 0x2900

var single_cells = func() (ans [single_cell_limit / 64]uint64) {
	for _, r := range single_cell_ranges {
		for ch := r[0]; ch <= r[1]; ch++ {
			ans[ch>>6] |= 1 << (ch & 63)
		}
	}
	return
}()

// IsSingleCell reports whether ch is in the set of codepoints known to be
// one cell wide without consulting any width table.
func IsSingleCell(ch rune) bool {
	return 0 <= ch && ch < single_cell_limit && single_cells[ch>>6]&(1<<(ch&63)) != 0
}

// IsAllSingleCell reports whether every character of text is in the single
// cell set, in which case its cell length is its character count.
func IsAllSingleCell(text string) bool {
	for i := 0; i < len(text); i++ {
		if b := text[i]; b >= utf8.RuneSelf {
			for _, ch := range text[i:] {
				if !IsSingleCell(ch) {
					return false
				}
			}
			return true
		} else if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

// CellWidth returns the number of cells (0, 1 or 2) ch occupies according to table.
func CellWidth(ch rune, table *unicode_data.CellTable) int {
	if IsSingleCell(ch) {
		return 1
	}
	widths := table.Widths
	low, high := 0, len(widths)-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		r := &widths[mid]
		switch {
		case ch < r.Start:
			high = mid - 1
		case ch > r.End:
			low = mid + 1
		default:
			if r.Width < 0 {
				return 0
			}
			return int(r.Width)
		}
	}
	return 1
}

var default_table = sync.OnceValue(func() *unicode_data.CellTable {
	return unicode_data.Load(unicode_data.AUTO)
})

// DefaultTable is the table selected by UNICODE_VERSION, or the latest one
func DefaultTable() *unicode_data.CellTable { return default_table() }

func Runewidth(code rune) int {
	return CellWidth(code, default_table())
}

func RunewidthForVersion(code rune, unicode_version string) int {
	return CellWidth(code, unicode_data.Load(unicode_version))
}
