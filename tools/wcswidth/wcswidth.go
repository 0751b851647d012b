// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"strings"
	"unicode/utf8"

	"github.com/termcells/termcells/tools/unicode_data"
	"github.com/termcells/termcells/tools/utils"
)

// StringwidthWithTable returns the number of cells needed to display text.
func StringwidthWithTable(text string, table *unicode_data.CellTable) int {
	if IsAllSingleCell(text) {
		return utf8.RuneCountInString(text)
	}
	if !strings.ContainsAny(text, "\u200d\ufe0f") {
		// without joiners or variation selectors the width of every cluster
		// is just the sum of the widths of its codepoints
		ans := 0
		for _, ch := range text {
			ans += CellWidth(ch, table)
		}
		return ans
	}
	_, ans := SplitGraphemes(text, table)
	return ans
}

func Stringwidth(text string) int {
	return StringwidthWithTable(text, default_table())
}

// CellLen returns the number of cells needed to display text using the
// widths from the specified unicode version.
func CellLen(text string, unicode_version string) int {
	return StringwidthWithTable(text, unicode_data.Load(unicode_version))
}

var cell_len_cache = utils.NewLRUCache[string, int](4096)

// CachedCellLen is Stringwidth with its results memoized. Only use it for
// text that recurs often, such as borders and labels, as every distinct
// string is kept until evicted.
func CachedCellLen(text string) int {
	return cell_len_cache.MustGetOrCreate(text, Stringwidth)
}
