// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/termcells/termcells/tools/unicode_data"
)

var _ = fmt.Print

func TestWCSWidth(t *testing.T) {
	latest := unicode_data.Load(unicode_data.LATEST)

	wcswidth := func(text string, expected int) {
		if w := StringwidthWithTable(text, latest); w != expected {
			t.Fatalf("The width for %#v was %d instead of %d", text, w, expected)
		}
		if w := CellLen(text, unicode_data.LATEST); w != expected {
			t.Fatalf("The cell length for %#v was %d instead of %d", text, w, expected)
		}
		if _, w := SplitGraphemes(text, latest); w != expected {
			t.Fatalf("The total width of the graphemes of %#v was %d instead of %d", text, w, expected)
		}
	}
	wcwidth := func(text string, widths ...int) {
		for i, q := range []rune(text) {
			if w := CellWidth(q, latest); w != widths[i] {
				t.Fatalf("The width of the char: U+%x was %d instead of %d", q, w, widths[i])
			}
		}
	}

	wcwidth("a1\000\x1b\u0300コニチ✔", 1, 1, 0, 0, 0, 2, 2, 2, 1)
	wcwidth("\u200d\u200b\U0001f4a9\u3000", 0, 0, 2, 2)
	wcswidth("", 0)
	wcswidth("abc", 3)
	wcswidth("a\x1bb", 2)
	wcswidth("\u2716\u2716\ufe0f\U0001f337", 5)
	wcswidth("\u25b6\ufe0f", 2)
	wcswidth("\u2714\ufe0f", 2)
	wcswidth("\U0001f610\ufe0e", 2)
	wcswidth("\U0001f1e6a", 2)
	wcswidth("\U0001F1E6a\U0001F1E8a", 4)
	wcswidth("\U0001F1E6\U0001F1E8a", 3)
	wcswidth("\U0001f469\u200d\U0001f527", 2)
	wcswidth("a\U0001f469\u200d\U0001f527b", 4)
	wcswidth("e\u0301\u0301", 1)
	wcswidth("わさび", 6)
	// one wide ideograph and three narrow characters
	wcswidth("中abc", 5)
	// Flags individually and together
	wcwidth("\U0001f1ee\U0001f1f3", 1, 1)
	wcswidth("\U0001f1ee\U0001f1f3", 2)

	if Runewidth('a') != 1 || RunewidthForVersion('\u231a', "8.0.0") != 1 || RunewidthForVersion('\u231a', "9.0.0") != 2 {
		t.Fatalf("Per version rune widths are incorrect")
	}
	if CellLen("\u231a\u231a", "8") != 2 || CellLen("\u231a\u231a", "9") != 4 || CellLen("\u231a\u231a", "not a version") != 4 {
		t.Fatalf("Per version cell lengths are incorrect")
	}
	if CellLen("\u2716\ufe0f", "8.0.0") != 1 {
		t.Fatalf("Variation selector widened a character in a version without narrow to wide data")
	}
	for _, q := range []string{"abc", "わさび", "\U0001f469\u200d\U0001f527"} {
		if CachedCellLen(q) != Stringwidth(q) || CachedCellLen(q) != Stringwidth(q) {
			t.Fatalf("Cached cell length for %#v differs from uncached", q)
		}
	}
	if CellLen(strings.Repeat("abc", 200), "auto") != 600 {
		t.Fatalf("Cell length of long ASCII string is incorrect")
	}
}

func TestSingleCellRanges(t *testing.T) {
	for _, version := range unicode_data.VERSIONS {
		table := unicode_data.Load(version)
		for _, r := range single_cell_ranges {
			for ch := r[0]; ch <= r[1]; ch++ {
				if !IsSingleCell(ch) {
					t.Fatalf("U+%x is not in the single cell set", ch)
				}
				if w := table_width(table, ch); w != 1 {
					t.Fatalf("U+%x is in the single cell set but has width %d in %s", ch, w, version)
				}
			}
		}
	}
	for _, ch := range []rune{0, 0x1f, 0x7f, 0x9f, 0xad, 0x300, 0x483, 0x3042, 0x1f4a9, -1, 0x10ffff} {
		if IsSingleCell(ch) {
			t.Fatalf("U+%x is wrongly in the single cell set", ch)
		}
	}
	for text, expected := range map[string]bool{
		"": true, "abc": true, "┌─┬┐│ ││├─┼┤": true, "ελληνικά": true, "café": true,
		"a\tb": false, "💩": false, "わさび": false, "a\u00adb": false, "e\u0301": false,
	} {
		if IsAllSingleCell(text) != expected {
			t.Fatalf("IsAllSingleCell(%#v) != %v", text, expected)
		}
	}
}

// the table width without the single cell shortcut
func table_width(table *unicode_data.CellTable, ch rune) int {
	for _, r := range table.Widths {
		if r.Start <= ch && ch <= r.End {
			return max(0, int(r.Width))
		}
	}
	return 1
}

func TestCellWidthBinarySearch(t *testing.T) {
	for _, version := range []string{"4.1.0", "9.0.0", "15.1.0", "17.0.0"} {
		table := unicode_data.Load(version)
		for i, r := range table.Widths {
			expected := max(0, int(r.Width))
			for _, ch := range []rune{r.Start, min(r.Start+1, r.End), r.End} {
				if IsSingleCell(ch) {
					continue
				}
				if w := CellWidth(ch, table); w != expected {
					t.Fatalf("Width of U+%x in %s is %d instead of %d", ch, version, w, expected)
				}
			}
			if i+1 < len(table.Widths) && table.Widths[i+1].Start > r.End+1 {
				if w := CellWidth(r.End+1, table); w != 1 {
					t.Fatalf("Width of unlisted U+%x in %s is %d instead of 1", r.End+1, version, w)
				}
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	truncate := func(text string, length int, expected string, expected_width int) {
		actual, actual_width := TruncateToVisualLengthWithWidth(text, length)
		if actual != expected {
			t.Fatalf("Failed to truncate \"%s\" to %d\nExpected: %#v\nActual:   %#v", text, length, expected, actual)
		}
		if actual_width != expected_width {
			t.Fatalf("Failed to truncate with width \"%s\" to %d\nExpected: %d\nActual:   %d", text, length, expected_width, actual_width)
		}
		if length > 0 && TruncateToVisualLength(text, length) != expected {
			t.Fatalf("TruncateToVisualLength differs from TruncateToVisualLengthWithWidth")
		}
	}
	truncate("abc", 4, "abc", 3)
	truncate("abc", 3, "abc", 3)
	truncate("abc", 2, "ab", 2)
	truncate("abc", 0, "", 0)
	truncate("abc", -3, "", 0)
	truncate("a🌷", 2, "a", 1)
	truncate("a🌷", 3, "a🌷", 3)
	truncate("a🌷b", 3, "a🌷", 3)
	truncate("a🌷b", 4, "a🌷b", 4)
	truncate("a🌷\ufe0e", 2, "a", 1)
	truncate("a🌷\ufe0eb", 3, "a🌷\ufe0e", 3)
	truncate("ae\u0301b", 2, "ae\u0301", 2)
	truncate("\U0001f469\u200d\U0001f527x", 1, "", 0)
	truncate("\U0001f469\u200d\U0001f527x", 2, "\U0001f469\u200d\U0001f527", 2)
}

func TestCellIterator(t *testing.T) {
	f := func(text string, expected ...string) {
		ci := NewCellIterator(text)
		var actual []string
		for ci.Forward() {
			actual = append(actual, ci.Current())
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("Failed forward iteration for string: %#v\n%s", text, diff)
		}
	}

	f("abc", "a", "b", "c")
	f("a🌷o\u0300", "a", "🌷", "o\u0300")
	f("a🌷\ufe0eo\u0300", "a", "🌷\ufe0e", "o\u0300")
	f("o\u0300ne", "o\u0300", "n", "e")
	f("")

	r := func(text string, expected ...string) {
		ci := NewCellIterator(text).GotoEnd()
		var actual []string
		for ci.Backward() {
			actual = append(actual, ci.Current())
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Fatalf("Failed reverse iteration for string: %#v\n%s", text, diff)
		}
	}

	r("abc", "c", "b", "a")
	r("a🌷o\u0300", "o\u0300", "🌷", "a")
	r("o\u0300ne", "e", "n", "o\u0300")
	r("")

	ci := NewCellIterator("123")
	ci.Forward()
	ci.Forward()
	ci.Forward()
	ci.Backward()
	if ci.Current() != "2" {
		t.Fatalf("switching to backward failed, %#v != %#v", "2", ci.Current())
	}
	ci.Backward()
	if ci.Current() != "1" {
		t.Fatalf("switching to backward failed, %#v != %#v", "1", ci.Current())
	}
	ci.Forward()
	if ci.Current() != "2" {
		t.Fatalf("switching to forward failed, %#v != %#v", "2", ci.Current())
	}
	if ci.Forward(); ci.Forward() || ci.Current() != "" {
		t.Fatalf("iterating past the end did not stop")
	}
	if !ci.Backward() || ci.Current() != "3" {
		t.Fatalf("iterating backwards from past the end failed: %#v", ci.Current())
	}
	ci = NewCellIterator("x\U0001f4a9")
	ci.GotoEnd().Backward()
	if ci.CurrentWidth() != 2 {
		t.Fatalf("Width of current cell is %d instead of 2", ci.CurrentWidth())
	}
	if ci.GotoStart().CurrentWidth() != 0 || !ci.Forward() || ci.Current() != "x" {
		t.Fatalf("GotoStart failed")
	}
}

func TestSplitText(t *testing.T) {
	const fm = "\U0001f469\u200d\U0001f527"
	for _, x := range []struct {
		text        string
		offset      int
		left, right string
	}{
		{"", -1, "", ""},
		{"x", -1, "", "x"},
		{"x", 1, "x", ""},
		{"x", 2, "x", ""},
		{"", 0, "", ""},
		{"", 1, "", ""},
		{"a", 0, "", "a"},
		{"a", 1, "a", ""},
		{"💩", 0, "", "💩"},
		{"💩", 1, " ", " "},
		{"💩", 2, "💩", ""},
		{"💩x", 1, " ", " x"},
		{"💩x", 2, "💩", "x"},
		{"💩x", 3, "💩x", ""},
		{fm, 0, "", fm},
		{fm, 1, " ", " "},
		{fm, 2, fm, ""},
		{fm + "x", 1, " ", " x"},
		{fm + "x", 2, fm, "x"},
		{fm + "x", 3, fm + "x", ""},
		{"xxxxxxxxxxxxxxx💩💩", 10, "xxxxxxxxxx", "xxxxx💩💩"},
		{"xxxxxxxxxxxxxxx💩💩", 15, "xxxxxxxxxxxxxxx", "💩💩"},
		{"xxxxxxxxxxxxxxx💩💩", 16, "xxxxxxxxxxxxxxx ", " 💩"},
		{"💩💩", 3, "💩 ", " "},
		{"💩💩xxxxxxxxxx", 2, "💩", "💩xxxxxxxxxx"},
		{"💩💩xxxxxxxxxx", 3, "💩 ", " xxxxxxxxxx"},
		{"💩💩xxxxxxxxxx", 4, "💩💩", "xxxxxxxxxx"},
		{"αβγ", 2, "αβ", "γ"},
	} {
		left, right := SplitText(x.text, x.offset)
		if diff := cmp.Diff([]string{x.left, x.right}, []string{left, right}); diff != "" {
			t.Fatalf("Failed to split %#v at %d:\n%s", x.text, x.offset, diff)
		}
	}
}

func TestSetCellSize(t *testing.T) {
	for _, x := range []struct {
		text     string
		total    int
		expected string
	}{
		{"foo", 0, ""},
		{"f", 0, ""},
		{"", 0, ""},
		{"😽😽", 0, ""},
		{"foo", 2, "fo"},
		{"foo", 3, "foo"},
		{"foo", 4, "foo "},
		{"😽😽", 4, "😽😽"},
		{"😽😽", 3, "😽 "},
		{"😽😽", 2, "😽"},
		{"😽😽", 1, " "},
		{"😽😽", 5, "😽😽 "},
		{"", 3, "   "},
	} {
		if actual := SetCellSize(x.text, x.total); actual != x.expected {
			t.Fatalf("SetCellSize(%#v, %d) = %#v instead of %#v", x.text, x.total, actual, x.expected)
		}
	}
	const thai = "เป็นเกมที่ต้องมีความอดทนมากที่สุดตั้งเเต่เคยเล่นมา"
	for size := range 38 {
		if actual := Stringwidth(SetCellSize(thai, size)); actual != size {
			t.Fatalf("SetCellSize(thai, %d) has width %d", size, actual)
		}
	}
}

func TestChopCells(t *testing.T) {
	chop := func(text string, width int, expected ...string) {
		if diff := cmp.Diff(expected, ChopCells(text, width)); diff != "" {
			t.Fatalf("Failed to chop %#v to %d:\n%s", text, width, diff)
		}
	}
	chop("abcdefghijk", 3, "abc", "def", "ghi", "jk")
	chop("ありがとう", 3, "あ", "り", "が", "と", "う")
	chop("あ1り234が5と6う78", 3, "あ1", "り2", "34", "が5", "と6", "う7", "8")
	chop("ab", 0, "a", "b")
	chop("あい", 1, "あ", "い")
	chop("\u0301ab", 1, "\u0301a", "b")
	chop("", 3)
	for _, line := range ChopCells("xyzあ1り234が5と6う78💩\U0001f469\u200d\U0001f527", 4) {
		if line == "" || Stringwidth(line) > 4 {
			t.Fatalf("Chopped line %#v does not fit", line)
		}
	}
}
