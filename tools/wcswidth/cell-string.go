// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"fmt"
	"iter"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/termcells/termcells/tools/unicode_data"
	"github.com/zeebo/xxh3"
)

var _ = fmt.Print

// Pass as start or stop to CellString.Stride to mean the respective end of
// the string, depending on the sign of the step.
const Unbounded = math.MinInt

type GlyphWidth struct {
	Text  string
	Width int
}

// CellString is immutable text that is indexed, sliced and iterated by
// display unit (grapheme cluster) rather than by byte. Its spans and cell
// length are computed on first use and cached, so a CellString must not be
// shared between goroutines without synchronization.
type CellString struct {
	text    string
	table   *unicode_data.CellTable
	singles bool
	ascii   bool

	cell_length int // -1 until known
	spans       []Span
	have_spans  bool
	// the operands of a concatenation whose spans are computed lazily
	left, right *CellString
}

type CellStringOption func(*CellString)

// WithCellLength records an already known cell length
func WithCellLength(n int) CellStringOption {
	return func(self *CellString) { self.cell_length = n }
}

// WithSpans records already known spans, which must cover the text exactly
func WithSpans(spans []Span) CellStringOption {
	return func(self *CellString) { self.spans, self.have_spans = spans, true }
}

func WithTable(table *unicode_data.CellTable) CellStringOption {
	return func(self *CellString) { self.table = table }
}

func WithUnicodeVersion(version string) CellStringOption {
	return func(self *CellString) { self.table = unicode_data.Load(version) }
}

func NewCellString(text string, opts ...CellStringOption) *CellString {
	ans := &CellString{text: text, cell_length: -1, singles: IsAllSingleCell(text)}
	for _, o := range opts {
		o(ans)
	}
	if ans.table == nil {
		ans.table = default_table()
	}
	if ans.singles {
		ans.ascii = utf8.RuneCountInString(text) == len(text)
		if ans.cell_length < 0 {
			ans.cell_length = utf8.RuneCountInString(text)
		}
	}
	return ans
}

func (self *CellString) Text() string                   { return self.text }
func (self *CellString) String() string                 { return self.text }
func (self *CellString) Table() *unicode_data.CellTable { return self.table }
func (self *CellString) IsEmpty() bool                  { return self.text == "" }

// IsAllSingleCell is true when every character is one cell wide and is its own display unit
func (self *CellString) IsAllSingleCell() bool { return self.singles }

func (self *CellString) Spans() []Span {
	if !self.have_spans {
		switch {
		case self.singles:
			self.spans = single_cell_spans(self.text)
		case self.left != nil:
			self.spans = concat_spans(self.left.Spans(), self.right.Spans(), len(self.left.text))
			self.left, self.right = nil, nil
		default:
			var w int
			self.spans, w = SplitGraphemes(self.text, self.table)
			if self.cell_length < 0 {
				self.cell_length = w
			}
		}
		self.have_spans = true
	}
	return self.spans
}

// CellLength is the number of cells needed to display the string.
func (self *CellString) CellLength() int {
	if self.cell_length < 0 {
		switch {
		case self.have_spans:
			self.cell_length = 0
			for _, s := range self.spans {
				self.cell_length += s.Width
			}
		case self.left != nil:
			self.cell_length = self.left.CellLength() + self.right.CellLength()
		default:
			self.cell_length = StringwidthWithTable(self.text, self.table)
		}
	}
	return self.cell_length
}

// Len is the number of display units
func (self *CellString) Len() int {
	if self.ascii {
		return len(self.text)
	}
	return len(self.Spans())
}

func (self *CellString) Glyphs() []string {
	spans := self.Spans()
	ans := make([]string, len(spans))
	for i, s := range spans {
		ans[i] = self.text[s.Start:s.End]
	}
	return ans
}

func (self *CellString) GlyphWidths() []GlyphWidth {
	spans := self.Spans()
	ans := make([]GlyphWidth, len(spans))
	for i, s := range spans {
		ans[i] = GlyphWidth{self.text[s.Start:s.End], s.Width}
	}
	return ans
}

// Equal compares only the text, cached measurements are ignored
func (self *CellString) Equal(other *CellString) bool {
	return other != nil && self.text == other.text
}

func (self *CellString) Hash() uint64 {
	return xxh3.HashString(self.text)
}

func concat_spans(a, b []Span, offset int) []Span {
	ans := make([]Span, len(a), len(a)+len(b))
	copy(ans, a)
	for _, s := range b {
		ans = append(ans, Span{s.Start + offset, s.End + offset, s.Width})
	}
	return ans
}

// Add returns the concatenation of self and other. The display units of
// the result are those of self followed by those of other.
func (self *CellString) Add(other *CellString) *CellString {
	text := self.text + other.text
	if self.singles && other.singles {
		return NewCellString(text, WithTable(self.table))
	}
	ans := &CellString{text: text, table: self.table, cell_length: -1}
	if self.have_spans && other.have_spans {
		ans.spans, ans.have_spans = concat_spans(self.spans, other.spans, len(self.text)), true
	} else {
		ans.left, ans.right = self, other
	}
	if self.cell_length > -1 && other.cell_length > -1 {
		ans.cell_length = self.cell_length + other.cell_length
	}
	return ans
}

// All iterates over the display units from left to right
func (self *CellString) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if self.singles {
			for pos, ch := range self.text {
				if !yield(self.text[pos : pos+utf8.RuneLen(ch)]) {
					return
				}
			}
			return
		}
		for _, s := range self.Spans() {
			if !yield(self.text[s.Start:s.End]) {
				return
			}
		}
	}
}

// Backward iterates over the display units from right to left
func (self *CellString) Backward() iter.Seq[string] {
	return func(yield func(string) bool) {
		spans := self.Spans()
		for i := len(spans) - 1; i >= 0; i-- {
			if !yield(self.text[spans[i].Start:spans[i].End]) {
				return
			}
		}
	}
}

// At returns the display unit at index i, negative indices count from the
// end. Out of range indices give the empty string.
func (self *CellString) At(i int) string {
	n := self.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return ""
	}
	if self.ascii {
		return self.text[i : i+1]
	}
	s := self.Spans()[i]
	return self.text[s.Start:s.End]
}

// Slice returns the text of the display units [start, stop). Negative
// indices count from the end and out of range indices are clamped.
func (self *CellString) Slice(start, stop int) string {
	return self.Stride(start, stop, 1)
}

// slice_indices normalizes start, stop and step the way sequence slicing
// with an optional start and stop does, returning the number of selected units.
func slice_indices(start, stop, step, length int) (int, int, int) {
	adjust := func(x, dflt int) int {
		switch {
		case x == Unbounded:
			return dflt
		case x < 0:
			if x += length; x < 0 {
				if step < 0 {
					return -1
				}
				return 0
			}
		case x >= length:
			if step < 0 {
				return length - 1
			}
			return length
		}
		return x
	}
	if step > 0 {
		start, stop = adjust(start, 0), adjust(stop, length)
		if start < stop {
			return start, stop, (stop-start-1)/step + 1
		}
	} else {
		start, stop = adjust(start, length-1), adjust(stop, -1)
		if stop < start {
			return start, stop, (start-stop-1)/(-step) + 1
		}
	}
	return start, stop, 0
}

// Stride returns the text of every step-th display unit from start towards
// stop, concatenated. A step of one returns the contiguous text between the
// selected units. A zero step selects nothing.
func (self *CellString) Stride(start, stop, step int) string {
	if step == 0 {
		return ""
	}
	start, _, count := slice_indices(start, stop, step, self.Len())
	if count == 0 {
		return ""
	}
	if self.ascii && step == 1 {
		return self.text[start : start+count]
	}
	spans := self.Spans()
	if step == 1 {
		return self.text[spans[start].Start:spans[start+count-1].End]
	}
	var b strings.Builder
	for i := start; count > 0; i, count = i+step, count-1 {
		b.WriteString(self.text[spans[i].Start:spans[i].End])
	}
	return b.String()
}
