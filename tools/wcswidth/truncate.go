// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"fmt"
	"strings"
)

var _ = fmt.Print

// Truncate returns the longest prefix made of whole display units that fits
// in length cells, along with its width.
func (self *CellString) Truncate(length int) (truncated string, width_of_truncated int) {
	if length < 1 {
		return "", 0
	}
	if self.cell_length > -1 && self.cell_length <= length {
		return self.text, self.cell_length
	}
	if self.ascii {
		return self.text[:length], length
	}
	for _, s := range self.Spans() {
		if width_of_truncated+s.Width > length {
			return self.text[:s.Start], width_of_truncated
		}
		width_of_truncated += s.Width
	}
	return self.text, width_of_truncated
}

// SplitAt splits the text at the specified cell offset. When the offset falls
// inside a unit that is more than one cell wide, that unit is replaced by a
// space on each side.
func (self *CellString) SplitAt(cell_position int) (left, right string) {
	if cell_position <= 0 {
		return "", self.text
	}
	if self.ascii {
		if cell_position >= len(self.text) {
			return self.text, ""
		}
		return self.text[:cell_position], self.text[cell_position:]
	}
	width := 0
	for _, s := range self.Spans() {
		if width == cell_position {
			return self.text[:s.Start], self.text[s.Start:]
		}
		if width+s.Width > cell_position {
			return self.text[:s.Start] + " ", " " + self.text[s.End:]
		}
		width += s.Width
	}
	return self.text, ""
}

// SetCellSize crops or pads the text with spaces so that it is exactly total cells wide.
func (self *CellString) SetCellSize(total int) string {
	if total <= 0 {
		return ""
	}
	switch cl := self.CellLength(); {
	case cl == total:
		return self.text
	case cl < total:
		return self.text + strings.Repeat(" ", total-cl)
	}
	left, _ := self.SplitAt(total)
	return left
}

// Chop folds the text into lines, each of which is at most width cells wide,
// unless it consists of a single unit wider than that. Widths less than one
// are treated as one.
func (self *CellString) Chop(width int) []string {
	width = max(1, width)
	if self.text == "" {
		return nil
	}
	if self.ascii {
		ans := make([]string, 0, len(self.text)/width+1)
		for i := 0; i < len(self.text); i += width {
			ans = append(ans, self.text[i:min(i+width, len(self.text))])
		}
		return ans
	}
	var lines []string
	line_size, line_start := 0, 0
	for _, s := range self.Spans() {
		if line_size+s.Width > width && s.Start > line_start {
			lines = append(lines, self.text[line_start:s.Start])
			line_start, line_size = s.Start, 0
		}
		line_size += s.Width
	}
	if line_start < len(self.text) {
		lines = append(lines, self.text[line_start:])
	}
	return lines
}

func TruncateToVisualLengthWithWidth(text string, length int) (truncated string, width_of_truncated int) {
	return NewCellString(text).Truncate(length)
}

func TruncateToVisualLength(text string, length int) string {
	ans, _ := TruncateToVisualLengthWithWidth(text, length)
	return ans
}

func SplitText(text string, cell_position int) (left, right string) {
	return NewCellString(text).SplitAt(cell_position)
}

func SetCellSize(text string, total int) string {
	return NewCellString(text).SetCellSize(total)
}

func ChopCells(text string, width int) []string {
	return NewCellString(text).Chop(width)
}
