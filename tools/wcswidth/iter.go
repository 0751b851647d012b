// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package wcswidth

import (
	"fmt"
)

var _ = fmt.Print

// CellIterator moves over the display units of some text in either
// direction. Before the first call to Forward it is positioned before the
// first unit, after GotoEnd it is positioned after the last one.
type CellIterator struct {
	cs      *CellString
	pos     int
	current string
}

func NewCellIterator(text string) *CellIterator {
	return NewCellIteratorForCellString(NewCellString(text))
}

func NewCellIteratorForCellString(cs *CellString) *CellIterator {
	return &CellIterator{cs: cs, pos: -1}
}

func (self *CellIterator) GotoStart() *CellIterator {
	self.pos = -1
	self.current = ""
	return self
}

func (self *CellIterator) GotoEnd() *CellIterator {
	self.pos = self.cs.Len()
	self.current = ""
	return self
}

func (self *CellIterator) Current() string { return self.current }

// CurrentWidth is the number of cells occupied by the current unit
func (self *CellIterator) CurrentWidth() int {
	if self.current == "" {
		return 0
	}
	return self.cs.Spans()[self.pos].Width
}

func (self *CellIterator) Forward() (has_more bool) {
	n := self.cs.Len()
	if self.pos < n {
		self.pos++
	}
	if self.pos >= n {
		self.current = ""
		return false
	}
	self.current = self.cs.At(self.pos)
	return true
}

func (self *CellIterator) Backward() (has_more bool) {
	if self.pos > -1 {
		self.pos--
	}
	if self.pos < 0 {
		self.current = ""
		return false
	}
	self.current = self.cs.At(self.pos)
	return true
}
