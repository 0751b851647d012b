// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

var _ = fmt.Print

type Set[T comparable] struct {
	items map[T]struct{}
}

func (self *Set[T]) Add(val T) {
	self.items[val] = struct{}{}
}

func (self *Set[T]) AddItems(val ...T) {
	for _, x := range val {
		self.items[x] = struct{}{}
	}
}

func (self *Set[T]) Has(val T) bool {
	if self == nil {
		return false
	}
	_, ok := self.items[val]
	return ok
}

func (self *Set[T]) Len() int {
	if self == nil {
		return 0
	}
	return len(self.items)
}

func NewSet[T comparable](capacity ...int) (ans *Set[T]) {
	if len(capacity) == 0 {
		ans = &Set[T]{items: make(map[T]struct{}, 8)}
	} else {
		ans = &Set[T]{items: make(map[T]struct{}, capacity[0])}
	}
	return
}

func NewSetWithItems[T comparable](items ...T) (ans *Set[T]) {
	ans = NewSet[T](len(items))
	ans.AddItems(items...)
	return ans
}

// SortedItems returns the members of an ordered set in ascending order.
func SortedItems[T cmp.Ordered](s *Set[T]) []T {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.items))
}
