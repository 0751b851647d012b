// License: GPLv3 Copyright: 2023, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"fmt"
	"sync"
	"sync/atomic"
)

var _ = fmt.Print

// Once lazily computes a value with Run on first Get and returns the same
// value forever after, even when Get is first called from many goroutines.
type Once[T any] struct {
	done       atomic.Bool
	mutex      sync.Mutex
	cached_val T

	Run func() T
}

func NewOnce[T any](run func() T) *Once[T] {
	return &Once[T]{Run: run}
}

func (self *Once[T]) Get() T {
	if !self.done.Load() {
		self.do_slow()
	}
	return self.cached_val
}

func (self *Once[T]) do_slow() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if !self.done.Load() {
		defer self.done.Store(true)
		self.cached_val = self.Run()
	}
}
