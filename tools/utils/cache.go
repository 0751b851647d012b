// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"container/list"
	"fmt"
	"sync"
)

var _ = fmt.Print

type lru_entry[K comparable, V any] struct {
	key K
	val V
}

// LRUCache is a map bounded to max_size entries, evicting the least recently
// used entry when full. A max_size <= 0 means unbounded. Safe for concurrent use.
type LRUCache[K comparable, V any] struct {
	data     map[K]*list.Element
	lock     sync.Mutex
	max_size int
	lru      *list.List
}

func NewLRUCache[K comparable, V any](max_size int) *LRUCache[K, V] {
	ans := LRUCache[K, V]{data: map[K]*list.Element{}, max_size: max_size, lru: list.New()}
	return &ans
}

func (self *LRUCache[K, V]) Get(key K) (ans V, found bool) {
	self.lock.Lock()
	defer self.lock.Unlock()
	if e, ok := self.data[key]; ok {
		self.lru.MoveToFront(e)
		return e.Value.(*lru_entry[K, V]).val, true
	}
	return
}

// must be called with the lock held
func (self *LRUCache[K, V]) set(key K, val V) V {
	if e, ok := self.data[key]; ok {
		// somebody else got here first, keep the existing value so that
		// every caller sees the same one
		self.lru.MoveToFront(e)
		return e.Value.(*lru_entry[K, V]).val
	}
	self.data[key] = self.lru.PushFront(&lru_entry[K, V]{key: key, val: val})
	if self.max_size > 0 && self.lru.Len() > self.max_size {
		oldest := self.lru.Back()
		self.lru.Remove(oldest)
		delete(self.data, oldest.Value.(*lru_entry[K, V]).key)
	}
	return val
}

// GetOrCreate returns the cached value for key, calling create outside the
// lock if it is missing. Concurrent creators of the same key may both run,
// but only the first stored value is kept and returned to all of them.
func (self *LRUCache[K, V]) GetOrCreate(key K, create func(key K) (V, error)) (V, error) {
	if ans, found := self.Get(key); found {
		return ans, nil
	}
	ans, err := create(key)
	if err == nil {
		self.lock.Lock()
		ans = self.set(key, ans)
		self.lock.Unlock()
	}
	return ans, err
}

func (self *LRUCache[K, V]) MustGetOrCreate(key K, create func(key K) V) V {
	ans, _ := self.GetOrCreate(key, func(key K) (V, error) { return create(key), nil })
	return ans
}
