// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import (
	"reflect"
	"sync"
)

// Scratch state for Sort. Only the returned Permutation escapes a sort;
// boxes, tags, and the dispatch table are reused across calls.

var sorterPool = sync.Pool{New: func() any {
	return &sorter{tags: make(map[reflect.Type]int)}
}}

// acquireSorter acquires a pooled sorter bound to less.
func acquireSorter(less Less) *sorter {
	s := sorterPool.Get().(*sorter)
	s.less = less
	return s
}

// releaseSorter zeroes s and returns it to the pool.
func releaseSorter(s *sorter) {
	s.less = nil
	s.boxes = s.boxes[:0]
	clear(s.types)
	s.types = s.types[:0]
	s.table = s.table[:0]
	clear(s.tags)
	sorterPool.Put(s)
}
