// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import (
	"reflect"
	"slices"
)

// Less reports whether elements of type lhs order before elements of type
// rhs. It is evaluated from static types only, never from element values,
// and must be a pure function of its arguments.
type Less func(lhs, rhs reflect.Type) bool

// box is one alternative of the closed sum over index-tagged type boxes:
// the position it came from and the tag of that position's static type.
// Positions sharing a static type share a tag.
type box struct {
	index int
	tag   int
}

// sorter sorts boxes with a tag-pair dispatch table.
// table[x*k+y] caches less(types[x], types[y]): 0 unknown, 1 true, 2 false.
type sorter struct {
	less  Less
	boxes []box
	tags  map[reflect.Type]int
	types []reflect.Type
	table []int8
}

func (s *sorter) tag(t reflect.Type) int {
	if x, ok := s.tags[t]; ok {
		return x
	}
	x := len(s.types)
	s.tags[t] = x
	s.types = append(s.types, t)
	return x
}

func (s *sorter) before(x, y int) bool {
	cell := &s.table[x*len(s.types)+y]
	if *cell == 0 {
		if s.less(s.types[x], s.types[y]) {
			*cell = 1
		} else {
			*cell = 2
		}
	}
	return *cell == 1
}

func (s *sorter) compare(a, b box) int {
	switch {
	case s.before(a.tag, b.tag):
		return -1
	case s.before(b.tag, a.tag):
		return 1
	default:
		return 0
	}
}

// Sort orders All(r) under less and returns the result as a reorder view of
// the original sequence, which is neither copied nor mutated.
//
// The sort is stable: positions whose types compare equivalent keep their
// original relative order, which also fixes the output for predicates that
// are not strict weak orders. less is called at most once per ordered pair
// of static types in the sequence, including a type paired with itself.
func Sort(r any, less Less) *ReorderView {
	base := All(r)
	return &ReorderView{base: base, perm: permutation(base, less)}
}

// SortPermutation returns the permutation Sort would apply to r.
func SortPermutation(r any, less Less) Permutation {
	return permutation(All(r), less)
}

// IsSorted reports whether no later element of r orders before an earlier
// one under less.
func IsSorted(r any, less Less) bool {
	if less == nil {
		violation("sort", "nil predicate")
	}
	ts := Types(All(r))
	for j := range ts {
		for i := range j {
			if less(ts[j], ts[i]) {
				return false
			}
		}
	}
	return true
}

func permutation(v View, less Less) Permutation {
	if less == nil {
		violation("sort", "nil predicate")
	}
	n := v.Len()
	perm := make(Permutation, n)
	if n == 0 {
		return perm
	}

	s := acquireSorter(less)
	defer releaseSorter(s)

	for i := range n {
		s.boxes = append(s.boxes, box{index: i, tag: s.tag(v.TypeAt(i))})
	}
	k := len(s.types)
	s.table = slices.Grow(s.table[:0], k*k)[:k*k]
	clear(s.table)

	slices.SortStableFunc(s.boxes, s.compare)

	for i, b := range s.boxes {
		perm[i] = b.index
	}
	return perm
}
