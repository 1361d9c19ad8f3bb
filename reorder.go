// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import (
	"reflect"
	"slices"
)

// Permutation is an ordered list of positions in a sequence.
// Reordering with p presents element p[i] of the base at position i.
type Permutation []int

// Identity returns the permutation [0, 1, ..., n-1].
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// IsBijection reports whether p contains every index in [0, len(p)) exactly
// once.
func (p Permutation) IsBijection() bool {
	seen := make([]bool, len(p))
	for _, x := range p {
		if x < 0 || x >= len(p) || seen[x] {
			return false
		}
		seen[x] = true
	}
	return true
}

// ReorderView presents a base view through a fixed permutation.
// It never copies or mutates the base; At is pure indirection.
type ReorderView struct {
	base View
	perm Permutation
}

// Reorder presents All(r) through perm. Every entry of perm must be in
// [0, base length); perm need not be a bijection.
// The view keeps its own copy of perm.
func Reorder(r any, perm Permutation) *ReorderView {
	base := All(r)
	n := base.Len()
	for i, x := range perm {
		if x < 0 || x >= n {
			violation("reorder", "permutation[%d] = %d out of range [0, %d)", i, x, n)
		}
	}
	return &ReorderView{base: base, perm: slices.Clone(perm)}
}

// Base returns the underlying view.
func (r *ReorderView) Base() View { return r.base }

// Permutation returns a copy of the permutation.
func (r *ReorderView) Permutation() Permutation { return slices.Clone(r.perm) }

// Len returns the permutation length.
func (r *ReorderView) Len() int { return len(r.perm) }

// TypeAt returns the type of base element perm[i].
func (r *ReorderView) TypeAt(i int) reflect.Type {
	checkIndex("reorder", i, len(r.perm))
	return r.base.TypeAt(r.perm[i])
}

// At returns base element perm[i].
func (r *ReorderView) At(i int) reflect.Value {
	checkIndex("reorder", i, len(r.perm))
	return r.base.At(r.perm[i])
}

// Access reports the base qualification.
func (r *ReorderView) Access() Access { return r.base.Access() }
