// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import (
	"cmp"
	"reflect"
)

// ByKey orders types by an ordered key derived from each type.
func ByKey[K cmp.Ordered](key func(reflect.Type) K) Less {
	return func(lhs, rhs reflect.Type) bool {
		return cmp.Less(key(lhs), key(rhs))
	}
}

// ByConstant orders types by the constant each carries (see [Constant]).
// Comparing a type that is not a Constant[V] is a constraint violation.
func ByConstant[V cmp.Ordered]() Less {
	return ByKey(func(t reflect.Type) V {
		v, ok := ConstantOf[V](t).Get()
		if !ok {
			violation("sort", "%s is not a Constant[%s]", t, reflect.TypeFor[V]())
		}
		return v
	})
}

var boolType = reflect.TypeFor[Bool]()

// ByWitness adapts a relation that answers with a [Bool] witness type
// ([True] or [False]) rather than a bool. A result that is not a Bool
// witness is a constraint violation.
func ByWitness(rel func(lhs, rhs reflect.Type) reflect.Type) Less {
	return func(lhs, rhs reflect.Type) bool {
		w := rel(lhs, rhs)
		if w == nil || !w.Implements(boolType) {
			violation("sort", "%v(%s, %s) is not a Bool witness", w, lhs, rhs)
		}
		v, _ := ConstantOf[bool](w).Get()
		return v
	}
}

// BySize orders types by their size in bytes.
func BySize() Less {
	return ByKey(func(t reflect.Type) uintptr { return t.Size() })
}

// ByAlign orders types by their alignment.
func ByAlign() Less {
	return ByKey(func(t reflect.Type) int { return t.Align() })
}

// ByName orders types by their string form.
func ByName() Less {
	return ByKey(reflect.Type.String)
}

// Reverse inverts less.
func Reverse(less Less) Less {
	return func(lhs, rhs reflect.Type) bool { return less(rhs, lhs) }
}

// ThenBy orders by first, breaking ties with second.
func ThenBy(first, second Less) Less {
	return func(lhs, rhs reflect.Type) bool {
		switch {
		case first(lhs, rhs):
			return true
		case first(rhs, lhs):
			return false
		default:
			return second(lhs, rhs)
		}
	}
}
