// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import "reflect"

// Constant is implemented by types that carry a fixed value.
// Value must not depend on the receiver: the zero value of the type
// reports the constant, so it can be read from the type alone.
//
//	type Three struct{}
//	func (Three) Value() int { return 3 }
type Constant[V any] interface {
	Value() V
}

// Bool is a boolean witness: a type whose identity is its truth value.
type Bool interface {
	Constant[bool]
	boolean()
}

// True is the Bool witness for true.
type True struct{}

func (True) Value() bool { return true }
func (True) boolean()    {}

// False is the Bool witness for false.
type False struct{}

func (False) Value() bool { return false }
func (False) boolean()    {}

// Witness returns the Bool witness for b.
func Witness(b bool) Bool {
	if b {
		return True{}
	}
	return False{}
}

// ConstantOf reads the constant carried by t.
// Returns None if t is not a non-pointer type implementing Constant[V].
func ConstantOf[V any](t reflect.Type) Option[V] {
	if t == nil || !t.Implements(reflect.TypeFor[Constant[V]]()) {
		return None[V]()
	}
	// Zero interfaces and pointers are nil and cannot report a value.
	if k := t.Kind(); k == reflect.Interface || k == reflect.Pointer {
		return None[V]()
	}
	return Just(reflect.Zero(t).Interface().(Constant[V]).Value())
}
