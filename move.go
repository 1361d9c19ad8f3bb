// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import "reflect"

// Mover is implemented (usually through a pointer receiver) by element types
// that define their own moved-from state.
type Mover interface {
	// Moved is called on the source element after its value was taken.
	Moved()
}

var moverType = reflect.TypeFor[Mover]()

// MoveView presents a view whose elements are moved out on access.
//
// At returns a fresh copy of the base element. If the base is borrowed, the
// source element is then left in its moved-from state: Moved is called when
// its pointer implements [Mover], otherwise it is reset to its zero value.
// Elements of an owned base are copied and left as is.
type MoveView struct {
	base View
}

// Move wraps All(r) so that every access is a move.
func Move(r any) *MoveView {
	return &MoveView{base: All(r)}
}

// Base returns the wrapped view.
func (m *MoveView) Base() View { return m.base }

// Len returns the base length.
func (m *MoveView) Len() int { return m.base.Len() }

// TypeAt returns the base element type. It does not move the element.
func (m *MoveView) TypeAt(i int) reflect.Type { return m.base.TypeAt(i) }

// Access reports Moved.
func (*MoveView) Access() Access { return Moved }

// At moves element i out of the base.
func (m *MoveView) At(i int) reflect.Value {
	out, ok := Transform(tryAt(m.base, i), moveOut).Get()
	if !ok {
		violation("move", "index %d out of range [0, %d)", i, m.base.Len())
	}
	return out
}

// tryAt returns element i of v, or None when i is out of range.
func tryAt(v View, i int) Option[reflect.Value] {
	if i < 0 || i >= v.Len() {
		return None[reflect.Value]()
	}
	return Just(v.At(i))
}

func moveOut(src reflect.Value) reflect.Value {
	out := reflect.New(src.Type()).Elem()
	out.Set(src)
	if !src.CanSet() {
		return out
	}
	if p := src.Addr(); p.Type().Implements(moverType) {
		p.Interface().(Mover).Moved()
	} else {
		src.SetZero()
	}
	return out
}
