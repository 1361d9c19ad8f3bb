// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import "reflect"

// Erased represents a type-erased element. Sequences carry elements of
// distinct static types; where they pass through one homogeneous slot
// (Values, Unpack results) they are Erased and recovered by type assertion.
type Erased = any

// Access is the ownership qualification of the elements a View yields.
type Access uint8

const (
	// Owned elements are read by value from storage the view owns.
	Owned Access = iota
	// Borrowed elements are addressable and alias storage owned elsewhere.
	Borrowed
	// Moved elements are fresh values taken out of the underlying storage.
	Moved
)

func (a Access) String() string {
	switch a {
	case Owned:
		return "owned"
	case Borrowed:
		return "borrowed"
	case Moved:
		return "moved"
	default:
		return "access(?)"
	}
}

// View is a fixed-size sequence whose elements may each have a distinct
// static type.
//
// TypeAt reports the static type of position i without touching the
// element. At returns the element with the view's Access qualification.
// Both are defined only for 0 <= i < Len(); any other i is a constraint
// violation.
type View interface {
	Len() int
	TypeAt(i int) reflect.Type
	At(i int) reflect.Value
	Access() Access
}

// fixed is the reflective core of RefView and OwnView: a struct (fields in
// declaration order) or an array.
type fixed struct {
	seq      reflect.Value
	n        int
	isStruct bool
}

func newFixed(seq reflect.Value) fixed {
	if seq.Kind() == reflect.Struct {
		return fixed{seq: seq, n: seq.NumField(), isStruct: true}
	}
	return fixed{seq: seq, n: seq.Len()}
}

func (f *fixed) Len() int { return f.n }

func (f *fixed) TypeAt(i int) reflect.Type {
	checkIndex("at", i, f.n)
	if f.isStruct {
		return f.seq.Type().Field(i).Type
	}
	return f.seq.Type().Elem()
}

func (f *fixed) At(i int) reflect.Value {
	checkIndex("at", i, f.n)
	if f.isStruct {
		return f.seq.Field(i)
	}
	return f.seq.Index(i)
}

// checkSequence enforces that t is a fixed-size sequence type.
func checkSequence(op string, t reflect.Type) {
	switch t.Kind() {
	case reflect.Array:
	case reflect.Struct:
		for i := range t.NumField() {
			if f := t.Field(i); !f.IsExported() {
				violation(op, "%s has unexported field %s", t, f.Name)
			}
		}
	default:
		violation(op, "%s is not a fixed-size sequence", t)
	}
}

// RefView borrows a sequence owned elsewhere. Elements are addressable and
// writes through them are visible to the owner.
type RefView struct {
	fixed
}

// Access reports Borrowed.
func (*RefView) Access() Access { return Borrowed }

// OwnView holds its own copy of a sequence. Elements are read by value.
type OwnView struct {
	fixed
}

// Access reports Owned.
func (*OwnView) Access() Access { return Owned }

// Ref borrows the struct or array s points to.
func Ref[S any](s *S) *RefView {
	if s == nil {
		violation("ref", "nil %T", s)
	}
	seq := reflect.ValueOf(s).Elem()
	checkSequence("ref", seq.Type())
	return &RefView{newFixed(seq)}
}

// Own copies the struct or array r (or the one r points to) into an
// owning view.
func Own(r any) *OwnView {
	rv := reflect.ValueOf(r)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			violation("own", "nil %s", rv.Type())
		}
		// Round-trip through any to drop addressability.
		rv = reflect.ValueOf(rv.Elem().Interface())
	}
	if !rv.IsValid() {
		violation("own", "nil is not a sequence")
	}
	checkSequence("own", rv.Type())
	return &OwnView{newFixed(rv)}
}

// All normalizes r into a View, choosing exactly one strategy:
//
//   - r is already a View: returned unchanged.
//   - r is a non-nil pointer to a struct or array: borrowed with a [RefView].
//   - r is a struct or array value: owned by an [OwnView] over the copy made
//     when r was passed in.
//
// Anything else is a constraint violation.
func All(r any) View {
	if v, ok := r.(View); ok {
		return v
	}
	if r == nil {
		violation("all", "nil is not a sequence")
	}
	rv := reflect.ValueOf(r)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			violation("all", "nil %s", rv.Type())
		}
		seq := rv.Elem()
		checkSequence("all", seq.Type())
		return &RefView{newFixed(seq)}
	}
	checkSequence("all", rv.Type())
	return &OwnView{newFixed(rv)}
}

// Size returns the number of elements in r.
func Size(r any) int {
	return All(r).Len()
}

// TryAt returns element i of v as a T.
// Returns None if i is out of range or the element is not assignable to T.
func TryAt[T any](v View, i int) Option[T] {
	if i < 0 || i >= v.Len() {
		return None[T]()
	}
	if !v.TypeAt(i).AssignableTo(reflect.TypeFor[T]()) {
		return None[T]()
	}
	var out T
	reflect.ValueOf(&out).Elem().Set(v.At(i))
	return Just(out)
}

// TryRef returns the address of element i of v.
// Returns Just only for borrowed, addressable elements of type exactly T.
func TryRef[T any](v View, i int) Option[*T] {
	if i < 0 || i >= v.Len() || v.Access() != Borrowed {
		return None[*T]()
	}
	if v.TypeAt(i) != reflect.TypeFor[T]() {
		return None[*T]()
	}
	x := v.At(i)
	if !x.CanAddr() {
		return None[*T]()
	}
	return Just(x.Addr().Interface().(*T))
}

// Types returns the static element types of v in order.
func Types(v View) []reflect.Type {
	out := make([]reflect.Type, v.Len())
	for i := range out {
		out[i] = v.TypeAt(i)
	}
	return out
}

// Values returns the elements of v in order, boxed as Erased.
func Values(v View) []Erased {
	out := make([]Erased, v.Len())
	for i := range out {
		out[i] = v.At(i).Interface()
	}
	return out
}
