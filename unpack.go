// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import "reflect"

// Unpack calls fn once with the elements of All(r) as positional arguments,
// in order, and returns fn's results.
//
// fn must be a non-variadic func of exactly Len() parameters. Element i binds
// to parameter i by value when the element type is assignable to the
// parameter type. A parameter of type *E (or an interface only *E satisfies)
// takes the element's address, which is allowed only for borrowed views.
// Anything else is a constraint violation.
func Unpack(r any, fn any) []reflect.Value {
	v := All(r)
	f := reflect.ValueOf(fn)
	ft := checkFunc("unpack", f, v.Len())
	return f.Call(bindArgs("unpack", v, func(i int) reflect.Type { return ft.In(i) }))
}

// UnpackAs is Unpack for a fn returning exactly one R.
func UnpackAs[R any](r any, fn any) R {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func || ft.NumOut() != 1 || ft.Out(0) != reflect.TypeFor[R]() {
		violation("unpack", "%v does not return exactly one %s", ft, reflect.TypeFor[R]())
	}
	var out R
	reflect.ValueOf(&out).Elem().Set(Unpack(r, fn)[0])
	return out
}

// checkFunc enforces that f is a non-variadic func of arity n.
func checkFunc(op string, f reflect.Value, n int) reflect.Type {
	if !f.IsValid() || f.Kind() != reflect.Func || f.IsNil() {
		violation(op, "%v is not a function", f)
	}
	ft := f.Type()
	if ft.IsVariadic() {
		violation(op, "%s is variadic", ft)
	}
	if ft.NumIn() != n {
		violation(op, "%s takes %d arguments, sequence has %d elements", ft, ft.NumIn(), n)
	}
	return ft
}

// bindArgs binds every element of v to the type want(i) returns.
// Every slot is checked from static types before any element is read, so a
// failed bind never moves elements out of a Moved view.
func bindArgs(op string, v View, want func(int) reflect.Type) []reflect.Value {
	byAddr := make([]bool, v.Len())
	for i := range byAddr {
		byAddr[i] = checkBind(op, v, i, want(i))
	}
	args := make([]reflect.Value, v.Len())
	for i := range args {
		args[i] = bind(op, v, i, want(i), byAddr[i])
	}
	return args
}

// checkBind reports whether element i of v binds to want by address.
func checkBind(op string, v View, i int, want reflect.Type) bool {
	et := v.TypeAt(i)
	if et.AssignableTo(want) {
		return false
	}
	if reflect.PointerTo(et).AssignableTo(want) {
		if v.Access() != Borrowed {
			violation(op, "element %d (%s) is %s and cannot bind to %s", i, et, v.Access(), want)
		}
		return true
	}
	violation(op, "element %d (%s) cannot bind to %s", i, et, want)
	return false
}

// bind reads element i of v into a slot of type want.
func bind(op string, v View, i int, want reflect.Type, byAddr bool) reflect.Value {
	x := v.At(i)
	if byAddr {
		if !x.CanAddr() {
			violation(op, "element %d (%s) is not addressable", i, x.Type())
		}
		return x.Addr()
	}
	if x.Type() == want {
		return x
	}
	// Interface conversion, made explicit so Call sees the exact type.
	out := reflect.New(want).Elem()
	out.Set(x)
	return out
}
