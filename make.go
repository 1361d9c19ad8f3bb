// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import "reflect"

// MakeFromRange constructs a T from the elements of All(r).
//
// T must be a struct with exactly Len() exported fields or an array of
// length Len(). Element i initializes field (or element) i under the
// binding rules of [Unpack].
func MakeFromRange[T any](r any) T {
	v := All(r)
	t := reflect.TypeFor[T]()
	var out T
	dst := reflect.ValueOf(&out).Elem()
	switch t.Kind() {
	case reflect.Struct:
		if t.NumField() != v.Len() {
			violation("make", "%s has %d fields, sequence has %d elements", t, t.NumField(), v.Len())
		}
		checkSequence("make", t)
		for i, arg := range bindArgs("make", v, func(i int) reflect.Type { return t.Field(i).Type }) {
			dst.Field(i).Set(arg)
		}
	case reflect.Array:
		if t.Len() != v.Len() {
			violation("make", "%s has %d elements, sequence has %d", t, t.Len(), v.Len())
		}
		for i, arg := range bindArgs("make", v, func(int) reflect.Type { return t.Elem() }) {
			dst.Index(i).Set(arg)
		}
	default:
		violation("make", "%s cannot be constructed from a sequence; use MakeWith", t)
	}
	return out
}

// MakeWith constructs a T by unpacking All(r) into ctor, which must return
// exactly one T.
func MakeWith[T any](r any, ctor any) T {
	return UnpackAs[T](r, ctor)
}
