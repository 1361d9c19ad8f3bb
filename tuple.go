// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

// Tuple types are fixed-arity heterogeneous sequences whose element types
// are checked by the compiler. Field Vi is element i.

// Tuple0 is the empty sequence.
type Tuple0 struct{}

// Tuple1 is a sequence of one element.
type Tuple1[A any] struct {
	V0 A
}

// Tuple2 is a sequence of two elements.
type Tuple2[A, B any] struct {
	V0 A
	V1 B
}

// Tuple3 is a sequence of three elements.
type Tuple3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// Tuple4 is a sequence of four elements.
type Tuple4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Pack1 creates a Tuple1.
func Pack1[A any](a A) Tuple1[A] {
	return Tuple1[A]{a}
}

// Pack2 creates a Tuple2.
func Pack2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{a, b}
}

// Pack3 creates a Tuple3.
func Pack3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{a, b, c}
}

// Pack4 creates a Tuple4.
func Pack4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{a, b, c, d}
}

// Unpack0 calls f with no arguments.
func Unpack0[R any](_ Tuple0, f func() R) R {
	return f()
}

// Unpack1 calls f with the element of t.
func Unpack1[A, R any](t Tuple1[A], f func(A) R) R {
	return f(t.V0)
}

// Unpack2 calls f with the elements of t in order.
func Unpack2[A, B, R any](t Tuple2[A, B], f func(A, B) R) R {
	return f(t.V0, t.V1)
}

// Unpack3 calls f with the elements of t in order.
func Unpack3[A, B, C, R any](t Tuple3[A, B, C], f func(A, B, C) R) R {
	return f(t.V0, t.V1, t.V2)
}

// Unpack4 calls f with the elements of t in order.
func Unpack4[A, B, C, D, R any](t Tuple4[A, B, C, D], f func(A, B, C, D) R) R {
	return f(t.V0, t.V1, t.V2, t.V3)
}
