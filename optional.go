// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import (
	"fmt"
	"reflect"
)

// Unit is the "no payload" witness. Just(Unit{}) carries only the fact of
// presence.
type Unit = struct{}

// Option represents a value that is either Just (present) or None (absent).
// The zero Option is None.
//
// None never stores a value and never invokes a callback passed to
// Transform, AndThen, or their variants.
type Option[T any] struct {
	ok bool
	v  T
}

// Just creates a present Option holding v.
func Just[T any](v T) Option[T] {
	return Option[T]{ok: true, v: v}
}

// None creates an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Default creates a present Option holding the zero value of T.
func Default[T any]() Option[T] {
	var zero T
	return Just(zero)
}

// Present returns Just(Unit{}).
func Present() Option[Unit] {
	return Option[Unit]{ok: true}
}

// HasValue returns true if this is a Just value.
func (o Option[T]) HasValue() bool {
	return o.ok
}

// IsNone returns true if this is a None value.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the held value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

// Ref returns a pointer to the held value, or nil for None.
// Writes through the pointer are visible to later reads of *o.
func (o *Option[T]) Ref() *T {
	if !o.ok {
		return nil
	}
	return &o.v
}

// ValueOr returns the held value, ignoring alt, or alt for None.
func (o Option[T]) ValueOr(alt T) T {
	if o.ok {
		return o.v
	}
	return alt
}

// OrElse returns o itself if it is Just, without calling f.
// For None it returns f().
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return f()
}

// String formats the Option as Just(v) or None.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Just(%v)", o.v)
	}
	return "None"
}

// Transform applies f to the held value and wraps the result in Just.
// For None, f is not called and None is returned.
func Transform[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.ok {
		return Just(f(o.v))
	}
	return None[B]()
}

// TransformRef is Transform with borrowed access: f receives a pointer to the
// value held by *o and may modify it in place.
func TransformRef[A, B any](o *Option[A], f func(*A) B) Option[B] {
	if o.ok {
		return Just(f(&o.v))
	}
	return None[B]()
}

// TransformUnit calls f for its effect on the held value and returns
// Just(Unit{}). For None, f is not called.
func TransformUnit[A any](o Option[A], f func(A)) Option[Unit] {
	if o.ok {
		f(o.v)
		return Present()
	}
	return None[Unit]()
}

// AndThen sequences two Option computations (monadic bind).
// The result of f is returned directly; for None, f is not called.
func AndThen[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.ok {
		return f(o.v)
	}
	return None[B]()
}

// Flatten removes one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.ok {
		return o.v
	}
	return None[T]()
}

// MatchOption pattern matches on the Option, calling onNone or onJust.
func MatchOption[A, T any](o Option[A], onNone func() T, onJust func(A) T) T {
	if o.ok {
		return onJust(o.v)
	}
	return onNone()
}

// Convert converts a Just[A] into a Just[B] when A is convertible to B.
// None converts to None. A non-convertible pair is a constraint violation,
// raised even for None since it depends only on the types.
func Convert[B, A any](o Option[A]) Option[B] {
	from, to := reflect.TypeFor[A](), reflect.TypeFor[B]()
	if !from.ConvertibleTo(to) {
		violation("convert", "%s is not convertible to %s", from, to)
	}
	if !o.ok {
		return None[B]()
	}
	src := reflect.ValueOf(&o.v).Elem()
	if from.Kind() == reflect.Slice {
		// Slice to array (or array pointer) conversions also need the length.
		n := -1
		switch {
		case to.Kind() == reflect.Array:
			n = to.Len()
		case to.Kind() == reflect.Pointer && to.Elem().Kind() == reflect.Array:
			n = to.Elem().Len()
		}
		if src.Len() < n {
			violation("convert", "%s of length %d is too short for %s", from, src.Len(), to)
		}
	}
	var out B
	reflect.ValueOf(&out).Elem().Set(src.Convert(to))
	return Just(out)
}
