// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hera provides views and algorithms over fixed-arity, heterogeneously
// typed sequences in Go.
//
// A sequence is a struct (fields in declaration order) or an array, or a
// pointer to one. Each position has its own static type. hera never copies
// or mutates a sequence to reorder it: [Sort] computes a permutation from
// static type information alone and returns a [ReorderView] that indirects
// through it.
//
// # Design Philosophy
//
// hera provides:
//   - Compile-time checking wherever Go generics can express it ([Option],
//     [Tuple2] and [Unpack2], [TryAt])
//   - Per-position static types through [reflect.Type], never element values
//   - One failure kind: a violated constraint panics with [*ConstraintError]
//     at the point of use; no operation returns an error
//
// # Presence
//
// [Option] is Just (present) or None (absent). [Unit] is the "no payload"
// witness.
//
//   - [Just], [None], [Default], [Present]: Constructors
//   - [Option.HasValue], [Option.IsNone], [Option.Get], [Option.Ref]: Accessors
//   - [Option.ValueOr], [Option.OrElse]: Alternatives
//   - [Transform], [TransformRef], [TransformUnit]: Functor map over Just
//   - [AndThen], [Flatten]: Monadic bind
//   - [MatchOption]: Pattern matching
//   - [Convert]: Conversion between differently typed Options
//
// None never calls the function passed to Transform or AndThen.
//
// # Constants
//
// A [Constant] type reports a fixed Value from its zero value, so predicates
// can order types by what they carry. [Bool] witnesses are [True] and [False].
//
// # Views
//
// [View] exposes Len, TypeAt, At, and an [Access] qualification
// ([Owned], [Borrowed], [Moved]).
//
//   - [All]: Normalize any sequence into a View (decay, borrow, or own)
//   - [Ref]: Borrow through a typed pointer
//   - [Own]: Copy into an owning view
//   - [Move]: Move elements out on access, leaving the source moved-from
//   - [Reorder]: Present a view through a [Permutation]
//   - [TryAt], [TryRef], [Types], [Values], [Size]: Access helpers
//
// # Unpack
//
//   - [Unpack], [UnpackAs]: Call a function with the elements as arguments
//   - [Unpack0] .. [Unpack4]: Statically typed spread over tuples
//   - [MakeFromRange], [MakeWith]: Construct a value from the elements
//
// # Sort
//
// [Sort] boxes every position with the tag of its static type, stably sorts
// the homogeneous boxes with a tag-pair dispatch table over a [Less]
// predicate, and reads the permutation back off the sorted boxes.
//
//   - [Sort], [SortPermutation], [IsSorted]
//   - [ByKey], [ByConstant], [BySize], [ByAlign], [ByName]: Predicates
//   - [ByWitness]: Predicates answering with a [Bool] witness type
//   - [Reverse], [ThenBy]: Predicate combinators
//
// # Example
//
//	type Three int
//	func (Three) Value() int { return 3 }
//
//	type LetterB rune
//	func (LetterB) Value() int { return 'b' }
//
//	type Yes bool
//	func (Yes) Value() int { return 1 }
//
//	s := hera.Pack3(Three(3), LetterB('b'), Yes(true))
//	sorted := hera.Sort(&s, hera.ByConstant[int]())
//	// hera.Values(sorted) == []any{Yes(true), LetterB('b'), Three(3)}
//	// sorted.At(0).Addr().Interface() == &s.V2
package hera
