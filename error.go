// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera

import "fmt"

// ConstraintError reports a violated constraint: an out-of-range index, an
// input that is not a fixed-size sequence, an argument that cannot bind, a
// predicate that cannot be evaluated for a type pair, or an invalid conversion.
//
// It is the only failure kind in hera. Operations never return it; they panic
// with a *ConstraintError at the point of use, the way a template
// instantiation fails to compile. Nothing inside hera recovers it.
type ConstraintError struct {
	// Op is the operation whose constraint was violated (e.g. "sort").
	Op string

	// Msg describes the violated constraint.
	Msg string
}

func (e *ConstraintError) Error() string {
	return "hera: " + e.Op + ": " + e.Msg
}

// violation panics with a *ConstraintError for op.
func violation(op, format string, args ...any) {
	panic(&ConstraintError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// checkIndex enforces 0 <= i < n.
func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		violation(op, "index %d out of range [0, %d)", i, n)
	}
}
