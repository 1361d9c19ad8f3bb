// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera_test

import (
	"testing"

	"code.hybscloud.com/hera"
)

// expectViolation runs f and requires it to panic with a *hera.ConstraintError
// raised by op.
func expectViolation(t *testing.T, op string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected %s violation", op)
		}
		err, ok := r.(*hera.ConstraintError)
		if !ok {
			t.Fatalf("unexpected panic: %v", r)
		}
		if err.Op != op {
			t.Fatalf("got op %q, want %q (%v)", err.Op, op, err)
		}
	}()
	f()
}

func TestConstraintErrorMessage(t *testing.T) {
	err := &hera.ConstraintError{Op: "sort", Msg: "nil predicate"}
	if got := err.Error(); got != "hera: sort: nil predicate" {
		t.Fatalf("got %q", got)
	}
}
