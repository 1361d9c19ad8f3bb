// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hera_test

import (
	"fmt"
	"reflect"
	"testing"

	"code.hybscloud.com/hera"
)

func TestUnpackCallsOnceInOrder(t *testing.T) {
	cases := []struct {
		name string
		seq  any
		fn   func(calls *int, got *[]any) any
		want []any
	}{
		{"empty", hera.Tuple0{}, func(calls *int, got *[]any) any {
			return func() { *calls++ }
		}, []any{}},
		{"one", hera.Pack1("a"), func(calls *int, got *[]any) any {
			return func(a string) { *calls++; *got = []any{a} }
		}, []any{"a"}},
		{"three", hera.Pack3(1, "two", 3.0), func(calls *int, got *[]any) any {
			return func(a int, b string, c float64) { *calls++; *got = []any{a, b, c} }
		}, []any{1, "two", 3.0}},
		{"four", hera.Pack4(true, int8(2), "c", []int{4}), func(calls *int, got *[]any) any {
			return func(a bool, b int8, c string, d []int) { *calls++; *got = []any{a, b, c, d} }
		}, []any{true, int8(2), "c", []int{4}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			calls := 0
			got := []any{}
			hera.Unpack(c.seq, c.fn(&calls, &got))
			if calls != 1 {
				t.Fatalf("got %d calls, want 1", calls)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestUnpackResults(t *testing.T) {
	out := hera.Unpack(hera.Pack2(2, 3), func(a, b int) (int, error) { return a * b, nil })
	if len(out) != 2 || out[0].Int() != 6 || !out[1].IsNil() {
		t.Fatalf("got %v", out)
	}
	got := hera.UnpackAs[string](hera.Pack2("x", 3), func(s string, n int) string {
		return fmt.Sprintf("%s%d", s, n)
	})
	if got != "x3" {
		t.Fatalf("got %q", got)
	}
}

func TestUnpackBorrowedPointers(t *testing.T) {
	s := hera.Pack2(1, "a")
	hera.Unpack(&s, func(n *int, str *string) {
		*n = 10
		*str = "b"
	})
	if s.V0 != 10 || s.V1 != "b" {
		t.Fatalf("got %+v", s)
	}
}

type counter struct{ n int }

func (c *counter) Inc() { c.n++ }

func TestUnpackInterfaces(t *testing.T) {
	s := hera.Pack2(counter{}, celsius(3))
	hera.Unpack(&s, func(inc interface{ Inc() }, str fmt.Stringer) {
		inc.Inc()
		if str.String() != "3.0C" {
			t.Errorf("got %q", str.String())
		}
	})
	if s.V0.n != 1 {
		t.Fatalf("Inc through borrowed element not visible: %d", s.V0.n)
	}
	expectViolation(t, "unpack", func() {
		hera.Unpack(s, func(interface{ Inc() }, fmt.Stringer) {})
	})
}

func TestUnpackViolations(t *testing.T) {
	s := hera.Pack2(1, "a")
	expectViolation(t, "unpack", func() { hera.Unpack(s, func(*int, string) {}) })
	expectViolation(t, "unpack", func() { hera.Unpack(s, func(int) {}) })
	expectViolation(t, "unpack", func() { hera.Unpack(s, func(int, string, bool) {}) })
	expectViolation(t, "unpack", func() { hera.Unpack(s, func(string, string) {}) })
	expectViolation(t, "unpack", func() { hera.Unpack(s, func(int, ...string) {}) })
	expectViolation(t, "unpack", func() { hera.Unpack(s, 42) })
	expectViolation(t, "unpack", func() { hera.Unpack(s, nil) })
	expectViolation(t, "unpack", func() { hera.Unpack(s, (func(int, string))(nil)) })
	expectViolation(t, "unpack", func() {
		hera.UnpackAs[int](s, func(int, string) string { return "" })
	})
}

func TestTypedUnpack(t *testing.T) {
	if got := hera.Unpack0(hera.Tuple0{}, func() int { return 7 }); got != 7 {
		t.Fatalf("got %d", got)
	}
	if got := hera.Unpack1(hera.Pack1(2), func(a int) int { return a + 1 }); got != 3 {
		t.Fatalf("got %d", got)
	}
	got2 := hera.Unpack2(hera.Pack2("a", 2), func(a string, b int) string { return fmt.Sprint(a, b) })
	if got2 != "a2" {
		t.Fatalf("got %q", got2)
	}
	got3 := hera.Unpack3(hera.Pack3(1, 2, 3), func(a, b, c int) []int { return []int{a, b, c} })
	if !reflect.DeepEqual(got3, []int{1, 2, 3}) {
		t.Fatalf("got %v", got3)
	}
	got4 := hera.Unpack4(hera.Pack4(1, "b", 'c', true), func(a int, b string, c rune, d bool) string {
		return fmt.Sprint(a, b, string(c), d)
	})
	if got4 != "1bctrue" {
		t.Fatalf("got %q", got4)
	}
}
