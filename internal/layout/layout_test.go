// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layout_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"
	"unsafe"

	"code.hybscloud.com/hera"
	"code.hybscloud.com/hera/internal/layout"
)

func header() *layout.Descriptor {
	return &layout.Descriptor{
		Schema: "1.0",
		Name:   "header",
		Fields: []layout.Field{
			{Name: "valid", Type: "bool"},
			{Name: "seq", Type: "int64"},
			{Name: "urgent", Type: "bool"},
			{Name: "length", Type: "int32"},
		},
	}
}

type declared struct {
	valid  bool
	seq    int64
	urgent bool
	length int32
}

type packed struct {
	seq    int64
	length int32
	valid  bool
	urgent bool
}

func TestAnalyze(t *testing.T) {
	rep, err := layout.Analyze(header())
	if err != nil {
		t.Fatal(err)
	}
	if rep.OriginalSize != unsafe.Sizeof(declared{}) {
		t.Fatalf("original size %d, want %d", rep.OriginalSize, unsafe.Sizeof(declared{}))
	}
	if rep.OptimizedSize != unsafe.Sizeof(packed{}) {
		t.Fatalf("optimized size %d, want %d", rep.OptimizedSize, unsafe.Sizeof(packed{}))
	}
	if !reflect.DeepEqual(rep.Order, hera.Permutation{1, 3, 0, 2}) {
		t.Fatalf("got order %v", rep.Order)
	}
	var names []string
	for _, s := range rep.Optimized {
		names = append(names, s.Name)
	}
	if !reflect.DeepEqual(names, []string{"seq", "length", "valid", "urgent"}) {
		t.Fatalf("got %v", names)
	}
	if rep.Optimized[1].Offset != unsafe.Offsetof(packed{}.length) {
		t.Fatalf("length offset %d", rep.Optimized[1].Offset)
	}
	if got, want := rep.Saved(), int(unsafe.Sizeof(declared{})-unsafe.Sizeof(packed{})); got != want {
		t.Fatalf("saved %d, want %d", got, want)
	}
	if layout.Padding(rep.Optimized, rep.OptimizedSize) > layout.Padding(rep.Original, rep.OriginalSize) {
		t.Fatal("optimized layout has more padding")
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	rep, err := layout.Analyze(&layout.Descriptor{Schema: "1", Name: "empty"})
	if err != nil {
		t.Fatal(err)
	}
	if rep.OriginalSize != 0 || rep.OptimizedSize != 0 || len(rep.Order) != 0 {
		t.Fatalf("got %+v", rep)
	}
}

func TestAnalyzeUnknownType(t *testing.T) {
	d := header()
	d.Fields[1].Type = "int128"
	if _, err := layout.Analyze(d); !errors.Is(err, layout.ErrUnknownType) {
		t.Fatalf("got %v, want ErrUnknownType", err)
	}
}

func TestAnalyzeOversized(t *testing.T) {
	d := header()
	d.Fields[1].Type = "[9223372036854775807]int64"
	_, err := layout.Analyze(d)
	if err == nil {
		t.Fatal("expected error for oversized array")
	}
	if strconv.IntSize == 64 && !errors.Is(err, layout.ErrTypeTooLarge) {
		t.Fatalf("got %v, want ErrTypeTooLarge", err)
	}

	if strconv.IntSize < 64 {
		t.Skip("struct overflow case needs 64-bit lengths")
	}
	// Each field fits the address space; together they do not.
	d = &layout.Descriptor{
		Schema: "1",
		Name:   "huge",
		Fields: []layout.Field{
			{Name: "a", Type: "[2305843009213693952]int32"},
			{Name: "b", Type: "[2305843009213693952]int32"},
		},
	}
	rep, err := layout.Analyze(d)
	if err == nil || rep != nil {
		t.Fatalf("got (%v, %v), want error", rep, err)
	}
}

func TestAnalyzeLargeFieldsWithoutAllocating(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit lengths")
	}
	d := &layout.Descriptor{
		Schema: "1",
		Name:   "sparse",
		Fields: []layout.Field{
			{Name: "flag", Type: "bool"},
			{Name: "table", Type: "[1099511627776]int64"},
		},
	}
	rep, err := layout.Analyze(d)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rep.Order, hera.Permutation{1, 0}) {
		t.Fatalf("got order %v", rep.Order)
	}
}

func TestParseType(t *testing.T) {
	cases := map[string]reflect.Type{
		"int64":             reflect.TypeFor[int64](),
		" *string ":         reflect.TypeFor[*string](),
		"[]byte":            reflect.TypeFor[[]byte](),
		"[4]uint32":         reflect.TypeFor[[4]uint32](),
		"map[string][]int":  reflect.TypeFor[map[string][]int](),
		"map[[2]int]string": reflect.TypeFor[map[[2]int]string](),
		"chan error":        reflect.TypeFor[chan error](),
		"time.Duration":     reflect.TypeFor[time.Duration](),
		"[2]*any":           reflect.TypeFor[[2]*any](),
	}
	for expr, want := range cases {
		got, err := layout.ParseType(expr)
		if err != nil {
			t.Errorf("%q: %v", expr, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %v, want %v", expr, got, want)
		}
	}
	for _, bad := range []string{"", "int128", "[x]int", "[3int", "map[string", "map[[]int]bool", "*"} {
		if _, err := layout.ParseType(bad); !errors.Is(err, layout.ErrUnknownType) {
			t.Errorf("%q: got %v, want ErrUnknownType", bad, err)
		}
	}
}
