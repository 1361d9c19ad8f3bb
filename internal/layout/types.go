// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layout

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unsafe"
)

var (
	// ErrUnknownType is returned for type expressions that name no known type.
	ErrUnknownType = errors.New("unknown type")

	// ErrTypeTooLarge is returned for array types that exceed the address space.
	ErrTypeTooLarge = errors.New("type too large")
)

var namedTypes = map[string]reflect.Type{
	"bool":           reflect.TypeFor[bool](),
	"int":            reflect.TypeFor[int](),
	"int8":           reflect.TypeFor[int8](),
	"int16":          reflect.TypeFor[int16](),
	"int32":          reflect.TypeFor[int32](),
	"int64":          reflect.TypeFor[int64](),
	"uint":           reflect.TypeFor[uint](),
	"uint8":          reflect.TypeFor[uint8](),
	"uint16":         reflect.TypeFor[uint16](),
	"uint32":         reflect.TypeFor[uint32](),
	"uint64":         reflect.TypeFor[uint64](),
	"uintptr":        reflect.TypeFor[uintptr](),
	"byte":           reflect.TypeFor[byte](),
	"rune":           reflect.TypeFor[rune](),
	"float32":        reflect.TypeFor[float32](),
	"float64":        reflect.TypeFor[float64](),
	"complex64":      reflect.TypeFor[complex64](),
	"complex128":     reflect.TypeFor[complex128](),
	"string":         reflect.TypeFor[string](),
	"any":            reflect.TypeFor[any](),
	"error":          reflect.TypeFor[error](),
	"unsafe.Pointer": reflect.TypeFor[unsafe.Pointer](),
	"time.Time":      reflect.TypeFor[time.Time](),
	"time.Duration":  reflect.TypeFor[time.Duration](),
}

// ParseType resolves a Go type expression built from predeclared types,
// time.Time, time.Duration, unsafe.Pointer, and the *T, []T, [N]T, map[K]V,
// and chan T constructors.
func ParseType(expr string) (reflect.Type, error) {
	s := strings.TrimSpace(expr)
	switch {
	case s == "":
		return nil, fmt.Errorf("%w: empty type", ErrUnknownType)
	case strings.HasPrefix(s, "*"):
		elem, err := ParseType(s[1:])
		if err != nil {
			return nil, err
		}
		return reflect.PointerTo(elem), nil
	case strings.HasPrefix(s, "[]"):
		elem, err := ParseType(s[2:])
		if err != nil {
			return nil, err
		}
		return reflect.SliceOf(elem), nil
	case strings.HasPrefix(s, "["):
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated array length in %q", ErrUnknownType, expr)
		}
		n, err := strconv.Atoi(strings.TrimSpace(s[1:end]))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad array length in %q", ErrUnknownType, expr)
		}
		elem, err := ParseType(s[end+1:])
		if err != nil {
			return nil, err
		}
		if elem.Size() > 0 && uintptr(n) > ^uintptr(0)/elem.Size() {
			return nil, fmt.Errorf("%w: %q", ErrTypeTooLarge, expr)
		}
		return reflect.ArrayOf(n, elem), nil
	case strings.HasPrefix(s, "map["):
		end := matchBracket(s, len("map"))
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated map key in %q", ErrUnknownType, expr)
		}
		key, err := ParseType(s[len("map["):end])
		if err != nil {
			return nil, err
		}
		if !key.Comparable() {
			return nil, fmt.Errorf("%w: map key %s is not comparable", ErrUnknownType, key)
		}
		val, err := ParseType(s[end+1:])
		if err != nil {
			return nil, err
		}
		return reflect.MapOf(key, val), nil
	case strings.HasPrefix(s, "chan "):
		elem, err := ParseType(s[len("chan "):])
		if err != nil {
			return nil, err
		}
		return reflect.ChanOf(reflect.BothDir, elem), nil
	}
	if t, ok := namedTypes[s]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, expr)
}

// matchBracket returns the index of the ']' closing the '[' at open.
func matchBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
