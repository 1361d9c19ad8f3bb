// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"reflect"

	"code.hybscloud.com/hera"
)

// Order sorts fields by decreasing alignment, then decreasing size.
// Placing stricter alignments first leaves padding only at the tail.
var Order = hera.ThenBy(hera.Reverse(hera.ByAlign()), hera.Reverse(hera.BySize()))

// Slot is one field placed in a struct layout.
type Slot struct {
	Name   string  `json:"name" yaml:"name"`
	Type   string  `json:"type" yaml:"type"`
	Offset uintptr `json:"offset" yaml:"offset"`
	Size   uintptr `json:"size" yaml:"size"`
	Align  int     `json:"align" yaml:"align"`
}

// Report compares a descriptor's declared layout with the optimized one.
type Report struct {
	Name          string           `json:"name" yaml:"name"`
	Original      []Slot           `json:"original" yaml:"original"`
	Optimized     []Slot           `json:"optimized" yaml:"optimized"`
	OriginalSize  uintptr          `json:"originalSize" yaml:"originalSize"`
	OptimizedSize uintptr          `json:"optimizedSize" yaml:"optimizedSize"`
	Order         hera.Permutation `json:"order" yaml:"order"`
}

// Saved returns the number of bytes the optimized order saves.
func (r *Report) Saved() int {
	return int(r.OriginalSize) - int(r.OptimizedSize)
}

// Padding returns the bytes of total not occupied by slots.
func Padding(slots []Slot, total uintptr) uintptr {
	var used uintptr
	for _, s := range slots {
		used += s.Size
	}
	return total - used
}

// Analyze builds the struct d describes, sorts its fields with Order, and
// reports both layouts.
func Analyze(d *Descriptor) (rep *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			// reflect.StructOf panics when the fields overflow the address space.
			if ce, ok := r.(*hera.ConstraintError); ok {
				err = fmt.Errorf("analyze %s: %w", d.Name, ce)
			} else {
				err = fmt.Errorf("analyze %s: %v", d.Name, r)
			}
			rep = nil
		}
	}()

	fields := make([]reflect.StructField, len(d.Fields))
	for i, f := range d.Fields {
		t, err := ParseType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		// Descriptor names need not be Go identifiers; positions name the fields.
		fields[i] = reflect.StructField{Name: fmt.Sprintf("F%d", i), Type: t}
	}
	original := reflect.StructOf(fields)

	// The sort reads static types only; no instance of original is allocated.
	sorted := hera.Sort(&fieldView{t: original}, Order)
	perm := sorted.Permutation()

	reordered := make([]reflect.StructField, len(perm))
	for i, t := range hera.Types(sorted) {
		reordered[i] = reflect.StructField{Name: fmt.Sprintf("F%d", i), Type: t}
	}
	optimized := reflect.StructOf(reordered)

	names := make([]string, len(perm))
	for i, p := range perm {
		names[i] = d.Fields[p].Name
	}
	declared := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		declared[i] = f.Name
	}

	return &Report{
		Name:          d.Name,
		Original:      slots(original, declared),
		Optimized:     slots(optimized, names),
		OriginalSize:  original.Size(),
		OptimizedSize: optimized.Size(),
		Order:         perm,
	}, nil
}

func slots(t reflect.Type, names []string) []Slot {
	out := make([]Slot, t.NumField())
	for i := range out {
		f := t.Field(i)
		out[i] = Slot{
			Name:   names[i],
			Type:   f.Type.String(),
			Offset: f.Offset,
			Size:   f.Type.Size(),
			Align:  f.Type.Align(),
		}
	}
	return out
}

// fieldView is a View over the field types of a struct type. Its elements
// are zero values; it never allocates the struct itself.
type fieldView struct {
	t reflect.Type
}

func (v *fieldView) Len() int { return v.t.NumField() }

func (v *fieldView) TypeAt(i int) reflect.Type { return v.t.Field(i).Type }

func (v *fieldView) At(i int) reflect.Value { return reflect.Zero(v.TypeAt(i)) }

func (*fieldView) Access() hera.Access { return hera.Owned }
