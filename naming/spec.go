// SPDX-License-Identifier: MIT
// Package: varnames/naming
//
// spec.go — naming specs as a closed sum type.
//
// Spec is sealed: only Single, Explicit and Indexed implement it, and every
// consumer (Expand, Cardinality, reshape.Reconstruct) switches over exactly
// these three cases.
//
// Shape contract (shared with package reshape):
//   • Single   → Dims() == []      (rank 0, one element)
//   • Explicit → Dims() == Shape   (row-major, len(Names) == ∏ Shape)
//   • Indexed  → Dims() == [|axis_1|, ..., |axis_n|]

package naming

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies the case of a Spec.
type Kind int

const (
	// KindSingle is exactly one name with no shape.
	KindSingle Kind = iota
	// KindExplicit is a pre-built array of names.
	KindExplicit
	// KindIndexed is a pattern combined with one or more axes.
	KindIndexed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindExplicit:
		return "explicit"
	case KindIndexed:
		return "indexed"
	default:
		return "invalid"
	}
}

// Spec is one unit of the naming grammar.
type Spec interface {
	// Kind reports which case the spec is.
	Kind() Kind
	// Dims returns the shape the spec's names are reconstructed into.
	Dims() []int
	// Len returns the number of names the spec expands to (∏ Dims).
	Len() int
	// Validate reports structural problems without rendering any name.
	Validate() error
	// String renders the spec in the textual grammar accepted by Parse.
	String() string

	sealed()
}

// Single is exactly one name.
type Single struct {
	Name string
}

// Explicit is a pre-built array of names stored in row-major order.
type Explicit struct {
	Names []string
	Shape []int
}

// Indexed expands Pattern over the Cartesian product of Axes.
type Indexed struct {
	Pattern string
	Axes    []Axis
}

// Name returns a Single spec.
func Name(name string) Single { return Single{Name: name} }

// Char returns a Single spec named by one character.
func Char(r rune) Single { return Single{Name: string(r)} }

// Vector returns a one-dimensional Explicit spec.
func Vector(names ...string) Explicit {
	return Explicit{Names: names, Shape: []int{len(names)}}
}

// NewExplicit returns an Explicit spec with row-major names and the given dims.
// Without dims the names form a vector.
func NewExplicit(names []string, dims ...int) Explicit {
	if len(dims) == 0 {
		return Vector(names...)
	}
	return Explicit{Names: names, Shape: append([]int(nil), dims...)}
}

// Matrix returns a two-dimensional Explicit spec from rows.
// Ragged rows produce a spec whose Validate reports ErrBadShape.
func Matrix(rows [][]string) Explicit {
	if len(rows) == 0 {
		return Explicit{Shape: []int{0, 0}}
	}
	names := make([]string, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		names = append(names, row...)
	}
	return Explicit{Names: names, Shape: []int{len(rows), len(rows[0])}}
}

// Pattern returns an Indexed spec.
func Pattern(pattern string, axes ...Axis) Indexed {
	return Indexed{Pattern: pattern, Axes: axes}
}

// Count returns the n-generator shorthand prefix1, ..., prefixN.
func Count(prefix string, n int) Indexed {
	return Indexed{Pattern: prefix + "#", Axes: []Axis{Range(1, n)}}
}

func (Single) sealed()   {}
func (Explicit) sealed() {}
func (Indexed) sealed()  {}

// Kind returns KindSingle.
func (Single) Kind() Kind { return KindSingle }

// Kind returns KindExplicit.
func (Explicit) Kind() Kind { return KindExplicit }

// Kind returns KindIndexed.
func (Indexed) Kind() Kind { return KindIndexed }

// Dims returns an empty shape.
func (Single) Dims() []int { return []int{} }

// Dims returns a copy of Shape.
func (e Explicit) Dims() []int { return append([]int{}, e.Shape...) }

// Dims returns the axis lengths in axis order.
func (x Indexed) Dims() []int {
	dims := make([]int, len(x.Axes))
	for i, a := range x.Axes {
		if a != nil {
			dims[i] = a.Len()
		}
	}
	return dims
}

// Len returns 1.
func (Single) Len() int { return 1 }

// Len returns the number of stored names.
func (e Explicit) Len() int { return len(e.Names) }

// Len returns ∏ |axis|, or 0 without axes. The product is exact for specs
// that pass Validate.
func (x Indexed) Len() int {
	if len(x.Axes) == 0 {
		return 0
	}
	n := 1
	for _, d := range x.Dims() {
		n *= d
	}
	return n
}

// Validate rejects an empty name.
func (s Single) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// Validate checks that every dim is positive and ∏ Shape == len(Names).
func (e Explicit) Validate() error {
	if len(e.Shape) == 0 {
		return fmt.Errorf("no dims: %w", ErrBadShape)
	}
	n := 1
	for _, d := range e.Shape {
		if d <= 0 || n > math.MaxInt/d {
			return fmt.Errorf("dims %v: %w", e.Shape, ErrBadShape)
		}
		n *= d
	}
	if n != len(e.Names) {
		return fmt.Errorf("dims %v hold %d names, got %d: %w", e.Shape, n, len(e.Names), ErrBadShape)
	}
	for i, name := range e.Names {
		if name == "" {
			return fmt.Errorf("name %d: %w", i, ErrEmptyName)
		}
	}
	return nil
}

// Validate checks the pattern, its placeholders against the axis count,
// every axis, and that the number of names fits in an int.
// Printf patterns are only fully checked while rendering.
func (x Indexed) Validate() error {
	if x.Pattern == "" {
		return fmt.Errorf("pattern: %w", ErrEmptyName)
	}
	if len(x.Axes) == 0 {
		return ErrNoAxes
	}
	if _, err := planPattern(x.Pattern, len(x.Axes)); err != nil {
		return err
	}
	for i, a := range x.Axes {
		if err := validateAxis(a); err != nil {
			return fmt.Errorf("axis %d: %w", i, err)
		}
	}
	// ∏|axis| must fit in an int so Len is exact
	if _, err := boundedLen(x, math.MaxInt); err != nil {
		return err
	}
	return nil
}

// String returns the name.
func (s Single) String() string { return s.Name }

// String renders "[a, b]" for vectors and "[a b; c d]" for matrices
// ("[a b;]" for a single row).
// Higher ranks fall back to the flat names followed by the dims.
func (e Explicit) String() string {
	switch len(e.Shape) {
	case 1:
		return "[" + strings.Join(e.Names, ", ") + "]"
	case 2:
		if e.Validate() != nil {
			break
		}
		rows := make([]string, e.Shape[0])
		for i := range rows {
			rows[i] = strings.Join(e.Names[i*e.Shape[1]:(i+1)*e.Shape[1]], " ")
		}
		if len(rows) == 1 {
			return "[" + rows[0] + ";]"
		}
		return "[" + strings.Join(rows, "; ") + "]"
	}
	return fmt.Sprintf("[%s]%v", strings.Join(e.Names, ", "), e.Shape)
}

// String renders `pattern => axis, axis`; the pattern is quoted when it
// contains characters the parser treats specially.
func (x Indexed) String() string {
	parts := make([]string, len(x.Axes))
	for i, a := range x.Axes {
		if a == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = axisString(a)
	}
	pattern := x.Pattern
	if strings.ContainsAny(pattern, " ,[]=>\"'") {
		pattern = fmt.Sprintf("%q", pattern)
	}
	return pattern + " => " + strings.Join(parts, ", ")
}
