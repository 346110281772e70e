// SPDX-License-Identifier: MIT
// Package: varnames/shape
//
// array.go — generic row-major N-dimensional array.
// The last index varies fastest and elements live in one flat slice.
// A rank-0 array holds exactly one element and stands for a scalar.

package shape

import (
	"fmt"
	"math"
	"strings"
)

// shapeErrorf wraps an underlying error with Array method context.
func shapeErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s(%v): %w", method, idx, err)
}

// Array is a row-major N-dimensional array of T.
// dims holds the extents, strides the row-major offsets, data ∏dims elements.
type Array[T any] struct {
	dims    []int // extent per dimension, len == rank
	strides []int // row-major strides, strides[rank-1] == 1
	data    []T   // flat backing storage
}

// New creates an array with the given dims, filled with zero values.
// No dims yields a rank-0 array holding one zero value.
// Stage 1 (Validate): every dim > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(∏dims) time and memory.
func New[T any](dims ...int) (*Array[T], error) {
	n, err := volume(dims)
	if err != nil {
		return nil, err
	}

	return &Array[T]{
		dims:    append([]int{}, dims...),
		strides: strides(dims),
		data:    make([]T, n),
	}, nil
}

// FromSlice creates an array over a copy of data, interpreted row-major.
// Returns ErrBadShape when len(data) != ∏dims.
// Complexity: O(len(data)).
func FromSlice[T any](data []T, dims ...int) (*Array[T], error) {
	n, err := volume(dims)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("dims %v need %d elements, got %d: %w", dims, n, len(data), ErrBadShape)
	}

	return &Array[T]{
		dims:    append([]int{}, dims...),
		strides: strides(dims),
		data:    append(make([]T, 0, n), data...),
	}, nil
}

// NewScalar returns a rank-0 array holding v.
func NewScalar[T any](v T) *Array[T] {
	return &Array[T]{dims: []int{}, strides: []int{}, data: []T{v}}
}

// volume validates dims and returns ∏dims (1 for rank 0).
// A product that does not fit in an int is ErrBadShape.
func volume(dims []int) (int, error) {
	n := 1
	for _, d := range dims {
		if d <= 0 {
			return 0, fmt.Errorf("dims %v: %w", dims, ErrBadShape)
		}
		if n > math.MaxInt/d {
			return 0, fmt.Errorf("dims %v: element count overflows int: %w", dims, ErrBadShape)
		}
		n *= d
	}
	return n, nil
}

// strides computes row-major strides for dims.
func strides(dims []int) []int {
	s := make([]int, len(dims))
	acc := 1
	for k := len(dims) - 1; k >= 0; k-- {
		s[k] = acc
		acc *= dims[k]
	}
	return s
}

// Dims returns a copy of the extents.
// Complexity: O(rank).
func (a *Array[T]) Dims() []int {
	return append([]int{}, a.dims...)
}

// Rank returns the number of dimensions (0 for scalars).
func (a *Array[T]) Rank() int {
	return len(a.dims)
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// IsScalar reports whether the array has rank 0.
func (a *Array[T]) IsScalar() bool {
	return len(a.dims) == 0
}

// offset computes the flat index for idx or returns ErrRank/ErrOutOfRange.
// Complexity: O(rank).
func (a *Array[T]) offset(method string, idx []int) (int, error) {
	if len(idx) != len(a.dims) {
		return 0, shapeErrorf(method, idx, ErrRank)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.dims[k] {
			return 0, shapeErrorf(method, idx, ErrOutOfRange)
		}
		off += i * a.strides[k]
	}

	return off, nil
}

// At retrieves the element at idx (zero-based, one index per dimension).
// Complexity: O(rank).
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := a.offset("At", idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[off], nil
}

// Set assigns v at idx.
// Complexity: O(rank).
func (a *Array[T]) Set(v T, idx ...int) error {
	off, err := a.offset("Set", idx)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// Scalar returns the single element of a rank-0 array.
func (a *Array[T]) Scalar() (T, error) {
	if len(a.dims) != 0 {
		var zero T
		return zero, fmt.Errorf("Array.Scalar: rank %d: %w", len(a.dims), ErrNotScalar)
	}

	return a.data[0], nil
}

// Data returns a copy of the elements in row-major order.
// Complexity: O(Len()).
func (a *Array[T]) Data() []T {
	return append(make([]T, 0, len(a.data)), a.data...)
}

// Rows returns a rank-2 array as a slice of row copies.
// Returns ErrRank for any other rank.
func (a *Array[T]) Rows() ([][]T, error) {
	if len(a.dims) != 2 {
		return nil, fmt.Errorf("Array.Rows: rank %d: %w", len(a.dims), ErrRank)
	}
	r, c := a.dims[0], a.dims[1]
	rows := make([][]T, r)
	for i := 0; i < r; i++ {
		rows[i] = append(make([]T, 0, c), a.data[i*c:(i+1)*c]...)
	}

	return rows, nil
}

// Each calls fn for every element in row-major order with its index tuple.
// The idx slice is reused between calls; copy it to retain it.
func (a *Array[T]) Each(fn func(idx []int, v T)) {
	idx := make([]int, len(a.dims))
	for off, v := range a.data {
		rem := off
		for k := range idx {
			idx[k] = rem / a.strides[k]
			rem %= a.strides[k]
		}
		fn(idx, v)
	}
}

// Clone returns a deep copy of the array.
// Complexity: O(Len()).
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		dims:    append([]int{}, a.dims...),
		strides: append([]int{}, a.strides...),
		data:    a.Data(),
	}
}

// String renders nested brackets, e.g. "x", "[a, b]", "[[a, b], [c, d]]".
// Complexity: O(Len()) for string construction.
func (a *Array[T]) String() string {
	var b strings.Builder
	a.write(&b, 0, 0)
	return b.String()
}

// write renders dimension k starting at flat offset off.
func (a *Array[T]) write(b *strings.Builder, k, off int) {
	if k == len(a.dims) {
		fmt.Fprint(b, a.data[off])
		return
	}
	b.WriteByte('[')
	for i := 0; i < a.dims[k]; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		a.write(b, k+1, off+i*a.strides[k])
	}
	b.WriteByte(']')
}
