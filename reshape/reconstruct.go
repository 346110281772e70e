// SPDX-License-Identifier: MIT
// Package: varnames/reshape
//
// reconstruct.go — flat values back into the shapes of their specs.
//
// Design contract (strict):
//   • One Cursor walks flat once, in spec order, exactly like naming.Expand.
//   • Single   → one value, rank-0 array.
//   • Explicit → len(Names) values, dims = Shape.
//   • Indexed  → ∏|axis| values, dims = axis lengths, row-major (last axis
//     fastest), so element [i1..in] is the value generated for the name of
//     tuple (i1..in).
//   • The cursor must be exactly exhausted at the end (ErrLeftover) and may
//     never run dry (ErrUnderflow).
//   • Atomic: on error no arrays are returned.

package reshape

import (
	"fmt"

	"github.com/katalvlaran/varnames/naming"
	"github.com/katalvlaran/varnames/shape"
)

// Reconstruct reshapes flat, one value per name of naming.Expand(specs) in
// the same order, into one array per spec.
//
// Errors:
//   - naming.ErrSpec family: a spec is malformed (checked before consuming).
//   - ErrUnderflow / ErrLeftover (both ErrShapeMismatch): len(flat) disagrees
//     with the specs.
//
// Complexity: O(len(flat)) time and memory.
func Reconstruct[T any](flat []T, specs []naming.Spec) ([]*shape.Array[T], error) {
	if err := naming.ValidateAll(specs); err != nil {
		return nil, err
	}

	cur := NewCursor(flat)
	out := make([]*shape.Array[T], 0, len(specs))
	for pos, s := range specs {
		arr, err := take(cur, naming.Resolve(s))
		if err != nil {
			return nil, fmt.Errorf("spec %d (%s): %w", pos, s.Kind(), err)
		}
		out = append(out, arr)
	}
	if err := cur.Done(); err != nil {
		return nil, err
	}

	return out, nil
}

// MustReconstruct is Reconstruct for callers that treat any mismatch as a
// programming error. It panics instead of returning an error.
func MustReconstruct[T any](flat []T, specs []naming.Spec) []*shape.Array[T] {
	out, err := Reconstruct(flat, specs)
	if err != nil {
		panic(err)
	}
	return out
}

// take pops the values of one validated spec and shapes them.
func take[T any](cur *Cursor[T], s naming.Spec) (*shape.Array[T], error) {
	switch s := s.(type) {
	case naming.Single:
		items, err := cur.Take(1)
		if err != nil {
			return nil, err
		}
		return shape.NewScalar(items[0]), nil
	case naming.Explicit:
		items, err := cur.Take(len(s.Names))
		if err != nil {
			return nil, err
		}
		return shape.FromSlice(items, s.Shape...)
	case naming.Indexed:
		items, err := cur.Take(s.Len())
		if err != nil {
			return nil, err
		}
		return shape.FromSlice(items, s.Dims()...)
	default:
		return nil, fmt.Errorf("unsupported spec %T: %w", s, naming.ErrSpec)
	}
}

// Flatten concatenates the elements of arrays in order. It is the inverse
// of Reconstruct: Flatten(Reconstruct(flat, specs)) == flat.
// Complexity: O(Σ Len).
func Flatten[T any](arrays []*shape.Array[T]) []T {
	n := 0
	for _, a := range arrays {
		n += a.Len()
	}
	out := make([]T, 0, n)
	for _, a := range arrays {
		out = append(out, a.Data()...)
	}
	return out
}
