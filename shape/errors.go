// SPDX-License-Identifier: MIT
// Package shape: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w);
// tests check them via errors.Is.

package shape

import "errors"

var (
	// ErrBadShape is returned when requested dims are invalid (a dim <= 0)
	// or disagree with the length of the supplied data.
	ErrBadShape = errors.New("shape: invalid shape")

	// ErrOutOfRange indicates that an index is outside its dimension.
	ErrOutOfRange = errors.New("shape: index out of range")

	// ErrRank indicates the number of indices differs from the array rank.
	ErrRank = errors.New("shape: wrong number of indices")

	// ErrNotScalar indicates Scalar was called on an array of rank > 0.
	ErrNotScalar = errors.New("shape: array is not a scalar")
)
