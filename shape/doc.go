// Package shape holds the arrays that reconstructed generators are
// arranged into.
//
// What:
//
//   - Array[T]: generic, row-major, N-dimensional, flat-backed.
//   - Rank 0 is a scalar (one element, no dims), rank 1 a vector, rank 2 a
//     matrix, and so on; element [i1, ..., in] sits at Σ ik·stride_k.
//
// Errors:
//
//   - ErrBadShape:   a dim <= 0 or data length disagrees with dims.
//   - ErrOutOfRange: an index outside its dimension.
//   - ErrRank:       wrong number of indices (or Rows on a non-matrix).
//   - ErrNotScalar:  Scalar on rank > 0.
//
// Indexing is zero-based regardless of the axis values a naming spec used.
package shape
