// SPDX-License-Identifier: MIT
// Package: varnames/reshape
//
// errors.go — sentinel errors for the reshape package.
//
// Error policy:
//   • ErrShapeMismatch is a contract violation between the expander and its
//     caller: the flat sequence does not hold exactly one value per expanded
//     name. It signals a caller bug, never bad user input.
//   • Malformed specs are reported with naming.ErrSpec sentinels, never with
//     ErrShapeMismatch; the two families are disjoint.
//   • MustReconstruct turns any error into a panic for callers that treat a
//     mismatch as an assertion.

package reshape

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is the root sentinel for count mismatches between a flat
// sequence and the specs used to reconstruct it.
var ErrShapeMismatch = errors.New("reshape: flat sequence does not match specs")

var (
	// ErrUnderflow indicates the flat sequence ran out before every spec was filled.
	ErrUnderflow = fmt.Errorf("%w: too few values", ErrShapeMismatch)

	// ErrLeftover indicates values remained after every spec was filled.
	ErrLeftover = fmt.Errorf("%w: too many values", ErrShapeMismatch)
)
