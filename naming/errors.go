// SPDX-License-Identifier: MIT
// Package: varnames/naming
//
// errors.go — sentinel errors for the naming package.
//
// Error policy (explicit and strict):
//   • ErrSpec is the root of every error this package returns. A spec error
//     means the naming specification itself is malformed; the caller fixes
//     the input, nothing is retried.
//   • Every specific sentinel wraps ErrSpec, so both
//     errors.Is(err, ErrMixedPlaceholders) and errors.Is(err, ErrSpec) hold.
//   • Context (spec position, pattern text) is attached with %w at the
//     failing call site via specErrorf.
//   • Nothing in this package panics on user input. Option constructors
//     (WithX...) panic on meaningless values, like the rest of the module.

package naming

import (
	"errors"
	"fmt"
)

// ErrSpec is the root sentinel for malformed naming specifications.
// Usage: if errors.Is(err, ErrSpec) { /* report bad input */ }.
var ErrSpec = errors.New("naming: invalid naming spec")

var (
	// ErrEmptyName indicates a Single/Explicit name or an Indexed pattern is empty.
	ErrEmptyName = fmt.Errorf("%w: empty name", ErrSpec)

	// ErrMixedPlaceholders indicates a pattern uses both '#' and '@'.
	ErrMixedPlaceholders = fmt.Errorf("%w: pattern mixes '#' and '@' placeholders", ErrSpec)

	// ErrPlaceholderCount indicates a placeholder count other than 0, 1 or the axis count.
	ErrPlaceholderCount = fmt.Errorf("%w: placeholder count must be 0, 1 or the number of axes", ErrSpec)

	// ErrFormat indicates a printf-style pattern does not consume exactly one
	// value per axis, or a verb does not accept the axis value.
	ErrFormat = fmt.Errorf("%w: invalid format pattern", ErrSpec)

	// ErrNoAxes indicates an Indexed spec without any axis.
	ErrNoAxes = fmt.Errorf("%w: indexed spec needs at least one axis", ErrSpec)

	// ErrEmptyAxis indicates an axis of length zero (non-positive axis product).
	ErrEmptyAxis = fmt.Errorf("%w: axis is empty", ErrSpec)

	// ErrBadAxis indicates an axis that cannot be enumerated (zero step, nil label scheme).
	ErrBadAxis = fmt.Errorf("%w: invalid axis", ErrSpec)

	// ErrBadShape indicates Explicit dims that are non-positive or disagree with len(names).
	ErrBadShape = fmt.Errorf("%w: explicit names do not match dims", ErrSpec)

	// ErrTooManyNames indicates the expansion would exceed the configured MaxNames.
	ErrTooManyNames = fmt.Errorf("%w: too many names", ErrSpec)

	// ErrDuplicateName indicates two generated names collide while WithUniqueNames is active.
	ErrDuplicateName = fmt.Errorf("%w: duplicate name", ErrSpec)

	// ErrSyntax indicates a textual spec that Parse cannot read.
	ErrSyntax = fmt.Errorf("%w: syntax error", ErrSpec)

	// ErrNilSpec indicates a nil Spec value in the input sequence.
	ErrNilSpec = fmt.Errorf("%w: nil spec", ErrSpec)
)

// specErrorf prefixes a sentinel with the position of the failing spec.
// The sentinel stays reachable through errors.Is.
func specErrorf(pos int, err error, format string, args ...interface{}) error {
	return fmt.Errorf("spec %d: %s: %w", pos, fmt.Sprintf(format, args...), err)
}
