// Package naming expands terse naming specifications into flat, ordered
// lists of symbolic variable names for algebraic constructors (polynomial
// rings, power series rings, function fields, ...).
//
// What:
//
//   - Spec is a closed sum type with three cases:
//     – Single{Name}:             exactly one name ("z").
//     – Explicit{Names, Shape}:   a pre-built row-major array of names.
//     – Indexed{Pattern, Axes}:   a pattern expanded over the Cartesian product of axes.
//   - Axis implementations: Range/StepRange, Ints, Chars/CharRange, Tokens,
//     and Labeled with LabelFn schemes built on DigitsLabel (decimal, hex,
//     base 36) and AlphabetLabel (a…z, A…Z, α…ω), plus SubscriptLabel and
//     PrefixedLabel.
//   - Expand renders specs in order; Cardinality counts without rendering.
//   - Parse/ParseAll read the textual grammar ("x# => 1:2, 1:3", "[a, b]", "z").
//
// Pattern rendering for Indexed specs:
//
//	x     with (0:0, 0:1)        → x[0,0], x[0,1]
//	x#    with (0:0, [-1,3,10])  → x0_m1, x0_3, x0_10
//	x@    with (0:0, [-1,3,10])  → x0,-1, x0,3, x0,10
//	a#b#  with (1:2, 1:1)        → a1b1, a2b1
//	x%02d with (1:2)             → x01, x02
//
// Tuples are enumerated with the first axis slowest and the last axis
// fastest; package reshape relies on exactly this order.
//
// Options:
//
//   - WithMaxNames(n):  cap one expansion (default DefaultMaxNames).
//   - WithUniqueNames(): reject colliding names.
//   - WithSanitizer(fn): replace the '#' component sanitizer.
//
// Errors:
//
//   - Every error wraps ErrSpec; branch on specific sentinels with errors.Is.
//
// Complexity:
//
//   - Expand: O(N·L) time and memory for N names of length L.
//   - Cardinality: O(#specs + #axes), plus O(N) for Labeled axes validation.
package naming
