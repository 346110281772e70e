// SPDX-License-Identifier: MIT
// Package: varnames/naming
//
// axis.go — Axis implementations and their validation.
//
// An Axis is one dimension's ordered index domain. Order matters: it fixes
// both the order of generated names and the layout of reconstructed arrays.
// Label(i) is what '#', '@' and bracket rendering see; Value(i) is what a
// printf-style pattern receives as its argument.

package naming

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Axis is a finite, ordered, indexable sequence of discrete values.
type Axis interface {
	// Len returns the number of entries on the axis.
	Len() int
	// Label renders entry i (0 ≤ i < Len()) as an index component.
	Label(i int) string
	// Value returns entry i as the argument handed to printf-style patterns.
	Value(i int) any
}

// axisValidator is implemented by axes that can be malformed beyond being empty.
type axisValidator interface {
	validate() error
}

// IntRange is an inclusive arithmetic progression Start, Start+Step, ..., ≤ Stop
// (≥ Stop for negative steps).
type IntRange struct {
	Start, Step, Stop int
}

// Range returns the inclusive range start..stop with step 1, e.g. Range(1, 3) → 1, 2, 3.
func Range(start, stop int) IntRange {
	return IntRange{Start: start, Step: 1, Stop: stop}
}

// StepRange returns the inclusive range start, start+step, ... bounded by stop.
func StepRange(start, step, stop int) IntRange {
	return IntRange{Start: start, Step: step, Stop: stop}
}

// Len returns the number of entries; 0 when the range is empty, Step is 0,
// or the count does not fit in an int.
// Complexity: O(1).
func (r IntRange) Len() int {
	n, ok := r.count()
	if !ok {
		return 0
	}
	return n
}

// count computes the entry count in unsigned arithmetic, so spans such as
// math.MinInt..math.MaxInt cannot wrap. ok is false when the count exceeds
// math.MaxInt.
func (r IntRange) count() (n int, ok bool) {
	var span, step uint
	switch {
	case r.Step > 0 && r.Stop >= r.Start:
		span, step = uint(r.Stop)-uint(r.Start), uint(r.Step)
	case r.Step < 0 && r.Stop <= r.Start:
		// -(Step+1)+1 keeps math.MinInt representable
		span, step = uint(r.Start)-uint(r.Stop), uint(-(r.Step+1))+1
	default:
		return 0, true
	}
	c := span / step
	if c >= math.MaxInt {
		return 0, false
	}
	return int(c) + 1, true
}

// Label returns the decimal rendering of entry i.
func (r IntRange) Label(i int) string { return strconv.Itoa(r.Start + i*r.Step) }

// Value returns entry i as an int.
func (r IntRange) Value(i int) any { return r.Start + i*r.Step }

func (r IntRange) validate() error {
	if r.Step == 0 {
		return fmt.Errorf("range %d:0:%d has zero step: %w", r.Start, r.Stop, ErrBadAxis)
	}
	if _, ok := r.count(); !ok {
		return fmt.Errorf("range %s has more than %d entries: %w", r, math.MaxInt, ErrBadAxis)
	}
	return nil
}

// String renders the range as "start:stop" or "start:step:stop".
func (r IntRange) String() string {
	if r.Step == 1 {
		return fmt.Sprintf("%d:%d", r.Start, r.Stop)
	}
	return fmt.Sprintf("%d:%d:%d", r.Start, r.Step, r.Stop)
}

// IntList is an explicit ordered list of integers.
type IntList []int

// Ints returns an axis over the given integers, in the given order.
func Ints(v ...int) IntList { return IntList(v) }

// Len returns the number of integers.
func (l IntList) Len() int { return len(l) }

// Label returns the decimal rendering of entry i.
func (l IntList) Label(i int) string { return strconv.Itoa(l[i]) }

// Value returns entry i as an int.
func (l IntList) Value(i int) any { return l[i] }

// String renders the list as "[a, b, c]".
func (l IntList) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// CharList is an ordered list of characters.
type CharList []rune

// Chars returns an axis over the given runes.
func Chars(r ...rune) CharList { return CharList(r) }

// CharRange returns the inclusive run of characters lo..hi, e.g. 'a'..'c'.
// An inverted range yields an empty axis.
func CharRange(lo, hi rune) CharList {
	if hi < lo {
		return CharList{}
	}
	out := make(CharList, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

// Len returns the number of characters.
func (l CharList) Len() int { return len(l) }

// Label returns the character itself.
func (l CharList) Label(i int) string { return string(l[i]) }

// Value returns the rune, so "%c" renders the character.
func (l CharList) Value(i int) any { return l[i] }

// String renders the list as "['a', 'b']".
func (l CharList) String() string {
	parts := make([]string, len(l))
	for i, r := range l {
		parts[i] = "'" + string(r) + "'"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TokenList is an ordered list of arbitrary printable tokens.
type TokenList []string

// Tokens returns an axis over the given tokens.
func Tokens(s ...string) TokenList { return TokenList(s) }

// Len returns the number of tokens.
func (l TokenList) Len() int { return len(l) }

// Label returns token i unchanged.
func (l TokenList) Label(i int) string { return l[i] }

// Value returns token i as a string.
func (l TokenList) Value(i int) any { return l[i] }

func (l TokenList) validate() error {
	for i, s := range l {
		if s == "" {
			return fmt.Errorf("token %d is empty: %w", i, ErrBadAxis)
		}
	}
	return nil
}

// String renders the list as "[u, v]".
func (l TokenList) String() string {
	return "[" + strings.Join(l, ", ") + "]"
}

// LabeledAxis has N entries labeled by a LabelFn scheme.
type LabeledAxis struct {
	N  int
	Fn LabelFn
}

// Labeled returns an axis of n entries whose labels come from fn,
// e.g. Labeled(3, UpperLetterLabel) → A, B, C.
func Labeled(n int, fn LabelFn) LabeledAxis {
	return LabeledAxis{N: n, Fn: fn}
}

// Len returns N, or 0 when N is negative.
func (a LabeledAxis) Len() int {
	if a.N < 0 {
		return 0
	}
	return a.N
}

// Label returns Fn(i). Positions that Fn cannot render were rejected by
// validation and render as "".
func (a LabeledAxis) Label(i int) string {
	l, err := a.Fn(i)
	if err != nil {
		return ""
	}
	return l
}

// Value returns the label as a string.
func (a LabeledAxis) Value(i int) any { return a.Label(i) }

func (a LabeledAxis) validate() error {
	if a.Fn == nil {
		return fmt.Errorf("labeled axis without scheme: %w", ErrBadAxis)
	}
	for i := 0; i < a.Len(); i++ {
		label, err := a.Fn(i)
		if err != nil {
			if errors.Is(err, ErrBadAxis) {
				return err
			}
			return fmt.Errorf("label %d: %w: %w", i, ErrBadAxis, err)
		}
		if label == "" {
			return fmt.Errorf("label %d is empty: %w", i, ErrBadAxis)
		}
	}
	return nil
}

// String renders the labels as "[A, B, C]".
func (a LabeledAxis) String() string {
	if a.Fn == nil {
		return "[]"
	}
	parts := make([]string, a.Len())
	for i := range parts {
		parts[i] = a.Label(i)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// validateAxis reports empty or malformed axes.
func validateAxis(a Axis) error {
	if a == nil {
		return fmt.Errorf("nil axis: %w", ErrBadAxis)
	}
	if v, ok := a.(axisValidator); ok {
		if err := v.validate(); err != nil {
			return err
		}
	}
	if a.Len() <= 0 {
		return ErrEmptyAxis
	}
	return nil
}

// axisString renders an axis for Spec.String, falling back to its labels.
func axisString(a Axis) string {
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}
	parts := make([]string, a.Len())
	for i := range parts {
		parts[i] = a.Label(i)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
