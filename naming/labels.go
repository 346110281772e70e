// SPDX-License-Identifier: MIT
// Package: varnames/naming
//
// labels.go — label schemes for Labeled axes.
//
// Every scheme is a numeration of the axis position: positional digits in a
// base (DigitsLabel), bijective numeration over an alphabet (AlphabetLabel:
// a…z, aa, ab, …), or Unicode subscripts. Built-in schemes never emit
// '-', '.' or '/', so their labels pass through the '#' sanitizer unchanged.

package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LabelFn renders the zero-based position idx of an axis entry as a label.
// It must be deterministic. A failure is reported through the error, and
// Expand surfaces it as ErrBadAxis.
type LabelFn func(idx int) (string, error)

const (
	digitSymbols = "0123456789abcdefghijklmnopqrstuvwxyz"
	lowerLatin   = "abcdefghijklmnopqrstuvwxyz"
	upperLatin   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerGreek   = "αβγδεζηθικλμνξοπρστυφχψω"
	subscripts   = "₀₁₂₃₄₅₆₇₈₉"
)

var (
	hexDigits    = DigitsLabel(16)
	base36Digits = DigitsLabel(36)
	latinLower   = AlphabetLabel(lowerLatin)
	latinUpper   = AlphabetLabel(upperLatin)
	greekLower   = AlphabetLabel(lowerGreek)
)

// labelError reports a position a scheme cannot render.
func labelError(scheme string, idx int) error {
	return fmt.Errorf("%s label for position %d: %w", scheme, idx, ErrBadAxis)
}

// DecimalLabel renders 0, 1, 2, ...
func DecimalLabel(idx int) (string, error) {
	if idx < 0 {
		return "", labelError("decimal", idx)
	}
	return positional(idx, 10), nil
}

// OneBasedLabel renders 1, 2, 3, ..., the usual mathematical indexing.
func OneBasedLabel(idx int) (string, error) {
	if idx < 0 {
		return "", labelError("one-based", idx)
	}
	return DecimalLabel(idx + 1)
}

// HexLabel renders lowercase hexadecimal: 0 … 9, a … f, 10, ...
func HexLabel(idx int) (string, error) { return hexDigits(idx) }

// Base36Label renders lowercase base 36: 0 … 9, a … z, 10, ...
func Base36Label(idx int) (string, error) { return base36Digits(idx) }

// LetterLabel renders a … z, aa, ab, ... without an upper bound.
func LetterLabel(idx int) (string, error) { return latinLower(idx) }

// UpperLetterLabel renders A … Z, AA, AB, ... (spreadsheet columns).
func UpperLetterLabel(idx int) (string, error) { return latinUpper(idx) }

// GreekLabel renders α … ω, αα, αβ, ...
func GreekLabel(idx int) (string, error) { return greekLower(idx) }

// SubscriptLabel renders the decimal position in subscript digits: ₀, ₁, …, ₁₂.
// Adjacent subscripts read as one index, so "x#" over two axes of ≤ 10
// entries yields x₀₁ style names.
func SubscriptLabel(idx int) (string, error) {
	dec, err := DecimalLabel(idx)
	if err != nil {
		return "", labelError("subscript", idx)
	}
	var b strings.Builder
	for _, d := range dec {
		b.WriteString(subscriptDigit(int(d - '0')))
	}
	return b.String(), nil
}

func subscriptDigit(d int) string {
	// each subscript digit is three bytes in UTF-8
	return subscripts[3*d : 3*d+3]
}

// positional renders a non-negative n in base using digitSymbols.
func positional(n, base int) string {
	if n == 0 {
		return "0"
	}
	var buf [64]byte
	i := len(buf)
	for ; n > 0; n /= base {
		i--
		buf[i] = digitSymbols[n%base]
	}
	return string(buf[i:])
}

// DigitsLabel returns positional numeration in base 2..36 with digits
// 0-9 then a-z. It panics on any other base.
func DigitsLabel(base int) LabelFn {
	if base < 2 || base > len(digitSymbols) {
		panic(fmt.Sprintf("naming: DigitsLabel(%d)", base))
	}
	scheme := fmt.Sprintf("base-%d", base)
	return func(idx int) (string, error) {
		if idx < 0 {
			return "", labelError(scheme, idx)
		}
		return positional(idx, base), nil
	}
}

// AlphabetLabel returns bijective numeration over symbols: with "abc" the
// labels are a, b, c, aa, ab, ac, ba, ... Distinct positions always get
// distinct labels.
// It panics when symbols is empty, holds a repeated rune, or holds a rune
// that is neither a letter nor a digit.
func AlphabetLabel(symbols string) LabelFn {
	alphabet := []rune(symbols)
	if len(alphabet) == 0 {
		panic("naming: AlphabetLabel with no symbols")
	}
	seen := make(map[rune]bool, len(alphabet))
	for _, r := range alphabet {
		if seen[r] || r == utf8.RuneError || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			panic(fmt.Sprintf("naming: AlphabetLabel(%q): bad symbol %q", symbols, r))
		}
		seen[r] = true
	}
	k := uint(len(alphabet))
	return func(idx int) (string, error) {
		if idx < 0 {
			return "", labelError("alphabet", idx)
		}
		var out []rune
		for n := uint(idx) + 1; n > 0; n = (n - 1) / k {
			out = append(out, alphabet[(n-1)%k])
		}
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return string(out), nil
	}
}

// PrefixedLabel puts prefix in front of every label of fn,
// e.g. PrefixedLabel("k", DecimalLabel) → k0, k1, ...
func PrefixedLabel(prefix string, fn LabelFn) LabelFn {
	return func(idx int) (string, error) {
		l, err := fn(idx)
		if err != nil {
			return "", err
		}
		return prefix + l, nil
	}
}
