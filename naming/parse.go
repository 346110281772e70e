// SPDX-License-Identifier: MIT
// Package: varnames/naming
//
// parse.go — textual form of the naming grammar.
//
//	spec    := single | explicit | indexed
//	single  := name | "quoted name"
//	explicit:= '[' name {',' name} ']'              (vector)
//	         | '[' row {';' row} [';'] ']'          (matrix, row = names separated by spaces)
//	indexed := pattern '=>' axis {',' axis}
//	axis    := int ':' int | int ':' int ':' int    (inclusive ranges)
//	         | 'c' ':' 'c'                          (character range)
//	         | '[' value {',' value} ']'            (ints, 'c' chars or tokens)
//	         | int                                  (shorthand for 1:int)
//
// Spec.String produces this grammar, so Parse(s.String()) reproduces s for
// every spec whose axes are ranges or lists.

package naming

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const arrowToken = "=>"

// Parse reads one spec from its textual form.
// Errors wrap ErrSyntax (and therefore ErrSpec).
func Parse(text string) (Spec, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, fmt.Errorf("empty input: %w", ErrSyntax)
	}

	if i := indexTop(s, arrowToken); i >= 0 {
		return parseIndexed(s[:i], s[i+len(arrowToken):])
	}
	if strings.HasPrefix(s, "[") {
		return parseExplicit(s)
	}

	name, err := unquote(s)
	if err != nil {
		return nil, err
	}
	return Single{Name: name}, nil
}

// ParseAll parses every argument in order and stops at the first error.
func ParseAll(texts []string) ([]Spec, error) {
	specs := make([]Spec, 0, len(texts))
	for i, t := range texts {
		s, err := Parse(t)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q: %w", i, t, err)
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// MustParse is Parse for literals in tests and examples. It panics on error.
func MustParse(text string) Spec {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

func parseIndexed(lhs, rhs string) (Spec, error) {
	pattern, err := unquote(strings.TrimSpace(lhs))
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return nil, fmt.Errorf("missing pattern before %q: %w", arrowToken, ErrSyntax)
	}

	fields := splitTop(rhs, ',')
	axes := make([]Axis, 0, len(fields))
	for _, f := range fields {
		a, err := parseAxis(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		axes = append(axes, a)
	}

	return Indexed{Pattern: pattern, Axes: axes}, nil
}

// ParseAxis reads one axis in the textual grammar, e.g. "1:3", "'a':'c'", "[u, v]".
func ParseAxis(text string) (Axis, error) {
	return parseAxis(strings.TrimSpace(text))
}

func parseAxis(s string) (Axis, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("missing axis: %w", ErrSyntax)
	case strings.HasPrefix(s, "["):
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("unterminated list %q: %w", s, ErrSyntax)
		}
		return parseList(s[1 : len(s)-1])
	case strings.Contains(s, ":"):
		return parseRange(s)
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("axis %q: %w", s, ErrSyntax)
		}
		return Range(1, n), nil
	}
}

func parseRange(s string) (Axis, error) {
	parts := splitTop(s, ':')
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) == 2 {
		lo, okLo := charLiteral(parts[0])
		hi, okHi := charLiteral(parts[1])
		if okLo && okHi {
			return CharRange(lo, hi), nil
		}
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", s, ErrSyntax)
		}
		nums[i] = n
	}
	switch len(nums) {
	case 2:
		return Range(nums[0], nums[1]), nil
	case 3:
		return StepRange(nums[0], nums[1], nums[2]), nil
	default:
		return nil, fmt.Errorf("range %q needs 2 or 3 bounds: %w", s, ErrSyntax)
	}
}

func parseList(body string) (Axis, error) {
	fields := splitTop(body, ',')
	vals := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, fmt.Errorf("empty list element in [%s]: %w", body, ErrSyntax)
		}
		vals = append(vals, f)
	}

	if ints, ok := allInts(vals); ok {
		return IntList(ints), nil
	}
	if runes, ok := allChars(vals); ok {
		return CharList(runes), nil
	}
	tokens := make(TokenList, len(vals))
	for i, v := range vals {
		t, err := unquote(v)
		if err != nil {
			return nil, err
		}
		tokens[i] = t
	}
	return tokens, nil
}

func parseExplicit(s string) (Spec, error) {
	if !strings.HasSuffix(s, "]") {
		return nil, fmt.Errorf("unterminated array %q: %w", s, ErrSyntax)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return nil, fmt.Errorf("empty array: %w", ErrSyntax)
	}

	rows := splitTop(body, ';')
	if n := len(rows); n > 1 && strings.TrimSpace(rows[n-1]) == "" {
		// "[a b;]" is a one-row matrix
		rows = rows[:n-1]
	} else if n == 1 {
		names, err := splitNames(body)
		if err != nil {
			return nil, err
		}
		return Vector(names...), nil
	}

	matrix := make([][]string, len(rows))
	for i, r := range rows {
		names, err := splitNames(r)
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("row %d is empty: %w", i, ErrSyntax)
		}
		if i > 0 && len(names) != len(matrix[0]) {
			return nil, fmt.Errorf("row %d has %d names, row 0 has %d: %w", i, len(names), len(matrix[0]), ErrSyntax)
		}
		matrix[i] = names
	}
	return Matrix(matrix), nil
}

// splitNames splits a row on commas, or on whitespace when it has none.
func splitNames(row string) ([]string, error) {
	var fields []string
	if strings.Contains(row, ",") {
		fields = splitTop(row, ',')
	} else {
		fields = strings.Fields(row)
	}
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		name, err := unquote(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("empty name in %q: %w", row, ErrSyntax)
		}
		names = append(names, name)
	}
	return names, nil
}

func allInts(vals []string) ([]int, bool) {
	out := make([]int, len(vals))
	for i, v := range vals {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func allChars(vals []string) ([]rune, bool) {
	out := make([]rune, len(vals))
	for i, v := range vals {
		r, ok := charLiteral(v)
		if !ok {
			return nil, false
		}
		out[i] = r
	}
	return out, true
}

// charLiteral reports whether s is a single quoted character such as 'a'.
func charLiteral(s string) (rune, bool) {
	if len(s) < 3 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return 0, false
	}
	inner := s[1 : len(s)-1]
	r, size := utf8.DecodeRuneInString(inner)
	if r == utf8.RuneError || size != len(inner) {
		return 0, false
	}
	return r, true
}

// unquote strips Go-style double quotes when present.
func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	out, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("bad quoted string %s: %w", s, ErrSyntax)
	}
	return out, nil
}

// splitTop splits s on sep outside brackets and quotes.
func splitTop(s string, sep byte) []string {
	var out []string
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case opensQuote(s, i):
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == sep && depth == 0:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

// indexTop finds tok outside brackets and quotes, or returns -1.
func indexTop(s, tok string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case opensQuote(s, i):
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case depth == 0 && strings.HasPrefix(s[i:], tok):
			return i
		}
	}
	return -1
}

// opensQuote reports whether s[i] starts a quoted literal. A single quote
// only opens a char literal at the start of a token, so primes such as x'
// stay part of the name.
func opensQuote(s string, i int) bool {
	switch s[i] {
	case '"':
		return true
	case '\'':
		return i == 0 || strings.IndexByte(" \t[,:;", s[i-1]) >= 0
	default:
		return false
	}
}
