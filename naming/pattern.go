// SPDX-License-Identifier: MIT
// Package: varnames/naming
//
// pattern.go — placeholder grammar of Indexed patterns.
//
// Precedence (fixed):
//   1. '%' anywhere        → printf-style, one argument per axis.
//   2. '#' and '@' mixed   → ErrMixedPlaceholders.
//   3. c = count of '#' or '@':
//        c == 0           → "pattern[l1,l2,...]"
//        c == 1           → placeholder replaced by the joined tuple
//        c == len(axes)   → pattern split at placeholders, one component each
//        otherwise        → ErrPlaceholderCount
//
// '#' sanitizes components ('-'→'m', '.'→'p', runs of '/'→'q'); '@' keeps
// them verbatim. With a single '#' the join delimiter is "_" as soon as any
// sanitized label of any axis is longer than one character, "" otherwise;
// with a single '@' it is always ",".

package naming

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	hashPlaceholder = '#' // sanitizing placeholder
	atPlaceholder   = '@' // verbatim placeholder
	formatMarker    = "%" // printf-style pattern marker
	formatFailure   = "%!"
	bracketDelim    = ","
	flattenDelim    = "_"
)

// renderMode selects how an index tuple becomes a name.
type renderMode int

const (
	modeBracket renderMode = iota
	modeFlatten
	modeInterleave
	modeFormat
)

// patternPlan is the analysed form of one Indexed pattern.
type patternPlan struct {
	mode    renderMode
	massage bool     // '#' placeholders sanitize components
	parts   []string // modeFlatten: 2 parts, modeInterleave: len(axes)+1 parts
}

// planPattern classifies pattern against the number of axes.
// Complexity: O(len(pattern)).
func planPattern(pattern string, nAxes int) (patternPlan, error) {
	if strings.Contains(pattern, formatMarker) {
		verbs, indexed := countVerbs(pattern)
		if !indexed && verbs != nAxes {
			return patternPlan{}, fmt.Errorf("%q has %d verbs for %d axes: %w", pattern, verbs, nAxes, ErrFormat)
		}
		return patternPlan{mode: modeFormat}, nil
	}

	cHash := strings.Count(pattern, string(hashPlaceholder))
	cAt := strings.Count(pattern, string(atPlaceholder))
	if cHash > 0 && cAt > 0 {
		return patternPlan{}, fmt.Errorf("%q: %w", pattern, ErrMixedPlaceholders)
	}
	c, ph := cAt, atPlaceholder
	if cHash > 0 {
		c, ph = cHash, hashPlaceholder
	}
	plan := patternPlan{massage: cHash > 0}

	switch {
	case c == 0:
		plan.mode = modeBracket
	case c == 1:
		plan.mode = modeFlatten
		plan.parts = strings.SplitN(pattern, string(ph), 2)
	case c == nAxes:
		plan.mode = modeInterleave
		plan.parts = strings.Split(pattern, string(ph))
	default:
		return patternPlan{}, fmt.Errorf("%q has %d placeholders for %d axes: %w", pattern, c, nAxes, ErrPlaceholderCount)
	}

	return plan, nil
}

// countVerbs counts printf verbs, skipping "%%". indexed reports explicit
// argument indexes ("%[2]d"), for which the count is not meaningful.
func countVerbs(pattern string) (verbs int, indexed bool) {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		if i < len(pattern) && pattern[i] == '%' {
			continue
		}
		// flags, width, precision and argument index precede the verb
		for i < len(pattern) && strings.IndexByte("+-# 0123456789.*[]", pattern[i]) >= 0 {
			if pattern[i] == '[' {
				indexed = true
			}
			i++
		}
		verbs++
	}

	return verbs, indexed
}

// Sanitize makes an index component safe for a plain identifier:
// '-'→'m', '.'→'p', and every run of '/' collapses to a single 'q'.
// Examples: "-1"→"m1", "2.5"→"2p5", "1//2"→"1q2".
// Complexity: O(len(s)).
func Sanitize(s string) string {
	if !strings.ContainsAny(s, "-./") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '-':
			b.WriteByte('m')
		case '.':
			b.WriteByte('p')
		case '/':
			for i+1 < len(s) && s[i+1] == '/' {
				i++
			}
			b.WriteByte('q')
		default:
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

// flattenDelimiter picks the join delimiter for a single-placeholder pattern.
// labels are the (already sanitized, when massaging) labels of every axis.
func flattenDelimiter(massage bool, labels [][]string) string {
	if !massage {
		return bracketDelim
	}
	for _, axis := range labels {
		for _, l := range axis {
			if utf8.RuneCountInString(l) > 1 {
				return flattenDelim
			}
		}
	}

	return ""
}

// renderer turns one index tuple (positions into each axis) into a name.
type renderer func(pos []int) (string, error)

// newRenderer prepares labels once per spec and returns the per-tuple renderer.
func newRenderer(x Indexed, plan patternPlan, cfg expandConfig) renderer {
	if plan.mode == modeFormat {
		return func(pos []int) (string, error) {
			args := make([]any, len(pos))
			for k, p := range pos {
				args[k] = x.Axes[k].Value(p)
			}
			out := fmt.Sprintf(x.Pattern, args...)
			if strings.Contains(out, formatFailure) {
				return "", fmt.Errorf("%q rendered %q: %w", x.Pattern, out, ErrFormat)
			}
			return out, nil
		}
	}

	labels := make([][]string, len(x.Axes))
	for k, a := range x.Axes {
		labels[k] = make([]string, a.Len())
		for i := range labels[k] {
			l := a.Label(i)
			if plan.massage {
				l = cfg.sanitize(l)
			}
			labels[k][i] = l
		}
	}
	comps := make([]string, len(x.Axes))
	fill := func(pos []int) []string {
		for k, p := range pos {
			comps[k] = labels[k][p]
		}
		return comps
	}

	switch plan.mode {
	case modeFlatten:
		delim := flattenDelimiter(plan.massage, labels)
		return func(pos []int) (string, error) {
			return plan.parts[0] + strings.Join(fill(pos), delim) + plan.parts[1], nil
		}
	case modeInterleave:
		return func(pos []int) (string, error) {
			var b strings.Builder
			for k, c := range fill(pos) {
				b.WriteString(plan.parts[k])
				b.WriteString(c)
			}
			b.WriteString(plan.parts[len(plan.parts)-1])
			return b.String(), nil
		}
	default:
		return func(pos []int) (string, error) {
			return x.Pattern + "[" + strings.Join(fill(pos), bracketDelim) + "]", nil
		}
	}
}
