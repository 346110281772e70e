// SPDX-License-Identifier: MIT
// Package: varnames/naming
//
// expand.go — specs to the flat, ordered name list.
//
// Order contract (shared with reshape.Reconstruct):
//   • specs are expanded in input order;
//   • Explicit names keep their stored row-major order;
//   • Indexed tuples enumerate the Cartesian product with the FIRST axis
//     slowest and the LAST axis fastest, so name k of an Indexed spec is the
//     row-major element k of an array with dims [|axis_1|, ..., |axis_n|].
//
// Expansion is atomic: on error no names are returned.

package naming

import (
	"fmt"
	"math"
)

// Expand flattens specs into an ordered list of names.
//
// Errors (all wrap ErrSpec):
//   - ErrNilSpec, ErrEmptyName, ErrBadShape, ErrNoAxes, ErrEmptyAxis, ErrBadAxis — structure;
//   - ErrMixedPlaceholders, ErrPlaceholderCount, ErrFormat — pattern grammar;
//   - ErrTooManyNames, ErrDuplicateName — option limits.
//
// Complexity: O(Σ Len(spec) · L) time where L is the rendered name length.
func Expand(specs []Spec, opts ...Option) ([]string, error) {
	cfg := newExpandConfig(opts...)

	// Stage 1: validate structure and size before rendering anything.
	total, err := countNames(specs, cfg.maxNames)
	if err != nil {
		return nil, err
	}

	// Stage 2: render every spec in order.
	out := make([]string, 0, total)
	for pos, s := range specs {
		switch s := resolve(s).(type) {
		case Single:
			out = append(out, s.Name)
		case Explicit:
			out = append(out, s.Names...)
		case Indexed:
			if out, err = appendIndexed(out, s, cfg); err != nil {
				return nil, specErrorf(pos, err, "indexed %q", s.Pattern)
			}
		}
	}

	// Stage 3: optional uniqueness across the whole expansion.
	if cfg.unique {
		seen := make(map[string]int, len(out))
		for i, name := range out {
			if j, dup := seen[name]; dup {
				return nil, fmt.Errorf("names %d and %d are both %q: %w", j, i, name, ErrDuplicateName)
			}
			seen[name] = i
		}
	}

	return out, nil
}

// ExpandOne expands a single spec.
func ExpandOne(s Spec, opts ...Option) ([]string, error) {
	return Expand([]Spec{s}, opts...)
}

// Cardinality returns Σ Len(spec) after validating every spec, without
// rendering names. It equals len(Expand(specs)) whenever Expand succeeds.
func Cardinality(specs []Spec) (int, error) {
	return countNames(specs, math.MaxInt)
}

// ValidateAll resolves and validates every spec, attaching its position.
func ValidateAll(specs []Spec) error {
	for pos, s := range specs {
		if err := validateSpec(pos, s); err != nil {
			return err
		}
	}
	return nil
}

// countNames validates specs and sums their lengths, failing once limit is exceeded.
func countNames(specs []Spec, limit int) (int, error) {
	total := 0
	for pos, s := range specs {
		if err := validateSpec(pos, s); err != nil {
			return 0, err
		}
		n, err := boundedLen(resolve(s), limit-total)
		if err != nil {
			return 0, specErrorf(pos, err, "%s spec", s.Kind())
		}
		total += n
	}

	return total, nil
}

// boundedLen returns s.Len() or ErrTooManyNames once it exceeds budget.
// The product is guarded step by step so huge axes cannot overflow int.
func boundedLen(s Spec, budget int) (int, error) {
	n := 1
	for _, d := range s.Dims() {
		if d > 0 && n > budget/d {
			return 0, fmt.Errorf("more than %d names: %w", budget, ErrTooManyNames)
		}
		n *= d
	}
	if n > budget {
		return 0, fmt.Errorf("more than %d names: %w", budget, ErrTooManyNames)
	}

	return n, nil
}

// validateSpec resolves pointers and runs the spec's own validation.
func validateSpec(pos int, s Spec) error {
	r := resolve(s)
	if r == nil {
		return specErrorf(pos, ErrNilSpec, "spec")
	}
	if err := r.Validate(); err != nil {
		return specErrorf(pos, err, "%s spec", r.Kind())
	}
	return nil
}

// resolve dereferences pointer specs so callers may pass either form.
// It returns nil for nil interfaces and nil pointers.
func resolve(s Spec) Spec {
	switch v := s.(type) {
	case nil:
		return nil
	case *Single:
		if v == nil {
			return nil
		}
		return *v
	case *Explicit:
		if v == nil {
			return nil
		}
		return *v
	case *Indexed:
		if v == nil {
			return nil
		}
		return *v
	default:
		return s
	}
}

// Resolve is the exported form of resolve for packages that switch on spec cases.
func Resolve(s Spec) Spec { return resolve(s) }

// appendIndexed renders every tuple of x onto out.
func appendIndexed(out []string, x Indexed, cfg expandConfig) ([]string, error) {
	plan, err := planPattern(x.Pattern, len(x.Axes))
	if err != nil {
		return nil, err
	}
	render := newRenderer(x, plan, cfg)

	dims := x.Dims()
	pos := make([]int, len(dims))
	for {
		name, err := render(pos)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("tuple %v: %w", pos, ErrEmptyName)
		}
		out = append(out, name)
		if !advance(pos, dims) {
			return out, nil
		}
	}
}

// advance steps pos to the next tuple, last axis fastest.
// It returns false after the final tuple.
func advance(pos, dims []int) bool {
	for k := len(pos) - 1; k >= 0; k-- {
		pos[k]++
		if pos[k] < dims[k] {
			return true
		}
		pos[k] = 0
	}
	return false
}
