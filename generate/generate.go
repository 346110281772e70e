// SPDX-License-Identifier: MIT
// Package: varnames/generate
//
// generate.go — one round trip through an external base constructor.
//
// Design contract (strict):
//   • Expand specs → call base once with all names → reconstruct.
//   • base must return exactly one generator per name, in name order; any
//     other count is reported as reshape.ErrShapeMismatch.
//   • Errors from base are wrapped with %w and returned untouched otherwise.
//   • Progress is logged at debug level, contract violations at warn; the
//     default logger is a no-op.

package generate

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/varnames/naming"
	"github.com/katalvlaran/varnames/reshape"
	"github.com/katalvlaran/varnames/shape"
)

// ErrNilBase indicates Generate was called without a base constructor.
var ErrNilBase = errors.New("generate: nil base constructor")

// Base is the external collaborator: it builds an object (a ring, a field,
// ...) from an ordered list of variable names and returns one generator per
// name in the same order.
type Base[O, G any] func(names []string) (O, []G, error)

// Result is the outcome of Generate.
type Result[O, G any] struct {
	// Object is what Base built.
	Object O
	// Names is the flat expansion handed to Base.
	Names []string
	// Gens holds one array per spec: rank 0 for Single, the spec's dims otherwise.
	Gens []*shape.Array[G]
}

// Generate expands specs, calls base with the names and reshapes its
// generators into the specs' shapes.
//
// Errors:
//   - naming.ErrSpec family from expansion;
//   - base errors, wrapped with "generate: base: %w";
//   - reshape.ErrShapeMismatch when base returns the wrong number of generators.
//
// Complexity: O(N) plus the cost of base for N names.
func Generate[O, G any](base Base[O, G], specs []naming.Spec, opts ...Option) (Result[O, G], error) {
	var res Result[O, G]
	if base == nil {
		return res, ErrNilBase
	}
	cfg := newConfig(opts...)
	log := cfg.logger

	names, err := naming.Expand(specs, cfg.expandOpts...)
	if err != nil {
		return res, fmt.Errorf("generate: %w", err)
	}
	log.Debug("expanded naming specs", zap.Int("specs", len(specs)), zap.Int("names", len(names)))

	obj, gens, err := base(names)
	if err != nil {
		return res, fmt.Errorf("generate: base: %w", err)
	}
	if len(gens) != len(names) {
		log.Warn("base constructor broke the one-generator-per-name contract",
			zap.Int("names", len(names)), zap.Int("generators", len(gens)))
		return res, fmt.Errorf("generate: %d names but %d generators: %w", len(names), len(gens), reshape.ErrShapeMismatch)
	}

	shaped, err := reshape.Reconstruct(gens, specs)
	if err != nil {
		return res, fmt.Errorf("generate: %w", err)
	}
	log.Debug("reconstructed generator shapes", zap.Int("arrays", len(shaped)))

	res.Object, res.Names, res.Gens = obj, names, shaped
	return res, nil
}
