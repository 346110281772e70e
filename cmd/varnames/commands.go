package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/varnames/generate"
	"github.com/katalvlaran/varnames/naming"
	"github.com/katalvlaran/varnames/polyring"
	"github.com/katalvlaran/varnames/reshape"
	"github.com/katalvlaran/varnames/shape"
	"github.com/katalvlaran/varnames/specfile"
)

// errNoSpecs is returned when neither files nor arguments supply a spec.
var errNoSpecs = errors.New("no specs given: pass specs as arguments or with --file")

const defaultCoeff = "QQ"

func newExpandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "expand [spec...]",
		Short: "Print the expanded variable names, one per line",
		Example: `  varnames expand "x# => 0:0, [-1, 3, 10]"
  varnames expand -f specs.yaml`,
		RunE: a.runExpand,
	}
}

func newShapeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shape [spec...]",
		Short: "Print each spec with its dims and its names arranged in that shape",
		RunE:  a.runShape,
	}
}

func newRingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ring [spec...]",
		Short: "Build a polynomial ring over the expanded names and print its shaped generators",
		Example: `  varnames ring --coeff ZZ "x# => 1:2, 1:2" t`,
		RunE: a.runRing,
	}
	cmd.Flags().StringVar(&a.coeff, "coeff", "", "coefficient domain (default: the document's ring, else QQ)")
	return cmd
}

// collect gathers specs from --file documents (first) and arguments (after),
// plus the expansion options implied by documents and flags.
func (a *app) collect(cmd *cobra.Command, args []string) ([]naming.Spec, []naming.Option, string, error) {
	var (
		specs []naming.Spec
		opts  []naming.Option
		ring  string
	)

	if len(a.files) > 0 {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		docs, err := specfile.LoadAll(ctx, a.files...)
		if err != nil {
			return nil, nil, "", err
		}
		for _, d := range docs {
			a.logger.Debug("loaded spec document", zap.String("path", d.Path), zap.Int("specs", len(d.Specs)))
			specs = append(specs, d.NamingSpecs()...)
			opts = append(opts, d.ExpandOptions()...)
			if ring == "" {
				ring = d.Ring
			}
		}
	}

	argSpecs, err := naming.ParseAll(args)
	if err != nil {
		return nil, nil, "", err
	}
	specs = append(specs, argSpecs...)
	if len(specs) == 0 {
		return nil, nil, "", errNoSpecs
	}

	// flags come last so they override document settings
	if a.maxNames > 0 {
		opts = append(opts, naming.WithMaxNames(a.maxNames))
	}
	if a.unique {
		opts = append(opts, naming.WithUniqueNames())
	}

	return specs, opts, ring, nil
}

func (a *app) runExpand(cmd *cobra.Command, args []string) error {
	specs, opts, _, err := a.collect(cmd, args)
	if err != nil {
		return err
	}
	names, err := naming.Expand(specs, opts...)
	if err != nil {
		return err
	}
	a.logger.Debug("expanded", zap.Int("specs", len(specs)), zap.Int("names", len(names)))

	out := cmd.OutOrStdout()
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
	return nil
}

func (a *app) runShape(cmd *cobra.Command, args []string) error {
	specs, opts, _, err := a.collect(cmd, args)
	if err != nil {
		return err
	}
	names, err := naming.Expand(specs, opts...)
	if err != nil {
		return err
	}
	shaped, err := reshape.Reconstruct(names, specs)
	if err != nil {
		return err
	}

	return writeShapes(cmd.OutOrStdout(), specs, shaped)
}

func (a *app) runRing(cmd *cobra.Command, args []string) error {
	specs, opts, docRing, err := a.collect(cmd, args)
	if err != nil {
		return err
	}
	coeff := a.coeff
	if coeff == "" {
		coeff = docRing
	}
	if coeff == "" {
		coeff = defaultCoeff
	}

	res, err := generate.Generate(polyring.Base(coeff), specs,
		generate.WithLogger(a.logger),
		generate.WithExpandOptions(opts...))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Object)
	return writeShapes(out, specs, res.Gens)
}

// writeShapes prints "spec<TAB>dims<TAB>values" per spec.
func writeShapes[T any](w io.Writer, specs []naming.Spec, shaped []*shape.Array[T]) error {
	for i, arr := range shaped {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", specs[i], dimsString(arr.Dims()), arr); err != nil {
			return err
		}
	}
	return nil
}

// dimsString renders dims as "scalar" or "2×3".
func dimsString(dims []int) string {
	if len(dims) == 0 {
		return "scalar"
	}
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "×")
}
