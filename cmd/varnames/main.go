// Command varnames expands naming specs into variable names and shows how
// generated objects are arranged back into the specs' shapes.
//
// Usage:
//
//	varnames expand "x# => 1:2, 1:3" "[a, b]" z
//	varnames shape -f specs.yaml
//	varnames ring --coeff QQ "x# => 1:3" y
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries flag values and the logger shared by all subcommands.
type app struct {
	verbose  bool
	files    []string
	maxNames int
	unique   bool
	coeff    string

	logger *zap.Logger
}

// newRootCmd builds the command tree around a fresh app.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "varnames",
		Short: "Expand variable naming specs and reshape generated objects",
		Long: `varnames turns terse naming specs into ordered variable names.

Spec grammar:
  z                       one name
  [a, b] / [a b; c d]     explicit vector / matrix of names
  "x# => 1:2, 1:3"        pattern over the product of axes (x11, x12, ...)

Placeholders: '#' flattens sanitized indices, '@' flattens them verbatim,
no placeholder renders x[i,j], '%' formats the indices printf-style.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringSliceVarP(&a.files, "file", "f", nil, "YAML spec document(s); specs from files come before arguments")
	pf.IntVar(&a.maxNames, "max-names", 0, "cap the number of generated names (0 = library default)")
	pf.BoolVar(&a.unique, "unique", false, "reject duplicate generated names")

	root.AddCommand(newExpandCmd(a), newShapeCmd(a), newRingCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
