package generate

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/varnames/naming"
)

// Option customizes Generate.
type Option func(*config)

// config holds the resolved Generate knobs.
type config struct {
	logger     *zap.Logger
	expandOpts []naming.Option
}

// WithLogger routes debug output to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generate: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithExpandOptions forwards options to naming.Expand. Repeated use appends.
func WithExpandOptions(opts ...naming.Option) Option {
	return func(c *config) {
		c.expandOpts = append(c.expandOpts, opts...)
	}
}

// newConfig applies opts over a silent default logger.
func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
