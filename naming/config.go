// SPDX-License-Identifier: MIT
// Package: varnames/naming
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • maxNames = DefaultMaxNames
//   • unique   = false
//   • sanitize = Sanitize

package naming

// DefaultMaxNames bounds a single expansion unless WithMaxNames says otherwise.
const DefaultMaxNames = 1 << 20

// expandConfig aggregates all knobs used by Expand.
// It is passed by VALUE to the renderers.
type expandConfig struct {
	maxNames int
	unique   bool
	sanitize func(string) string
}

// newExpandConfig applies opts in order on top of the defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newExpandConfig(opts ...Option) expandConfig {
	cfg := expandConfig{
		maxNames: DefaultMaxNames,
		unique:   false,
		sanitize: Sanitize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
