// SPDX-License-Identifier: MIT
// Package: varnames/naming
//
// options.go — functional options for Expand.
//
// Contract (strict):
//   • Options are functional (type Option func(*expandConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Expand itself never panics.
//   • Later options override earlier ones.

package naming

import "fmt"

// Option customizes Expand by mutating an expandConfig before expansion begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*expandConfig)

// WithMaxNames caps the total number of names one Expand call may produce.
// Panics if n < 1.
func WithMaxNames(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("naming: WithMaxNames(%d)", n))
	}
	return func(c *expandConfig) {
		c.maxNames = n
	}
}

// WithUniqueNames makes Expand reject duplicate names across all specs.
func WithUniqueNames() Option {
	return func(c *expandConfig) {
		c.unique = true
	}
}

// WithSanitizer replaces the '#' component sanitizer.
// Panics on nil.
func WithSanitizer(fn func(string) string) Option {
	if fn == nil {
		panic("naming: WithSanitizer(nil)")
	}
	return func(c *expandConfig) {
		c.sanitize = fn
	}
}
