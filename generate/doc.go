// Package generate drives one naming round trip against an external base
// constructor: naming.Expand → Base(names) → reshape.Reconstruct.
//
// The base constructor is anything with the shape
//
//	func(names []string) (Object, []Generator, error)
//
// such as polyring.Base. Generate checks that it returned exactly one
// generator per name before reshaping them.
//
// Options:
//
//   - WithLogger(*zap.Logger): debug logging of counts (default: no-op).
//   - WithExpandOptions(...naming.Option): forwarded to naming.Expand.
package generate
