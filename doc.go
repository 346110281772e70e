// Package varnames turns terse naming specifications into ordered lists of
// symbolic variable names, and turns the objects an algebraic constructor
// builds from those names back into the shapes the specs describe.
//
// 🚀 What is varnames?
//
//	A small, deterministic toolkit for the "name the generators" step of
//	building polynomial rings, power series rings and similar objects:
//		• naming:   Single, Explicit and Indexed specs, axes and label schemes
//		• naming:   Expand (specs → flat names) and Parse (textual grammar)
//		• reshape:  Reconstruct (flat values → one array per spec)
//		• shape:    generic row-major N-dimensional arrays
//		• generate: Expand → external base constructor → Reconstruct
//		• polyring: a minimal named polynomial ring usable as a base
//		• specfile: YAML spec documents, loaded concurrently
//
// ✨ Guarantees
//
//   - Deterministic order: specs in input order, Indexed tuples row-major
//     (first axis slowest, last axis fastest).
//   - Round trip: Flatten(Reconstruct(flat, specs)) == flat whenever
//     len(flat) == len(Expand(specs)).
//   - Disjoint error families: malformed specs wrap naming.ErrSpec, count
//     mismatches wrap reshape.ErrShapeMismatch.
//   - Atomic: a failed Expand or Reconstruct returns no partial output.
//
// Quick look:
//
//	specs := []naming.Spec{
//		naming.Vector("a", "b"),
//		naming.Pattern("x#", naming.Range(1, 1), naming.Range(1, 2)),
//		naming.Pattern("y#", naming.Range(1, 2)),
//		naming.Name("z"),
//	}
//	names, _ := naming.Expand(specs) // [a b x11 x12 y1 y2 z]
//	res, _ := generate.Generate(polyring.Base("QQ"), specs)
//	// res.Gens: [a, b] (2), [[x11, x12]] (1×2), [y1, y2] (2), z (scalar)
//
// The varnames command (cmd/varnames) exposes expand, shape and ring
// subcommands over the same packages.
package varnames
