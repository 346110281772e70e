// Package reshape turns a flat sequence of produced values back into the
// shapes implied by the naming specs that produced their names.
//
// Round trip:
//
//	names, _ := naming.Expand(specs)
//	ring, gens := base(names)             // one generator per name, same order
//	shaped, _ := reshape.Reconstruct(gens, specs)
//
// shaped[i] is a rank-0 array for a Single spec, an array with the spec's
// Shape for Explicit, and an array with dims [|axis_1|, ..., |axis_n|] for
// Indexed. Flatten(shaped) reproduces gens exactly.
//
// Errors:
//
//   - ErrShapeMismatch (ErrUnderflow, ErrLeftover): the flat sequence has
//     the wrong length for specs. This is a caller bug.
//   - naming.ErrSpec family: a spec itself is malformed.
//
// Concurrency: Reconstruct owns its Cursor; independent calls may run in
// parallel without coordination.
package reshape
