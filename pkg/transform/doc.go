// Package transform provides ready-made argument transformations for
// the contract engine, plus small pipeline helpers for composing them.
//
// Argument values cross the engine boundary as `any`, so the concrete
// helpers here are written against `any` and leave values of an
// unexpected type untouched. The Strings, Ints and Floats adapters lift
// an ordinary typed function into that shape:
//
//	wrapped := contract.MustTransformArgs(fn, []contract.Transform{
//	    contract.Map("name", transform.Chain(transform.Trim, transform.Lower)),
//	    contract.Map("count", transform.Ints(func(n int) int { return n * n })),
//	})
package transform
