// Package checks provides ready-made constraints for the contract
// engine, grouped by family: numeric comparisons, string shape, and
// common formats (e-mail, UUID).
//
// Every helper returns a contract.Constraint with a generated violation
// message; chain WithMessage to replace it. Argument values reach the
// engine as `any`, so the numeric helpers coerce across the built-in
// integer and float types and fail the constraint for anything else.
//
//	wrapped := contract.MustEnsureArgs(fn, []contract.Rule{
//	    contract.Arg("age", checks.AtLeast(18)),
//	    contract.Arg("email", checks.ValidEmail()),
//	})
package checks
