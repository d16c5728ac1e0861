// Package expression validates the expression sub-languages embedded in
// stat field values: boost lists, stats functor lists, description
// parameters, and Lua-like condition expressions.
//
// Expressions are validated, never evaluated. Validate wraps the field
// value in a synthetic tagged buffer, runs the embedded grammar, and remaps
// error columns back into the caller's value coordinates, so diagnostics
// point at the original text the author wrote. ValidateCondition covers the
// simpler condition grammar, whose only external contract is pass/fail plus
// an error column.
package expression
