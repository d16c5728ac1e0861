// Package errors provides diagnostic types for stat parsing and validation.
//
// Two error classes exist. Syntax errors mean the declaration text does not
// conform to the grammar; they carry the offending (or last-scanned) source
// location and abort the current declaration. Value errors mean a
// syntactically well-formed field value failed its type-specific rule; they
// are reported per field and never abort sibling fields.
//
// Configuration errors (unknown field type, missing enumeration) are not
// represented here: they indicate schema/factory drift, and the validator
// factory panics on them instead of returning a result.
//
// # Basic Usage
//
// Accumulate multiple errors:
//
//	errList := errors.NewErrorList()
//	errList.AddError(errors.ErrorTypeSyntax, "unterminated string", loc)
//	errList.AddPropertyError("Damage", "Malformed dice roll", loc)
//
//	if errList.HasErrors() {
//	    return errList.ToError()
//	}
package errors
