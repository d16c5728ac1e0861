package errors

import (
	"fmt"
	"strings"

	"github.com/ShinyHobo/lslib/pkg/stats/ast"
)

// ErrorType categorizes an error encountered during parsing or validation.
type ErrorType string

const (
	// ErrorTypeSyntax marks structural grammar errors: the declaration text
	// does not conform to the grammar. These abort the current declaration.
	ErrorTypeSyntax ErrorType = "syntax"
	// ErrorTypeValue marks semantic value errors: a well-formed field value
	// failed its type-specific rule. These never abort sibling fields.
	ErrorTypeValue ErrorType = "value"
)

// Error is a diagnostic with a source location. Property is set for value
// errors so callers can key diagnostics by field.
type Error struct {
	Type     ErrorType    // Category of error
	Message  string       // Error message
	Location ast.Location // Source location (file, line, column)
	Property string       // Offending property name, when known
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] ", e.Type))
	if e.Property != "" {
		sb.WriteString(fmt.Sprintf("%s: ", e.Property))
	}
	sb.WriteString(e.Message)
	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Location.String()))
	}

	return sb.String()
}

// ErrorList accumulates errors instead of failing on the first one.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{Errors: make([]*Error, 0)}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given parameters.
func (el *ErrorList) AddError(errType ErrorType, message string, location ast.Location) {
	el.Add(&Error{
		Type:     errType,
		Message:  message,
		Location: location,
	})
}

// AddPropertyError creates and adds a value error keyed to a property.
func (el *ErrorList) AddPropertyError(property, message string, location ast.Location) {
	el.Add(&Error{
		Type:     ErrorTypeValue,
		Message:  message,
		Location: location,
		Property: property,
	})
}

// HasErrors returns true if the list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// ByType returns all errors of the given type.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// Error implements the error interface, formatting all accumulated errors.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d error(s):\n", el.Count()))
	for _, err := range el.Errors {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToError returns nil if the list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
