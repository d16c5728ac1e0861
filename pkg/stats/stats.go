// Package stats is the front end of the game-data compiler: it parses stat
// declaration text into typed declarations and validates every declared
// field value against the schema.
package stats

import (
	"github.com/ShinyHobo/lslib/pkg/stats/ast"
	statErrors "github.com/ShinyHobo/lslib/pkg/stats/errors"
	"github.com/ShinyHobo/lslib/pkg/stats/parser"
	"github.com/ShinyHobo/lslib/pkg/stats/schema"
	"github.com/ShinyHobo/lslib/pkg/stats/validators"
)

// Parse parses stat declaration text without validating field values.
// The file argument labels source locations only; no I/O happens here.
func Parse(input, file string) (*ast.Declarations, error) {
	p := parser.NewParser()
	return p.Parse(input, file)
}

// ValidateDeclarations validates every scalar property of every declaration
// against its schema field. Each field is validated independently: a failing
// value never aborts its siblings. The returned error, if non-nil, is a
// *errors.ErrorList of per-field diagnostics keyed to property locations.
//
// Properties without a schema field, and list- or map-valued properties
// (collections, which carry no field type of their own), are skipped.
func ValidateDeclarations(decls *ast.Declarations, repo *schema.Repository, refs validators.ReferenceValidator) error {
	factory := validators.NewFactory(repo, refs)
	errs := statErrors.NewErrorList()

	// Fields repeat across declarations; one validator per field is enough.
	cache := make(map[string]*validators.Validator)

	for _, decl := range decls.All() {
		for _, key := range decl.Properties().Keys() {
			value, _ := decl.Properties().Get(key)
			scalar, ok := value.(ast.Scalar)
			if !ok {
				continue
			}
			field := repo.Field(key)
			if field == nil {
				continue
			}

			validator, ok := cache[key]
			if !ok {
				validator = factory.CreateValidator(field)
				cache[key] = validator
			}

			result := validator.Validate(string(scalar))
			if result.OK {
				continue
			}
			// No message means unvalidated, not failed: the dice-roll and
			// use-costs validators return early on empty input.
			if result.Message == "" {
				continue
			}

			loc, hasLoc := decl.PropertyLocation(key)
			if !hasLoc {
				loc = decl.Location
			}
			errs.AddPropertyError(key, result.Message, loc)
		}
	}

	return errs.ToError()
}

// ParseAndValidate is a convenience function that parses declaration text
// and validates every field. Structural and value diagnostics are combined
// into one *errors.ErrorList.
func ParseAndValidate(input, file string, repo *schema.Repository, refs validators.ReferenceValidator) (*ast.Declarations, error) {
	decls, parseErr := Parse(input, file)

	errs := statErrors.NewErrorList()
	if parseErr != nil {
		if list, ok := parseErr.(*statErrors.ErrorList); ok {
			errs.Errors = append(errs.Errors, list.Errors...)
		} else {
			return decls, parseErr
		}
	}

	if valErr := ValidateDeclarations(decls, repo, refs); valErr != nil {
		if list, ok := valErr.(*statErrors.ErrorList); ok {
			errs.Errors = append(errs.Errors, list.Errors...)
		}
	}

	return decls, errs.ToError()
}
