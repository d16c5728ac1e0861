package expression

import (
	"fmt"
	"strings"
)

// Validate checks value against the embedded expression grammar variant
// named by tag (TagProperties, TagRequirements, or TagDescriptionParams),
// with typ selecting the active production set.
//
// The value is wrapped in a synthetic buffer `__TYPE_<tag>__ <value>` before
// parsing. When the grammar fails, the buffer column is remapped into the
// caller's value coordinates: the prefix is 10 literal characters plus the
// tag, so a failure at buffer offset 10+len(tag)+k reports column k+1.
//
// A structurally successful parse can still fail: semantic findings
// collected during the parse are joined with "; " and returned as the
// error. Only a fully clean parse returns the expression.
func Validate(value, tag string, typ Type) (*Expression, error) {
	buffer := "__TYPE_" + tag + "__ " + strings.TrimRight(value, " \t\r\n")

	var semantic []string
	expr, err := parseBuffer(buffer, typ, func(msg string) {
		semantic = append(semantic, msg)
	})
	if err != nil {
		syntaxErr, ok := err.(*SyntaxError)
		if !ok {
			return nil, err
		}
		column := syntaxErr.Column - (10 + len(tag)) + 1
		return nil, fmt.Errorf("syntax error at or near character %d: %s", column, syntaxErr.Message)
	}

	if len(semantic) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(semantic, "; "))
	}
	return expr, nil
}
