package ast

import "fmt"

// Location represents the source span of a token or declaration in a stat file.
// It enables precise error reporting with file, line, and column information.
// Locations are created by the lexer at token boundaries and never mutated.
type Location struct {
	File      string // Path or label of the source buffer
	StartLine int    // First line of the span (1-based)
	StartCol  int    // First column of the span (1-based)
	EndLine   int    // Last line of the span
	EndCol    int    // Column just past the span
}

// String returns a human-readable representation of the location.
// Format: "file:line:column"
func (l Location) String() string {
	if l.File == "" && l.StartLine == 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// IsValid returns true if the location carries real line information.
func (l Location) IsValid() bool {
	return l.StartLine > 0
}
