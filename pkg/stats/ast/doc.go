// Package ast provides the syntax tree for parsed stat declaration files.
//
// A stat file parses into an ordered Declarations sequence. Each Declaration
// is an ordered property map (name to scalar, list, or nested map) plus the
// source locations of directly declared properties. All nodes preserve
// location information for precise error reporting.
//
// # Core Types
//
// Declarations: Ordered sequence of declarations from one file
//
// Declaration: One stat record, built by repeated Merge calls during parsing
// and frozen before it is appended to Declarations
//
// Property, Element: Transient nodes consumed by Declaration.Merge
//
// Value: Closed value set (Scalar, List, *PropertyMap)
//
// Location: Source span (file, line, column)
//
// # Basic Usage
//
// Inspect a parsed declaration:
//
//	for _, decl := range decls.All() {
//	    for _, key := range decl.Properties().Keys() {
//	        value, _ := decl.Properties().Get(key)
//	        fmt.Println(key, value)
//	    }
//	}
package ast
