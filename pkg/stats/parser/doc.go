// Package parser implements the stat declaration grammar.
//
// Input is plain declaration text of the form:
//
//	new entry "Shortsword"
//	type "Weapon"
//	using "_BaseWeapon"
//	data "Damage" "1d6"
//	add "Tags" "FINESSE"
//	with {
//	    data "DamageType" "Slashing"
//	}
//
// The lexer recognizes raw `data "KEY" "VALUE"` lines with a dedicated rule
// that captures key and value in a single token, decodes standard backslash
// escapes in string literals, and tracks line/column so every token carries
// a source location. Line comments start with //.
//
// The grammar builds one ast.Declaration per `new` header. `type` and
// `using` desugar to the EntityType and Using properties, `add` appends to a
// named collection, and `with { ... }` parses a nested declaration that is
// merged into its parent. When an ItemCombinationResult declaration
// immediately follows an ItemCombination, the parser folds it into the combo
// with ast.MergeItemCombo instead of appending it.
//
// Structural errors abort the declaration they occur in and are accumulated
// in an errors.ErrorList; parsing resumes at the next `new` header.
package parser
