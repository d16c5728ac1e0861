// Package validators maps declared stat fields to typed value validators
// and applies them to raw field text.
//
// The validator set is closed: each Validator carries a Kind and dispatch
// happens through one exhaustive switch in Validate. The Factory selects
// the right variant for a schema field using a fixed precedence: the
// field-name override table first, then enumeration resolution, then
// type-name dispatch. The override table and the flag-like enumeration allowlist are
// static data tables in tables.go: content decisions, kept apart from the
// dispatch logic so they can be audited and extended independently.
//
// Every validator takes a raw string and returns a Result (success flag,
// typed value, failure message). Empty input is a legal "unset" default for
// most scalar kinds; the dice-roll and use-costs validators instead return
// early on empty input without marking the result successful, and that
// asymmetry is preserved deliberately (downstream tooling treats empty
// dice/use-cost fields as unvalidated).
//
// Configuration problems (an unknown type name, an enumeration missing
// from the schema) panic: they are programmer errors, not bad input.
package validators
