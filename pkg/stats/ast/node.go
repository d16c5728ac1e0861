package ast

// Node is one parsed item inside a declaration body, consumed by
// Declaration.Merge. The set is closed: Property, Element, and a nested
// *Declaration are the only kinds the grammar produces.
type Node interface {
	statNode()
}

// Property is a single `data "Key" "Value"` assignment (or one of the
// keyword shorthands that desugar to it). Transient: it is consumed
// immediately into a declaration's property map.
type Property struct {
	Key      string
	Value    string
	Location Location // zero value when the property has no explicit location
}

func (*Property) statNode() {}

// Element is one appended item of a named collection. Its value may itself
// be a scalar, a list, or a nested map.
type Element struct {
	Collection string
	Value      Value
}

func (*Element) statNode() {}

func (*Declaration) statNode() {}
