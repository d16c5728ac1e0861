package ast

// Value is a property value inside a stat declaration: a scalar string,
// an ordered list, or a nested ordered map. The set is closed; the parser
// produces no other shapes.
type Value interface {
	statValue()
}

// Scalar is a plain string value.
type Scalar string

func (Scalar) statValue() {}

// List is an ordered sequence of values, built by repeated collection appends.
type List []Value

func (List) statValue() {}

func (*PropertyMap) statValue() {}

// PropertyMap is an ordered string-keyed map of values. Keys are unique;
// writing an existing key replaces the value but keeps the key's original
// position. Iteration order is insertion order.
type PropertyMap struct {
	keys   []string
	values map[string]Value
}

// NewPropertyMap creates an empty ordered map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{values: make(map[string]Value)}
}

// Set writes key to value. Last write wins.
func (m *PropertyMap) Set(key string, value Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it exists.
func (m *PropertyMap) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has returns true if key exists.
func (m *PropertyMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (m *PropertyMap) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *PropertyMap) Len() int {
	return len(m.keys)
}
