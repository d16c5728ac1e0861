package schema

// Enumeration is an ordered list of permitted string values for an enum
// field, plus a value-to-index lookup. Index 0 is the implicit default used
// when an enum field is supplied an empty value.
type Enumeration struct {
	Name    string
	Values  []string
	indexOf map[string]int
}

// NewEnumeration creates an enumeration from its ordered value list.
func NewEnumeration(name string, values []string) *Enumeration {
	e := &Enumeration{
		Name:    name,
		Values:  values,
		indexOf: make(map[string]int, len(values)),
	}
	for i, v := range values {
		if _, ok := e.indexOf[v]; !ok {
			e.indexOf[v] = i
		}
	}
	return e
}

// IndexOf returns the position of value in the enumeration, or -1 if it is
// not a member.
func (e *Enumeration) IndexOf(value string) int {
	if i, ok := e.indexOf[value]; ok {
		return i
	}
	return -1
}

// Contains returns true if value is a member of the enumeration.
func (e *Enumeration) Contains(value string) bool {
	_, ok := e.indexOf[value]
	return ok
}

// ReferenceConstraint names one permitted target stat-type for a
// cross-reference field.
type ReferenceConstraint struct {
	StatType string
}

// Field is the schema metadata for one declared stat field: its name, its
// declared type name, an optional explicit enumeration, and the reference
// constraints for reference-typed fields.
type Field struct {
	Name        string
	Type        string
	EnumType    *Enumeration
	ReferenceTo []ReferenceConstraint
}

// Repository holds all schema definitions: named enumerations and field
// metadata. It must be fully populated before any validator is constructed,
// and is treated as read-only afterwards (safe for concurrent lookups).
type Repository struct {
	enumerations map[string]*Enumeration
	fields       map[string]*Field
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		enumerations: make(map[string]*Enumeration),
		fields:       make(map[string]*Field),
	}
}

// AddEnumeration registers an enumeration, replacing any previous one with
// the same name.
func (r *Repository) AddEnumeration(e *Enumeration) {
	r.enumerations[e.Name] = e
}

// AddField registers a field, replacing any previous one with the same name.
func (r *Repository) AddField(f *Field) {
	r.fields[f.Name] = f
}

// Enumeration returns the named enumeration, or nil if none is registered.
func (r *Repository) Enumeration(name string) *Enumeration {
	return r.enumerations[name]
}

// Field returns the named field's metadata, or nil if none is registered.
func (r *Repository) Field(name string) *Field {
	return r.fields[name]
}
