package ast

import "fmt"

// Declaration is one stat record: an ordered property map plus the locations
// of directly declared properties. Declarations are built incrementally by
// repeated Merge calls while the parser holds them exclusively, and become
// immutable once Freeze is called.
type Declaration struct {
	// Kind is the header identifier ("entry", "ItemCombination", ...).
	// It drives combo folding in the parser and is not itself a property.
	Kind string

	properties *PropertyMap

	// propertyLocations maps property names to where they were declared.
	// Only properties with an explicit per-property location appear here;
	// every key present must also exist in properties.
	propertyLocations map[string]Location

	// Location is the declaration's own source span, if recorded.
	Location Location

	frozen bool
}

// NewDeclaration creates an empty declaration of the given kind.
func NewDeclaration(kind string, loc Location) *Declaration {
	return &Declaration{
		Kind:              kind,
		properties:        NewPropertyMap(),
		propertyLocations: make(map[string]Location),
		Location:          loc,
	}
}

// Properties returns the ordered property map.
func (d *Declaration) Properties() *PropertyMap {
	return d.properties
}

// PropertyLocation returns the location where the named property was
// declared, if one was recorded.
func (d *Declaration) PropertyLocation(name string) (Location, bool) {
	loc, ok := d.propertyLocations[name]
	return loc, ok
}

// Merge folds one parsed node into the declaration. Three node kinds are
// legal:
//   - *Property: sets properties[key]; records the property's location if
//     it has one.
//   - *Element: appends the element's value to the named collection,
//     seeding an empty list on first use.
//   - *Declaration: copies every property (and every recorded property
//     location) of the nested declaration into this one, overwriting on
//     key collision.
//
// Any other node kind, or merging into a frozen declaration, is a parser
// bug and panics.
func (d *Declaration) Merge(n Node) {
	if d.frozen {
		panic("ast: merge into frozen declaration")
	}

	switch node := n.(type) {
	case *Property:
		d.properties.Set(node.Key, Scalar(node.Value))
		if node.Location.IsValid() {
			d.propertyLocations[node.Key] = node.Location
		}

	case *Element:
		existing, ok := d.properties.Get(node.Collection)
		if !ok {
			existing = List(nil)
		}
		list, ok := existing.(List)
		if !ok {
			list = List(nil)
		}
		d.properties.Set(node.Collection, append(list, node.Value))

	case *Declaration:
		for _, key := range node.properties.Keys() {
			value, _ := node.properties.Get(key)
			d.properties.Set(key, value)
		}
		for key, loc := range node.propertyLocations {
			d.propertyLocations[key] = loc
		}

	default:
		panic(fmt.Sprintf("ast: cannot merge node of type %T", n))
	}
}

// MergeItemCombo layers a result declaration's properties onto a combo
// declaration, preserving the combo's own identity: every result property is
// copied except "EntityType" and "Name", which keep the combo's values.
func MergeItemCombo(combo, result *Declaration) {
	if combo.frozen {
		panic("ast: merge into frozen declaration")
	}

	for _, key := range result.properties.Keys() {
		if key == "EntityType" || key == "Name" {
			continue
		}
		value, _ := result.properties.Get(key)
		combo.properties.Set(key, value)
		if loc, ok := result.propertyLocations[key]; ok {
			combo.propertyLocations[key] = loc
		}
	}
}

// Freeze marks the declaration immutable. Further Merge calls panic.
func (d *Declaration) Freeze() {
	d.frozen = true
}

// Declarations is the ordered result of parsing one stat file.
// Append-only during parse; every appended declaration is frozen first.
type Declarations struct {
	decls []*Declaration
}

// Append finalizes a declaration and adds it to the sequence.
func (ds *Declarations) Append(d *Declaration) {
	d.Freeze()
	ds.decls = append(ds.decls, d)
}

// Len returns the number of declarations.
func (ds *Declarations) Len() int {
	return len(ds.decls)
}

// At returns the declaration at index i.
func (ds *Declarations) At(i int) *Declaration {
	return ds.decls[i]
}

// All returns the declarations in file order. The returned slice is shared;
// callers must not modify it.
func (ds *Declarations) All() []*Declaration {
	return ds.decls
}
