package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// definitionsFile is the YAML shape of a schema definition document.
type definitionsFile struct {
	Enumerations map[string][]string       `yaml:"enumerations"`
	Fields       map[string]fieldDefinition `yaml:"fields"`
}

type fieldDefinition struct {
	Type        string   `yaml:"type"`
	Enum        string   `yaml:"enum"`
	ReferenceTo []string `yaml:"reference_to"`
}

// LoadBytes parses schema definition YAML and merges it into the repository.
// Later definitions replace earlier ones with the same name, so multiple
// documents can be layered (base game definitions extended by patches).
// The caller is responsible for reading the bytes; this package does no I/O.
func (r *Repository) LoadBytes(data []byte) error {
	var file definitionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("schema definitions: %w", err)
	}

	for name, values := range file.Enumerations {
		r.AddEnumeration(NewEnumeration(name, values))
	}

	for name, def := range file.Fields {
		if def.Type == "" {
			return fmt.Errorf("schema definitions: field %q has no type", name)
		}
		field := &Field{
			Name: name,
			Type: def.Type,
		}
		if def.Enum != "" {
			enum := r.Enumeration(def.Enum)
			if enum == nil {
				return fmt.Errorf("schema definitions: field %q references unknown enumeration %q", name, def.Enum)
			}
			field.EnumType = enum
		}
		for _, target := range def.ReferenceTo {
			field.ReferenceTo = append(field.ReferenceTo, ReferenceConstraint{StatType: target})
		}
		r.AddField(field)
	}

	return nil
}
