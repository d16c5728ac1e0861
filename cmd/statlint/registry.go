package main

import (
	"github.com/ShinyHobo/lslib/pkg/stats/ast"
)

// registry is the reference universe built from the linted files
// themselves: every declaration with a Name and EntityType becomes a known
// entity. It backs both reference lookups and GUID-resource lookups
// (action resources are declared as stat entries too).
type registry struct {
	entities map[string]string // name -> entity type
}

func newRegistry() *registry {
	return &registry{entities: make(map[string]string)}
}

// collect records every named declaration in decls.
func (r *registry) collect(decls *ast.Declarations) {
	for _, decl := range decls.All() {
		name, ok := decl.Properties().Get("Name")
		if !ok {
			continue
		}
		entityType, _ := decl.Properties().Get("EntityType")

		nameText, ok := name.(ast.Scalar)
		if !ok {
			continue
		}
		typeText, _ := entityType.(ast.Scalar)
		r.entities[string(nameText)] = string(typeText)
	}
}

func (r *registry) IsValidReference(name, statType string) bool {
	return r.entities[name] == statType
}

func (r *registry) IsValidGuidResource(name, resourceType string) bool {
	return r.entities[name] == resourceType
}
