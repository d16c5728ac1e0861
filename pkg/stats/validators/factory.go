package validators

import (
	"fmt"

	"github.com/ShinyHobo/lslib/pkg/stats/expression"
	"github.com/ShinyHobo/lslib/pkg/stats/schema"
)

// Factory constructs the correct validator for a schema field. Selection
// precedence is fixed: the field-name override table first, then
// enumeration resolution, then the type-name dispatch.
//
// An unrecognized type name or a missing enumeration is a configuration
// error (the schema and the factory have drifted out of sync) and panics
// rather than returning a per-value failure.
type Factory struct {
	repo *schema.Repository
	refs ReferenceValidator
}

// NewFactory creates a factory over a fully populated schema repository and
// the injected reference validator.
func NewFactory(repo *schema.Repository, refs ReferenceValidator) *Factory {
	return &Factory{repo: repo, refs: refs}
}

// CreateValidator selects and constructs the validator for field.
func (f *Factory) CreateValidator(field *schema.Field) *Validator {
	// 1. Field-name overrides beat any type-based rule.
	if entry, ok := fieldOverrides[field.Name]; ok {
		return f.fromOverride(entry)
	}

	// 2. Enumeration rule: an explicit enum reference, or a schema
	// enumeration whose name equals the type name and which has at least
	// one value.
	enum := field.EnumType
	if enum == nil {
		if e := f.repo.Enumeration(field.Type); e != nil && len(e.Values) > 0 {
			enum = e
		}
	}
	if enum != nil {
		if flagEnumTypes[field.Type] {
			return NewMultiValueEnum(enum)
		}
		return NewEnum(enum)
	}

	// 3. Type-name dispatch.
	switch field.Type {
	case "Boolean":
		return NewBoolean()
	case "ConstantInt", "Int":
		return NewInteger()
	case "ConstantFloat", "Float":
		return NewFloat()
	case "String", "FixedString", "TranslatedString":
		return NewString()
	case "Guid":
		return NewUUID()
	case "Requirements", "MemorizationRequirements":
		return NewExpression(expression.TagRequirements, expression.TypeFunctor)
	case "StatsFunctors":
		return NewExpression(expression.TagProperties, expression.TypeFunctor)
	case "Conditions", "RollConditions":
		return NewCondition()
	case "UseCost":
		return NewUseCosts(f.refs)
	case "StatReference":
		return f.CreateReferenceValidator(field.ReferenceTo)
	case "AllOrDamageType":
		return NewAnyOf("",
			NewEnum(f.enum("All")),
			NewEnum(f.enum("Damage Type")))
	case "AbilityOrLevel":
		return NewAnyOf("expected an ability or a level",
			NewEnum(f.enum("Ability")),
			NewInteger())
	case "StatusIdOrGroup":
		return NewAnyOf("",
			NewEnum(f.enum("StatusGroupFlags")),
			NewReference(f.refs, []string{"StatusData"}))
	default:
		panic(fmt.Sprintf("validators: no validator defined for field type %q (schema and factory out of sync)", field.Type))
	}
}

func (f *Factory) fromOverride(entry overrideEntry) *Validator {
	switch entry.kind {
	case KindExpression:
		return NewExpression(entry.tag, entry.exprType)
	case KindUUID:
		return NewUUID()
	case KindDiceRoll:
		return NewDiceRoll()
	case KindUseCosts:
		return NewUseCosts(f.refs)
	case KindCondition:
		return NewCondition()
	default:
		panic(fmt.Sprintf("validators: override table names kind %d with no construction rule", entry.kind))
	}
}

// CreateReferenceValidator builds a stat-reference validator bound to
// explicit constraints, for schema-level reference fields created directly
// rather than through CreateValidator.
func (f *Factory) CreateReferenceValidator(constraints []schema.ReferenceConstraint) *Validator {
	statTypes := make([]string, 0, len(constraints))
	for _, c := range constraints {
		statTypes = append(statTypes, c.StatType)
	}
	return NewReference(f.refs, statTypes)
}

// enum fetches a named enumeration the factory depends on. Absence is
// schema/factory drift, not bad input.
func (f *Factory) enum(name string) *schema.Enumeration {
	e := f.repo.Enumeration(name)
	if e == nil {
		panic(fmt.Sprintf("validators: enumeration %q missing from schema", name))
	}
	return e
}
