package validators

import (
	"testing"

	"github.com/ShinyHobo/lslib/pkg/stats/schema"
)

func testRepo() *schema.Repository {
	repo := schema.NewRepository()
	repo.AddEnumeration(schema.NewEnumeration("Ability", []string{"Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma"}))
	repo.AddEnumeration(schema.NewEnumeration("Damage Type", []string{"Slashing", "Piercing", "Fire"}))
	repo.AddEnumeration(schema.NewEnumeration("All", []string{"All"}))
	repo.AddEnumeration(schema.NewEnumeration("WeaponFlags", []string{"Finesse", "Light", "Heavy"}))
	repo.AddEnumeration(schema.NewEnumeration("StatusGroupFlags", []string{"SG_Condition", "SG_Incapacitated"}))
	repo.AddEnumeration(schema.NewEnumeration("Empty", nil))
	return repo
}

func field(name, typeName string) *schema.Field {
	return &schema.Field{Name: name, Type: typeName}
}

func TestFactory_NameOverridesBeatTypes(t *testing.T) {
	factory := NewFactory(testRepo(), testRefs())

	// Damage is declared as a plain string in the schema, but the
	// name-override table routes it to the dice-roll validator.
	v := factory.CreateValidator(field("Damage", "String"))
	if v.Kind() != KindDiceRoll {
		t.Errorf("Kind = %v, want KindDiceRoll", v.Kind())
	}

	tests := []struct {
		name string
		want Kind
	}{
		{"Boosts", KindExpression},
		{"BoostsOnEquipOffHand", KindExpression},
		{"DescriptionParams", KindExpression},
		{"TooltipDamage", KindExpression},
		{"TooltipUpcastDescription", KindUUID},
		{"RootTemplate", KindUUID},
		{"VersatileDamage", KindDiceRoll},
		{"UseCosts", KindUseCosts},
		{"TooltipUseCosts", KindUseCosts},
		{"TargetConditions", KindCondition},
	}
	for _, tt := range tests {
		v := factory.CreateValidator(field(tt.name, "String"))
		if v.Kind() != tt.want {
			t.Errorf("CreateValidator(%q).Kind = %v, want %v", tt.name, v.Kind(), tt.want)
		}
	}
}

func TestFactory_ExplicitEnum(t *testing.T) {
	repo := testRepo()
	factory := NewFactory(repo, testRefs())

	f := field("SpellSchool", "FixedString")
	f.EnumType = repo.Enumeration("Ability")

	v := factory.CreateValidator(f)
	if v.Kind() != KindEnum {
		t.Fatalf("Kind = %v, want KindEnum", v.Kind())
	}
	if result := v.Validate("Wisdom"); !result.OK {
		t.Errorf("Validate(\"Wisdom\") failed: %q", result.Message)
	}
}

func TestFactory_EnumLookupByTypeName(t *testing.T) {
	factory := NewFactory(testRepo(), testRefs())

	v := factory.CreateValidator(field("SpellAbility", "Ability"))
	if v.Kind() != KindEnum {
		t.Fatalf("Kind = %v, want KindEnum", v.Kind())
	}
}

func TestFactory_EmptyEnumerationIgnored(t *testing.T) {
	// An enumeration with no values must not capture the field; the type
	// falls through to name dispatch, which does not know "Empty".
	defer func() {
		if recover() == nil {
			t.Error("CreateValidator did not panic for unknown type")
		}
	}()

	factory := NewFactory(testRepo(), testRefs())
	factory.CreateValidator(field("Whatever", "Empty"))
}

func TestFactory_FlagEnumGoesMultiValue(t *testing.T) {
	factory := NewFactory(testRepo(), testRefs())

	v := factory.CreateValidator(field("Properties", "WeaponFlags"))
	if v.Kind() != KindMultiValueEnum {
		t.Fatalf("Kind = %v, want KindMultiValueEnum", v.Kind())
	}
	if result := v.Validate("Finesse;Light"); !result.OK {
		t.Errorf("Validate(\"Finesse;Light\") failed: %q", result.Message)
	}
}

func TestFactory_TypeDispatch(t *testing.T) {
	factory := NewFactory(testRepo(), testRefs())

	tests := []struct {
		typeName string
		want     Kind
	}{
		{"Boolean", KindBoolean},
		{"ConstantInt", KindInteger},
		{"Int", KindInteger},
		{"ConstantFloat", KindFloat},
		{"Float", KindFloat},
		{"String", KindString},
		{"FixedString", KindString},
		{"TranslatedString", KindString},
		{"Guid", KindUUID},
		{"Requirements", KindExpression},
		{"MemorizationRequirements", KindExpression},
		{"StatsFunctors", KindExpression},
		{"Conditions", KindCondition},
		{"RollConditions", KindCondition},
		{"UseCost", KindUseCosts},
		{"StatReference", KindReference},
		{"AllOrDamageType", KindAnyOf},
		{"AbilityOrLevel", KindAnyOf},
		{"StatusIdOrGroup", KindAnyOf},
	}
	for _, tt := range tests {
		v := factory.CreateValidator(field("Field", tt.typeName))
		if v.Kind() != tt.want {
			t.Errorf("CreateValidator(type %q).Kind = %v, want %v", tt.typeName, v.Kind(), tt.want)
		}
	}
}

func TestFactory_AnyOfComposites(t *testing.T) {
	factory := NewFactory(testRepo(), testRefs())

	all := factory.CreateValidator(field("F", "AllOrDamageType"))
	if result := all.Validate("All"); !result.OK {
		t.Errorf("AllOrDamageType(\"All\") failed: %q", result.Message)
	}
	if result := all.Validate("Fire"); !result.OK {
		t.Errorf("AllOrDamageType(\"Fire\") failed: %q", result.Message)
	}
	if result := all.Validate("Sound"); result.OK {
		t.Error("AllOrDamageType(\"Sound\") succeeded, want failure")
	}

	level := factory.CreateValidator(field("F", "AbilityOrLevel"))
	if result := level.Validate("7"); !result.OK {
		t.Errorf("AbilityOrLevel(\"7\") failed: %q", result.Message)
	}
	result := level.Validate("Luck")
	if result.OK {
		t.Fatal("AbilityOrLevel(\"Luck\") succeeded, want failure")
	}
	if result.Message != "expected an ability or a level" {
		t.Errorf("Message = %q, want override message", result.Message)
	}

	status := factory.CreateValidator(field("F", "StatusIdOrGroup"))
	if result := status.Validate("SG_Condition"); !result.OK {
		t.Errorf("StatusIdOrGroup(\"SG_Condition\") failed: %q", result.Message)
	}
	if result := status.Validate("BURNING"); !result.OK {
		t.Errorf("StatusIdOrGroup(\"BURNING\") failed: %q", result.Message)
	}
}

func TestFactory_ReferenceFromConstraints(t *testing.T) {
	factory := NewFactory(testRepo(), testRefs())

	f := field("ComboResult", "StatReference")
	f.ReferenceTo = []schema.ReferenceConstraint{{StatType: "Weapon"}}

	v := factory.CreateValidator(f)
	if result := v.Validate("Shortsword"); !result.OK {
		t.Errorf("Validate(\"Shortsword\") failed: %q", result.Message)
	}
	if result := v.Validate("BURNING"); result.OK {
		t.Error("Validate(\"BURNING\") succeeded, want failure (wrong stat type)")
	}
}

func TestFactory_CreateReferenceValidator(t *testing.T) {
	factory := NewFactory(testRepo(), testRefs())

	v := factory.CreateReferenceValidator([]schema.ReferenceConstraint{
		{StatType: "Weapon"}, {StatType: "StatusData"},
	})
	if v.Kind() != KindReference {
		t.Fatalf("Kind = %v, want KindReference", v.Kind())
	}
	if result := v.Validate("BURNING"); !result.OK {
		t.Errorf("Validate(\"BURNING\") failed: %q", result.Message)
	}
}

func TestFactory_UnknownTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CreateValidator(unknown type) did not panic")
		}
	}()

	factory := NewFactory(testRepo(), testRefs())
	factory.CreateValidator(field("Mystery", "NoSuchType"))
}
