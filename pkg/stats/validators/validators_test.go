package validators

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ShinyHobo/lslib/pkg/stats/schema"
)

// fakeRefs is a test ReferenceValidator backed by fixed lookup tables.
type fakeRefs struct {
	references map[string]string // name -> stat type
	resources  map[string]string // name -> resource type
}

func (f *fakeRefs) IsValidReference(name, statType string) bool {
	return f.references[name] == statType
}

func (f *fakeRefs) IsValidGuidResource(name, resourceType string) bool {
	return f.resources[name] == resourceType
}

func testRefs() *fakeRefs {
	return &fakeRefs{
		references: map[string]string{
			"BURNING":     "StatusData",
			"Shortsword":  "Weapon",
			"_BaseWeapon": "Weapon",
		},
		resources: map[string]string{
			"Movement":    "ActionResource",
			"SpellSlots":  "ActionResource",
			"Concentrate": "ActionResourceGroup",
		},
	}
}

func TestBoolean(t *testing.T) {
	v := NewBoolean()

	tests := []struct {
		input   string
		ok      bool
		value   any
		message string
	}{
		{"", true, false, ""},
		{"true", true, true, ""},
		{"false", true, false, ""},
		{"TRUE", false, nil, "expected boolean value 'true' or 'false'"},
		{"1", false, nil, "expected boolean value 'true' or 'false'"},
	}

	for _, tt := range tests {
		result := v.Validate(tt.input)
		if result.OK != tt.ok {
			t.Errorf("Validate(%q).OK = %v, want %v", tt.input, result.OK, tt.ok)
			continue
		}
		if tt.ok && result.Value != tt.value {
			t.Errorf("Validate(%q).Value = %v, want %v", tt.input, result.Value, tt.value)
		}
		if !tt.ok && result.Message != tt.message {
			t.Errorf("Validate(%q).Message = %q, want %q", tt.input, result.Message, tt.message)
		}
	}
}

func TestInteger(t *testing.T) {
	v := NewInteger()

	if result := v.Validate(""); !result.OK || result.Value != int32(0) {
		t.Errorf("Validate(\"\") = %+v, want OK with 0", result)
	}
	if result := v.Validate("-42"); !result.OK || result.Value != int32(-42) {
		t.Errorf("Validate(\"-42\") = %+v, want OK with -42", result)
	}
	for _, bad := range []string{"abc", "1.5", "2147483648"} {
		result := v.Validate(bad)
		if result.OK {
			t.Errorf("Validate(%q) succeeded, want failure", bad)
			continue
		}
		if result.Message != "expected an integer value" {
			t.Errorf("Validate(%q).Message = %q", bad, result.Message)
		}
	}
}

func TestFloat(t *testing.T) {
	v := NewFloat()

	if result := v.Validate(""); !result.OK || result.Value != float32(0) {
		t.Errorf("Validate(\"\") = %+v, want OK with 0", result)
	}
	if result := v.Validate("0.5"); !result.OK || result.Value != float32(0.5) {
		t.Errorf("Validate(\"0.5\") = %+v, want OK with 0.5", result)
	}
	if result := v.Validate("half"); result.OK || result.Message != "expected a float value" {
		t.Errorf("Validate(\"half\") = %+v, want float failure", result)
	}
}

func TestString(t *testing.T) {
	v := NewString()

	if result := v.Validate(""); !result.OK || result.Value != "" {
		t.Errorf("Validate(\"\") = %+v, want OK with empty string", result)
	}
	if result := v.Validate(strings.Repeat("x", 2048)); !result.OK {
		t.Errorf("Validate(2048 chars) failed: %q", result.Message)
	}

	result := v.Validate(strings.Repeat("x", 2049))
	if result.OK {
		t.Fatal("Validate(2049 chars) succeeded, want failure")
	}
	if result.Message != "Value cannot be longer than 2048 characters" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestUUID(t *testing.T) {
	v := NewUUID()

	if result := v.Validate(""); !result.OK || result.Value != uuid.Nil {
		t.Errorf("Validate(\"\") = %+v, want OK with nil UUID", result)
	}

	canonical := "6c1d2867-9e2f-4a56-9f8b-03e540f2577b"
	result := v.Validate(canonical)
	if !result.OK {
		t.Fatalf("Validate(%q) failed: %q", canonical, result.Message)
	}
	if result.Value.(uuid.UUID).String() != canonical {
		t.Errorf("round trip = %q, want %q", result.Value.(uuid.UUID).String(), canonical)
	}

	for _, bad := range []string{
		"not-a-uuid",
		"6c1d28679e2f4a569f8b03e540f2577b", // undashed form is not canonical
		"{6c1d2867-9e2f-4a56-9f8b-03e540f2577b}",
	} {
		result := v.Validate(bad)
		if result.OK {
			t.Errorf("Validate(%q) succeeded, want failure", bad)
			continue
		}
		want := "'" + bad + "' is not a valid UUID"
		if result.Message != want {
			t.Errorf("Validate(%q).Message = %q, want %q", bad, result.Message, want)
		}
	}
}

func TestEnum(t *testing.T) {
	small := NewEnum(schema.NewEnumeration("Handedness", []string{"One", "Two"}))

	if result := small.Validate(""); !result.OK || result.Value != "One" {
		t.Errorf("Validate(\"\") = %+v, want first value default", result)
	}
	if result := small.Validate("Two"); !result.OK {
		t.Errorf("Validate(\"Two\") failed: %q", result.Message)
	}

	result := small.Validate("Three")
	if result.OK {
		t.Fatal("Validate(\"Three\") succeeded, want failure")
	}
	if result.Message != "expected one of: One, Two" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestEnum_LongListTruncatedInMessage(t *testing.T) {
	big := NewEnum(schema.NewEnumeration("Ability", []string{
		"Strength", "Dexterity", "Constitution", "Intelligence", "Wisdom", "Charisma",
	}))

	result := big.Validate("Luck")
	if result.OK {
		t.Fatal("Validate(\"Luck\") succeeded, want failure")
	}
	want := "expected one of: Strength, Dexterity, Constitution, Intelligence, ..."
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestEnum_MembershipProperty(t *testing.T) {
	enum := schema.NewEnumeration("DamageType", []string{"Slashing", "Piercing", "Fire"})
	v := NewEnum(enum)

	for _, value := range []string{"Slashing", "Piercing", "Fire", "Cold", "slashing", "FIRE"} {
		result := v.Validate(value)
		if result.OK != enum.Contains(value) {
			t.Errorf("Validate(%q).OK = %v, membership = %v", value, result.OK, enum.Contains(value))
		}
	}
}

func TestMultiValueEnum(t *testing.T) {
	enum := schema.NewEnumeration("WeaponFlags", []string{"Finesse", "Light", "Heavy", "Reach"})
	v := NewMultiValueEnum(enum)

	if result := v.Validate(""); !result.OK || result.Value != true {
		t.Errorf("Validate(\"\") = %+v, want trivially true", result)
	}
	if result := v.Validate("Finesse;Light"); !result.OK {
		t.Errorf("Validate(\"Finesse;Light\") failed: %q", result.Message)
	}
	if result := v.Validate(" Finesse ; Light "); !result.OK {
		t.Errorf("items are trimmed; Validate failed: %q", result.Message)
	}

	result := v.Validate("Finesse;Sharp")
	if result.OK {
		t.Fatal("Validate(\"Finesse;Sharp\") succeeded, want failure")
	}
	want := "Value 'Sharp' not supported; expected one of: Finesse, Light, Heavy, Reach"
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestReference(t *testing.T) {
	refs := testRefs()
	v := NewReference(refs, []string{"Weapon", "StatusData"})

	if result := v.Validate(""); !result.OK || result.Value != "" {
		t.Errorf("Validate(\"\") = %+v, want OK with empty string", result)
	}
	if result := v.Validate("Shortsword"); !result.OK {
		t.Errorf("Validate(\"Shortsword\") failed: %q", result.Message)
	}
	if result := v.Validate("BURNING"); !result.OK {
		t.Errorf("second stat type should match: %q", result.Message)
	}

	result := v.Validate("Ghost")
	if result.OK {
		t.Fatal("Validate(\"Ghost\") succeeded, want failure")
	}
	want := "'Ghost' is not a valid Weapon/StatusData reference"
	if result.Message != want {
		t.Errorf("Message = %q, want %q", result.Message, want)
	}
}

func TestMultiValueReference(t *testing.T) {
	v := NewMultiValueReference(testRefs(), []string{"Weapon"})

	if result := v.Validate("Shortsword; _BaseWeapon"); !result.OK {
		t.Errorf("Validate failed: %q", result.Message)
	}
	if result := v.Validate("Shortsword;;"); !result.OK {
		t.Errorf("blank items are skipped; Validate failed: %q", result.Message)
	}

	result := v.Validate("Shortsword;Ghost")
	if result.OK {
		t.Fatal("Validate succeeded, want failure propagated from bad item")
	}
	if !strings.Contains(result.Message, "'Ghost' is not a valid Weapon reference") {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestAnyOf(t *testing.T) {
	enum := NewEnum(schema.NewEnumeration("Ability", []string{"Strength", "Dexterity"}))
	v := NewAnyOf("", enum, NewInteger())

	if result := v.Validate("Dexterity"); !result.OK {
		t.Errorf("enum branch failed: %q", result.Message)
	}
	if result := v.Validate("3"); !result.OK || result.Value != int32(3) {
		t.Errorf("integer branch = %+v, want OK with 3", result)
	}

	result := v.Validate("Luck")
	if result.OK {
		t.Fatal("Validate(\"Luck\") succeeded, want failure")
	}
	want := "expected one of: Strength, Dexterity; expected an integer value"
	if result.Message != want {
		t.Errorf("joined sub-errors = %q, want %q", result.Message, want)
	}
}

func TestAnyOf_OverrideMessage(t *testing.T) {
	v := NewAnyOf("expected an ability or a level",
		NewEnum(schema.NewEnumeration("Ability", []string{"Strength"})),
		NewInteger())

	result := v.Validate("Luck")
	if result.OK {
		t.Fatal("Validate(\"Luck\") succeeded, want failure")
	}
	if result.Message != "expected an ability or a level" {
		t.Errorf("Message = %q, want override message", result.Message)
	}
}

func TestExpression_EmptyIsUnset(t *testing.T) {
	v := NewExpression("Properties", 0)
	if result := v.Validate("  "); !result.OK {
		t.Errorf("Validate(blank) failed: %q", result.Message)
	}
}

func TestCondition(t *testing.T) {
	v := NewCondition()

	if result := v.Validate("HasStatus('BURNING') and not Self()"); !result.OK {
		t.Errorf("Validate failed: %q", result.Message)
	}
	if result := v.Validate("HasStatus('BURNING'"); result.OK {
		t.Error("Validate succeeded, want failure")
	}
}
