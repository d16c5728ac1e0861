package validators

import "testing"

func TestDiceRoll(t *testing.T) {
	v := NewDiceRoll()

	result := v.Validate("2d6")
	if !result.OK {
		t.Fatalf("Validate(\"2d6\") failed: %q", result.Message)
	}
	roll := result.Value.(DiceRoll)
	if roll.Count != 2 || roll.Size != 6 {
		t.Errorf("roll = %+v, want {2 6}", roll)
	}

	for _, size := range []string{"1d4", "1d6", "1d8", "1d10", "1d12", "1d20", "1d100"} {
		if result := v.Validate(size); !result.OK {
			t.Errorf("Validate(%q) failed: %q", size, result.Message)
		}
	}

	invalid := []struct {
		value   string
		message string
	}{
		{"2d7", "Invalid die size: 7"},
		{"2x6", "Malformed dice roll"},
		{"d6", "Malformed dice roll"},
		{"2d", "Malformed dice roll"},
		{"twod6", "Malformed dice roll"},
	}
	for _, tt := range invalid {
		result := v.Validate(tt.value)
		if result.OK {
			t.Errorf("Validate(%q) succeeded, want failure", tt.value)
			continue
		}
		if result.Message != tt.message {
			t.Errorf("Validate(%q).Message = %q, want %q", tt.value, result.Message, tt.message)
		}
	}
}

func TestDiceRoll_EmptyIsUnvalidated(t *testing.T) {
	result := NewDiceRoll().Validate("")
	if result.OK || result.Message != "" {
		t.Errorf("Validate(\"\") = %+v, want unmarked result", result)
	}
}
