package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"123e4567-e89b-12d3-a456",              // too short
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestParseLatitude(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"-23.55052", -23.55052, true},
		{"0", 0, true},
		{"90", 90, true},
		{"-90", -90, true},
		{"90.1", 0, false},
		{"-91", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseLatitude(c.input)
		if ok != c.ok {
			t.Errorf("ParseLatitude(%q) ok = %v, want %v", c.input, ok, c.ok)
		}
		if c.ok && got != c.want {
			t.Errorf("ParseLatitude(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseLongitude(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"-46.633308", true},
		{"180", true},
		{"-180", true},
		{"180.5", false},
		{"not-a-number", false},
		{"", false},
	}
	for _, c := range cases {
		if _, ok := ParseLongitude(c.input); ok != c.ok {
			t.Errorf("ParseLongitude(%q) ok = %v, want %v", c.input, ok, c.ok)
		}
	}
}
