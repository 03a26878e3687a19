package textedit

import "testing"

func TestPredefinedValidators(t *testing.T) {
	tests := []struct {
		name string
		v    Validator
		ok   []string
		bad  []string
	}{
		{"lowercase", ValidateLowercase, []string{"", "abc_1-2"}, []string{"aBc", "a b"}},
		{"uppercase", ValidateUppercase, []string{"", "ABC"}, []string{"AbC", "A1"}},
		{"letters", ValidateLetters, []string{"aBc"}, []string{"ab1", "a-b"}},
		{"digits", ValidateDigits, []string{"", "0123"}, []string{"1a", "-1"}},
		{"email", ValidateEmail, []string{"jo", "jo.doe@", "jo.doe@example.org"}, []string{"a@b@c", "a b"}},
		{"number", ValidateNumber, []string{"-", "0", "-12.5", "1e", "3.2E+10"}, []string{"01", "1.2.3", "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.ok {
				if !tt.v.Accept(s) {
					t.Errorf("Accept(%q) = false", s)
				}
			}
			for _, s := range tt.bad {
				if tt.v.Accept(s) {
					t.Errorf("Accept(%q) = true", s)
				}
			}
		})
	}
}

func TestNewPattern(t *testing.T) {
	if _, err := NewPattern("("); err == nil {
		t.Error("NewPattern(\"(\") error = nil")
	}
	p, err := NewPattern(`^\d{0,3}$`)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Accept("123") || p.Accept("1234") {
		t.Error("pattern did not bound the length")
	}
	if p.String() != `^\d{0,3}$` {
		t.Errorf("String() = %q", p.String())
	}
}
