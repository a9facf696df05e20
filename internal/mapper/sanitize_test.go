package mapper

import "testing"

func TestSanitizeColumnName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"email", "email"},
		{"Email", "email"},
		{"name.first", "name_first"},
		{"created-at", "created_at"},
		{"first name", "first_name"},
		{"a  b", "a__b"},
		{"a..b", "a__b"},
		{"price($)", "price"},
		{"a!@#b", "ab"},
		{"!@#$%", ""},
		{"", ""},
		{"über", "ber"},
		{"日本語", ""},
		{"Some.Nested Path-x", "some_nested_path_x"},
		{"snake_case", "snake_case"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := SanitizeColumnName(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeColumnName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSanitizeColumnNameIdempotent(t *testing.T) {
	inputs := []string{"", "Name.First", "a b.c-d", "ÄÖÜ", "K", "x\x00y", "---", "İstanbul", "a\tb\nc"}
	for _, in := range inputs {
		once := SanitizeColumnName(in)
		twice := SanitizeColumnName(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
		for _, r := range once {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
				t.Errorf("SanitizeColumnName(%q) = %q contains %q", in, once, r)
			}
		}
	}
}
