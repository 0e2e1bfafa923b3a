package normalize

import "testing"

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain digits", "0812345678", "0812345678"},
		{"formatted", "+62 812-345-678", "62812345678"},
		{"parens and spaces", "(021) 555 0199", "0215550199"},
		{"letters stripped", "ext. 12 abc 34", "1234"},
		{"empty", "", ""},
		{"no digits", "n/a", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phone(tt.in); got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Jane", "jane"},
		{"punctuation and case", "John.Doe", "johndoe"},
		{"spaces", "  John  Doe ", "johndoe"},
		{"mixed", "O'Brien, Jr. 2", "obrienjr2"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Normalizing twice must be a no-op.
func TestIdempotence(t *testing.T) {
	phones := []string{"+62 812-345-678", "0812345678", ""}
	for _, p := range phones {
		once := Phone(p)
		if twice := Phone(once); twice != once {
			t.Errorf("Phone not idempotent: %q -> %q -> %q", p, once, twice)
		}
	}
	names := []string{"John.Doe", "  Jane ", "", "O'Brien"}
	for _, n := range names {
		once := Name(n)
		if twice := Name(once); twice != once {
			t.Errorf("Name not idempotent: %q -> %q -> %q", n, once, twice)
		}
	}
}

// Leading-zero local format vs country-code format stay distinct keys.
func TestPhoneCountryCodeNotEqualLocal(t *testing.T) {
	local := Phone("0812345678")
	intl := Phone("+62 812-345-678")
	if local == intl {
		t.Errorf("expected %q and %q to differ", local, intl)
	}
}
