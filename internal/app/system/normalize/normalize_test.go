package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  priya@test.com  ", "priya@test.com"},
		{"Priya@Test.com", "Priya@Test.com"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Priya Mehta ", "Priya Mehta"},
		{"\tPriya\n", "Priya"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Priya Mehta ", "priya mehta"},
		{"MANAGEMENT", "management"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
