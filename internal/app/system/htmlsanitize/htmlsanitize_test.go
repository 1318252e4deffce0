package htmlsanitize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text unchanged", in: "standup in 5 minutes", want: "standup in 5 minutes"},
		{name: "tags stripped", in: "<b>urgent</b> fix", want: "urgent fix"},
		{name: "script removed", in: `<script>alert("x")</script>hello`, want: "hello"},
		{name: "anchor stripped to text", in: `<a href="https://evil.test">click</a>`, want: "click"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
