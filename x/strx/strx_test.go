package strx

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "fallback"); got != "fallback" {
		t.Errorf("Coalesce empty = %q", got)
	}
	if got := Coalesce("set", "fallback"); got != "set" {
		t.Errorf("Coalesce set = %q", got)
	}
}

func TestStartsWith(t *testing.T) {
	cases := []struct {
		s, prefix string
		want      bool
	}{
		{"sleep 5", "sleep", true},
		{"sleep 5", "delay", false},
		{"sl", "sleep", false},
		{"sleep", "sleep", true},
		{"sleep", "", false},
	}
	for _, c := range cases {
		if got := StartsWith(c.s, c.prefix); got != c.want {
			t.Errorf("StartsWith(%q, %q) = %v, want %v", c.s, c.prefix, got, c.want)
		}
	}
}
