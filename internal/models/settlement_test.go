package models

import "testing"

func TestPairKey(t *testing.T) {
	if got := PairKey("Bob", "Alice"); got != "Bob->Alice" {
		t.Errorf("PairKey = %q, want %q", got, "Bob->Alice")
	}
}

func TestParsePairKey(t *testing.T) {
	tests := []struct {
		key      string
		from, to string
		ok       bool
	}{
		{key: "Bob->Alice", from: "Bob", to: "Alice", ok: true},
		{key: "A->B->C", from: "A", to: "B->C", ok: true}, // cut at first arrow
		{key: "BobAlice", ok: false},
		{key: "->Alice", ok: false},
		{key: "Bob->", ok: false},
		{key: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			from, to, ok := ParsePairKey(tt.key)
			if ok != tt.ok || from != tt.from || to != tt.to {
				t.Errorf("ParsePairKey(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.key, from, to, ok, tt.from, tt.to, tt.ok)
			}
		})
	}
}
