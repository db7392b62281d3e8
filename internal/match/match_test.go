package match

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "xyz", 3},
		{"kitten", "sitting", 3},
		{"player", "payer", 1},
		{"flaw", "lawn", 2},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"Player", "player", 1},
		{"world_clock", "WorldClock", 1},
		{"", "", 1},
		{"abcd", "wxyz", 0},
	}

	for _, tt := range tests {
		if got := Score(tt.a, tt.b); got != tt.want {
			t.Errorf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"Enemy", "Player", "Vec2"}

	tests := []struct {
		target string
		want   string
		ok     bool
	}{
		{"Playr", "Player", true},
		{"player", "Player", true},
		{"enemey", "Enemy", true},
		{"Quaternion", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Closest(tt.target, candidates)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Closest(%q) = %q, %v, want %q, %v", tt.target, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClosest_NoCandidates(t *testing.T) {
	if got, ok := Closest("Player", nil); ok {
		t.Errorf("Closest with no candidates = %q, want none", got)
	}
}
