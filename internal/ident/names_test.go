package ident

import (
	"slices"
	"testing"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Record names
		{"Player", "player"},
		{"PlayerState", "player_state"},
		{"WorldClock", "world_clock"},
		{"HTTPServer", "http_server"},
		{"Settings", "settings"},

		// CamelCase variations
		{"playerID", "player_id"},
		{"parseURL", "parse_url"},
		{"XMLParser", "xml_parser"},

		// Already snake or separated
		{"player_id", "player_id"},
		{"player-id", "player_id"},

		// Edge cases
		{"", ""},
		{"A", "a"},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := SnakeCase(tt.input)
			if result != tt.expected {
				t.Errorf("SnakeCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Field names
		{"health", "Health"},
		{"name", "Name"},
		{"volume", "Volume"},

		// Snake input
		{"player_id", "PlayerId"},
		{"max_health", "MaxHealth"},

		// Interior capitals survive
		{"playerID", "PlayerID"},
		{"XMLData", "XMLData"},
		{"parseURL", "ParseURL"},

		// Already Pascal
		{"Health", "Health"},

		// Edge cases
		{"", ""},
		{"a", "A"},
		{"iD", "ID"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := PascalCase(tt.input)
			if result != tt.expected {
				t.Errorf("PascalCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestComposedNames(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"namespace", Namespace("Player"), "_player"},
		{"namespace multiword", Namespace("WorldClock"), "_world_clock"},
		{"bundle", Bundle("Player"), "PlayerBundle"},
		{"marker", Marker("Player"), "PlayerMarker"},
		{"component family", ComponentFamily("Player"), "PlayerFieldComponent"},
		{"resource family", ResourceFamily("Settings"), "SettingsFieldResource"},
		{"accessor", Accessor("Player", "name"), "PlayerName"},
		{"accessor snake field", Accessor("Player", "max_health"), "PlayerMaxHealth"},
		{"ordinal tag", TagOrdinal("_player", 0), "_player_f0"},
		{"ordinal tag later", TagOrdinal("_player", 2), "_player_f2"},
		{"named tag", TagNamed("_player", "Name"), "_player_Name"},
		{"filename", Filename("Player"), "player_bundle.go"},
		{"filename multiword", Filename("WorldClock"), "world_clock_bundle.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"order_id", []string{"order", "id"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"", nil},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := split(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("split(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDerivationIsStable(t *testing.T) {
	inputs := []string{"Player", "playerID", "max_health", "WorldClock"}
	for _, in := range inputs {
		if SnakeCase(in) != SnakeCase(in) || PascalCase(in) != PascalCase(in) {
			t.Fatalf("derivation for %q is not stable", in)
		}
	}
}
