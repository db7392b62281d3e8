package ident

import (
	"strconv"
	"strings"
	"unicode"
)

// SnakeCase converts an identifier to snake_case.
// Examples:
//   - "Player" -> "player"
//   - "PlayerState" -> "player_state"
//   - "HTTPServer" -> "http_server"
//   - "playerID" -> "player_id"
func SnakeCase(s string) string {
	tokens := split(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// PascalCase converts an identifier to PascalCase. Interior capitals within a
// token survive, so acronym tokens keep their casing.
// Examples:
//   - "health" -> "Health"
//   - "player_id" -> "PlayerId"
//   - "playerID" -> "PlayerID"
func PascalCase(s string) string {
	tokens := split(s)
	for i, t := range tokens {
		tokens[i] = capitalize(t)
	}

	return strings.Join(tokens, "")
}

// Namespace returns the per-record prefix reserved for generated tag types:
// "_" + SnakeCase(record). The leading underscore keeps the prefix out of the
// user's exported namespace.
func Namespace(record string) string {
	return "_" + SnakeCase(record)
}

// Bundle returns the aggregate type name for a record.
func Bundle(record string) string {
	return record + "Bundle"
}

// Marker returns the marker type name for a record.
func Marker(record string) string {
	return record + "Marker"
}

// ComponentFamily returns the wrapper family type name for a component-mode
// record.
func ComponentFamily(record string) string {
	return record + "FieldComponent"
}

// ResourceFamily returns the wrapper family type name for a resource-mode
// record.
func ResourceFamily(record string) string {
	return record + "FieldResource"
}

// Accessor returns the alias name for one field's wrapper: the record name
// followed by the field's PascalCase form.
func Accessor(record, field string) string {
	return record + PascalCase(field)
}

// TagOrdinal returns the tag type name for field i under the ordinal strategy.
func TagOrdinal(namespace string, i int) string {
	return namespace + "_f" + strconv.Itoa(i)
}

// TagNamed returns the tag type name for a field under the named strategy.
// The accessor argument is the field's PascalCase form, which the planner has
// already checked for uniqueness.
func TagNamed(namespace, accessor string) string {
	return namespace + "_" + accessor
}

// Filename returns the generated file name for a record.
func Filename(record string) string {
	return SnakeCase(record) + "_bundle.go"
}

// split breaks an identifier into tokens at separators and camelCase
// boundaries. An uppercase run is one token up to its last letter when the
// following rune is lowercase ("XMLParser" -> "XML", "Parser").
func split(s string) []string {
	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && boundaryBefore(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// boundaryBefore reports whether a new token starts at runes[i].
func boundaryBefore(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// lower -> Upper transition, as in "playerId".
	if !unicode.IsUpper(prev) {
		return true
	}

	// End of an uppercase run followed by lowercase, as in "HTTPServer".
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
