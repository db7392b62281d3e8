package directive

import (
	"strings"
)

// Prefix introduces a recognized comment directive.
const Prefix = "//bundle:"

// Flag names recognized after the prefix.
const (
	FlagComponent = "component"
	FlagResource  = "resource"
	FlagMarked    = "marked"
	FlagUnmarked  = "unmarked"
)

// Set is the struct-level flags found on one record. A Set never resolves
// contradictions itself; it only records what was asked for.
type Set struct {
	Component bool
	Resource  bool
	Marked    bool
	Unmarked  bool
	// Unrecognized holds names after the prefix that this generator does not
	// know. They are ignored, not errors.
	Unrecognized []string
}

// Parse extracts recognized flags from raw comment lines. Lines that are not
// bundle directives pass through silently; only an unknown name after the
// prefix lands in Unrecognized.
//
// Directive comments carry no space after "//", so they survive in an AST
// comment list even though go/ast drops them from CommentGroup.Text.
func Parse(comments []string) Set {
	var s Set

	for _, line := range comments {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, Prefix) {
			continue
		}

		name := strings.TrimSpace(strings.TrimPrefix(line, Prefix))
		switch name {
		case FlagComponent:
			s.Component = true
		case FlagResource:
			s.Resource = true
		case FlagMarked:
			s.Marked = true
		case FlagUnmarked:
			s.Unmarked = true
		default:
			s.Unrecognized = append(s.Unrecognized, name)
		}
	}

	return s
}

// Union combines flags from two sources. Flags accumulate; contradictions are
// preserved so that resolution can reject them.
func (s Set) Union(other Set) Set {
	return Set{
		Component:    s.Component || other.Component,
		Resource:     s.Resource || other.Resource,
		Marked:       s.Marked || other.Marked,
		Unmarked:     s.Unmarked || other.Unmarked,
		Unrecognized: append(append([]string{}, s.Unrecognized...), other.Unrecognized...),
	}
}

// Mode returns the requested decomposer. ok is false when the record asks for
// both component and resource treatment, which cannot coexist because their
// alias surfaces would collide.
func (s Set) Mode() (Mode, bool) {
	switch {
	case s.Component && s.Resource:
		return ModeUnset, false
	case s.Component:
		return ModeComponent, true
	case s.Resource:
		return ModeResource, true
	default:
		return ModeUnset, true
	}
}

// TaggingEnabled resolves the marker mode: enabled unless unmarked, with
// neither flag meaning enabled. ok is false when marked and unmarked are both
// present; that contradiction always aborts generation rather than silently
// picking a winner.
func (s Set) TaggingEnabled() (enabled, ok bool) {
	if s.Marked && s.Unmarked {
		return false, false
	}

	return !s.Unmarked, true
}
