package manifest

import (
	"path/filepath"
	"strings"

	"bundle-generator/internal/directive"
)

// Manifest is the root of a bundle.yaml decomposition manifest.
// This is the authoritative, human-reviewed selection of records when
// source directives are not wanted or need overriding.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version int `yaml:"version,omitempty"`

	// RegistryImport is the import path of the runtime registry package
	// emitted into resource-mode files. Defaults to DefaultRegistryImport.
	RegistryImport string `yaml:"registryImport,omitempty"`

	// Decompositions is the list of record selections.
	Decompositions []Entry `yaml:"decompositions"`
}

// Entry selects one record for decomposition and carries its options.
type Entry struct {
	// Package is the import path of the record's package. A relative
	// directory form ("./examples/game") is also accepted.
	Package string `yaml:"package"`

	// Record is the record's type name within the package.
	Record string `yaml:"record"`

	// Mode is "component" or "resource". Empty means the mode comes from
	// the record's source directives.
	Mode string `yaml:"mode,omitempty"`

	// Tags is the tag naming strategy, "ordinal" or "named".
	// Empty means ordinal.
	Tags string `yaml:"tags,omitempty"`

	// Marker is "marked" or "unmarked". Component mode only; resource
	// files have no marker to control.
	Marker string `yaml:"marker,omitempty"`
}

// Recognized option values.
const (
	ModeComponent = "component"
	ModeResource  = "resource"

	TagsOrdinal = "ordinal"
	TagsNamed   = "named"

	MarkerMarked   = "marked"
	MarkerUnmarked = "unmarked"
)

// SupportedVersion is the only manifest schema version this build accepts.
const SupportedVersion = 1

// DefaultRegistryImport is the runtime package resource dispatchers target.
const DefaultRegistryImport = "bundle-generator/registry"

// Directives converts the entry's options into the same flag set comment
// directives produce, so both sources merge through a single union path.
func (e *Entry) Directives() directive.Set {
	var set directive.Set

	switch e.Mode {
	case ModeComponent:
		set.Component = true
	case ModeResource:
		set.Resource = true
	}

	switch e.Marker {
	case MarkerMarked:
		set.Marked = true
	case MarkerUnmarked:
		set.Unmarked = true
	}

	return set
}

// Matches reports whether the entry addresses the package with the given
// import path and directory. Import paths match exactly; the relative
// directory form matches against the tail of the package directory.
func (e *Entry) Matches(pkgPath, pkgDir string) bool {
	if e.Package == pkgPath {
		return true
	}

	if rel, ok := strings.CutPrefix(e.Package, "./"); ok {
		return strings.HasSuffix(filepath.ToSlash(pkgDir), "/"+rel)
	}

	return false
}

// validMode reports whether s is empty or a recognized mode value.
func validMode(s string) bool {
	return s == "" || s == ModeComponent || s == ModeResource
}

// validTags reports whether s is empty or a recognized tag strategy.
func validTags(s string) bool {
	return s == "" || s == TagsOrdinal || s == TagsNamed
}

// validMarker reports whether s is empty or a recognized marker value.
func validMarker(s string) bool {
	return s == "" || s == MarkerMarked || s == MarkerUnmarked
}
