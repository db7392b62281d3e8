package plan

import (
	"bundle-generator/internal/analyze"
	"bundle-generator/internal/common"
	"bundle-generator/internal/diagnostic"
	"bundle-generator/internal/directive"
)

// Plan is the final output of resolution. It contains everything needed
// for code generation.
type Plan struct {
	// Packages lists the packages receiving generated files, sorted by
	// import path.
	Packages []*PackagePlan
	// RegistryImport is the import path emitted into resource-mode files.
	RegistryImport string
	// Diagnostics contains all findings from resolution. Any error means
	// no files are written.
	Diagnostics diagnostic.Diagnostics
}

// PackagePlan groups the decompositions landing in one package directory.
type PackagePlan struct {
	// Path is the package import path.
	Path string
	// Name is the package name emitted into generated files.
	Name string
	// Dir is the directory generated files are written to.
	Dir string
	// Decompositions is sorted by record name.
	Decompositions []*Decomposition
}

// Decomposition is the fully resolved generation plan for one record.
type Decomposition struct {
	// Record is the analyzed source struct.
	Record *analyze.Record
	// Mode selects the component or resource decomposer.
	Mode directive.Mode
	// Marked is true when the bundle carries a marker. Always false in
	// resource mode.
	Marked bool
	// Strategy selects how tag type names are derived.
	Strategy TagStrategy
	// Namespace is the per-record prefix reserved for tag types.
	Namespace string
	// Family is the generic wrapper type name.
	Family string
	// Bundle is the aggregate type name. Empty in resource mode.
	Bundle string
	// Marker is the marker type name. Empty unless Marked.
	Marker string
	// Filename is the generated file's base name.
	Filename string
	// Fields holds per-field derived names in declaration order.
	Fields []FieldPlan
}

// FieldPlan carries the names derived for a single field.
type FieldPlan struct {
	// Field is the analyzed source field.
	Field *analyze.Field
	// Member is the field's PascalCase form: the aggregate field name.
	Member string
	// Alias is the exported wrapper alias name.
	Alias string
	// Tag is the tag type name backing the alias.
	Tag string
}

// DerivedNames returns every top-level identifier the decomposition emits,
// family first, then aggregate surface, then per-field names.
func (d *Decomposition) DerivedNames() []string {
	names := []string{d.Family}
	if d.Bundle != "" {
		names = append(names, d.Bundle)
	}

	if d.Marker != "" {
		names = append(names, d.Marker)
	}

	for _, f := range d.Fields {
		names = append(names, f.Alias, f.Tag)
	}

	return names
}

// RecordCount returns the number of records the plan generates for.
func (p *Plan) RecordCount() int {
	n := 0
	for _, pkg := range p.Packages {
		n += len(pkg.Decompositions)
	}

	return n
}

// TagStrategy selects how tag type names are derived.
type TagStrategy int

const (
	// TagsOrdinal names tags by field position: _player_f0, _player_f1.
	TagsOrdinal TagStrategy = iota
	// TagsNamed names tags by accessor: _player_Name. Host-side diagnostics
	// that print a wrapper's type then show which field it belongs to.
	TagsNamed
)

// String returns the manifest spelling of the strategy.
func (s TagStrategy) String() string {
	switch s {
	case TagsOrdinal:
		return "ordinal"
	case TagsNamed:
		return "named"
	default:
		return common.UnknownStr
	}
}

// ParseTagStrategy parses a manifest or flag spelling. Empty means ordinal.
func ParseTagStrategy(s string) (TagStrategy, bool) {
	switch s {
	case "", "ordinal":
		return TagsOrdinal, true
	case "named":
		return TagsNamed, true
	default:
		return TagsOrdinal, false
	}
}
