package analyze

import (
	"go/types"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "bundle-generator/examples/game"
	Name    string // e.g., "Player"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Record describes one named struct declaration found in a loaded package.
// Field order is declaration order; it fixes tag ordinals and the layout of
// everything generated from the record.
type Record struct {
	ID TypeID
	// Fields in declaration order, unexported and embedded ones included.
	// Shape validation happens in the planner, not here.
	Fields []Field
	// Doc holds the raw doc comment lines, "//" markers included, so that
	// directive lines survive (go/ast strips them from CommentGroup.Text).
	Doc []string
	// Pos is the source position of the declaration.
	Pos string
	// Generic is true when the declaration carries type parameters.
	Generic bool
}

// Field describes a struct field.
type Field struct {
	Name     string
	Exported bool
	Type     types.Type // opaque; rendered with a qualifier at emission
	Embedded bool
	Index    int
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // import path
	Name string // package name
	Dir  string // absolute directory; generated files land here
	// Records lists the named struct types declared in this package, sorted
	// by name.
	Records []TypeID
	// Decls holds every top-level name declared outside generated files,
	// used to refuse derived names that would collide with user code.
	Decls map[string]bool
}

// Scan holds all records collected from loaded packages.
type Scan struct {
	Packages map[string]*PackageInfo
	Records  map[TypeID]*Record
}

// NewScan creates a new empty Scan.
func NewScan() *Scan {
	return &Scan{
		Packages: make(map[string]*PackageInfo),
		Records:  make(map[TypeID]*Record),
	}
}

// Record returns the record for a given TypeID, or nil if not found.
func (s *Scan) Record(id TypeID) *Record {
	return s.Records[id]
}

// Package returns the info for a given package path, or nil if not found.
func (s *Scan) Package(path string) *PackageInfo {
	return s.Packages[path]
}
