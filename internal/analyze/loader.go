package analyze

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects their record declarations.
type Analyzer struct {
	scan *Scan
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{scan: NewScan()}
}

// LoadPackages loads the specified packages and collects every named struct
// declared outside generated files. Patterns are standard Go package patterns
// (e.g., "./examples/game", "bundle-generator/examples/settings").
func (a *Analyzer) LoadPackages(patterns ...string) (*Scan, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.scan, nil
}

// Scan returns the current scan.
func (a *Analyzer) Scan() *Scan {
	return a.scan
}

// processPackage extracts records and top-level declaration names from a
// loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Dir:   packageDir(pkg),
		Decls: make(map[string]bool),
	}

	for _, file := range pkg.Syntax {
		// Previous generator output must not count as user code, otherwise a
		// re-run would collide with its own declarations.
		if ast.IsGenerated(file) {
			continue
		}

		a.processFile(pkg, file, pkgInfo)
	}

	slices.SortFunc(pkgInfo.Records, func(x, y TypeID) int {
		return strings.Compare(x.Name, y.Name)
	})

	a.scan.Packages[pkg.PkgPath] = pkgInfo
}

// processFile walks one file's top-level declarations.
func (a *Analyzer) processFile(pkg *packages.Package, file *ast.File, pkgInfo *PackageInfo) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			a.processGenDecl(pkg, d, pkgInfo)

		case *ast.FuncDecl:
			// Methods do not occupy the package namespace.
			if d.Recv == nil {
				pkgInfo.Decls[d.Name.Name] = true
			}
		}
	}
}

func (a *Analyzer) processGenDecl(pkg *packages.Package, decl *ast.GenDecl, pkgInfo *PackageInfo) {
	for _, spec := range decl.Specs {
		switch s := spec.(type) {
		case *ast.ValueSpec:
			for _, n := range s.Names {
				pkgInfo.Decls[n.Name] = true
			}

		case *ast.TypeSpec:
			pkgInfo.Decls[s.Name.Name] = true
			a.collectRecord(pkg, decl, s, pkgInfo)
		}
	}
}

// collectRecord records a named struct declaration. Non-struct types and
// alias declarations are not records.
func (a *Analyzer) collectRecord(pkg *packages.Package, decl *ast.GenDecl, spec *ast.TypeSpec, pkgInfo *PackageInfo) {
	if _, ok := spec.Type.(*ast.StructType); !ok {
		return
	}

	tn, ok := pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return
	}

	rec := &Record{
		ID:      TypeID{PkgPath: pkg.PkgPath, Name: spec.Name.Name},
		Doc:     docLines(decl, spec),
		Pos:     pkg.Fset.Position(spec.Pos()).String(),
		Generic: spec.TypeParams != nil,
	}

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		rec.Fields = append(rec.Fields, Field{
			Name:     f.Name(),
			Exported: f.Exported(),
			Type:     f.Type(),
			Embedded: f.Embedded(),
			Index:    i,
		})
	}

	a.scan.Records[rec.ID] = rec
	pkgInfo.Records = append(pkgInfo.Records, rec.ID)
}

// docLines returns the raw lines of the doc comment attached to a type
// declaration. For an unparenthesized declaration the group's doc belongs to
// its single spec.
func docLines(decl *ast.GenDecl, spec *ast.TypeSpec) []string {
	doc := spec.Doc
	if doc == nil && !decl.Lparen.IsValid() {
		doc = decl.Doc
	}

	if doc == nil {
		return nil
	}

	lines := make([]string, 0, len(doc.List))
	for _, c := range doc.List {
		lines = append(lines, c.Text)
	}

	return lines
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}

	return ""
}
