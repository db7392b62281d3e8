package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"path"
	"strconv"
	"strings"
	"text/template"

	"bundle-generator/internal/common"
	"bundle-generator/internal/directive"
	"bundle-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir overrides the per-package output directory when set. Used
	// by tests and dry runs to generate away from the source tree.
	OutputDir string
	// DebugUnformatted keeps an .unformatted.go sidecar when gofmt rejects
	// a rendered file.
	DebugUnformatted bool
}

// Generator renders decomposition plans into Go source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the base name (e.g., "player_bundle.go").
	Filename string
	// Content is the formatted Go source.
	Content []byte
}

// Generate renders every decomposition in the plan. Nothing is written to
// disk; pair with WriteFiles for that. The plan must be error-free.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	if p.Diagnostics.HasErrors() {
		return nil, errors.New("plan has errors, refusing to generate")
	}

	var files []GeneratedFile

	for _, pkg := range p.Packages {
		for _, d := range pkg.Decompositions {
			file, err := g.generateRecord(p, pkg, d)
			if err != nil {
				return nil, fmt.Errorf("generating %s: %w", d.Record.ID, err)
			}

			files = append(files, *file)
		}
	}

	return files, nil
}

// generateRecord renders one record's file and gofmt-checks it.
func (g *Generator) generateRecord(p *plan.Plan, pkg *plan.PackagePlan, d *plan.Decomposition) (*GeneratedFile, error) {
	data := g.buildFileData(p, pkg, d)

	tmpl := componentTemplate
	if d.Mode == directive.ModeResource {
		tmpl = resourceTemplate
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	dir := g.outputDir(pkg)

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort sidecar so the broken rendering can be inspected.
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(dir, d.Filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", d.Filename, err)
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: d.Filename,
		Content:  formatted,
	}, nil
}

// outputDir returns the directory a package's files are generated into.
func (g *Generator) outputDir(pkg *plan.PackagePlan) string {
	if g.config.OutputDir != "" {
		return g.config.OutputDir
	}

	return pkg.Dir
}

// importSpec represents an import statement.
type importSpec struct {
	Name string
	Path string
}

// Ref returns the import line content: the quoted path alone when the
// package name matches its base, a named import otherwise.
func (s importSpec) Ref() string {
	if s.Name != "" && s.Name != path.Base(s.Path) {
		return s.Name + " " + strconv.Quote(s.Path)
	}

	return strconv.Quote(s.Path)
}

// fileData holds everything one generated file's template needs.
type fileData struct {
	Package     string
	Imports     []importSpec
	Record      string
	Family      string
	Bundle      string
	Marker      string
	Receiver    string
	RegistryPkg string
	Fields      []fieldData
}

// fieldData is one field's slice of the template data.
type fieldData struct {
	// Member is the aggregate field name (PascalCase).
	Member string
	// Alias is the exported wrapper alias.
	Alias string
	// Tag is the tag type backing the alias.
	Tag string
	// Source is the record's own field name, which may be unexported.
	Source string
	// Type is the rendered field type.
	Type string
}

// buildFileData assembles template data, collecting imports as field types
// are rendered.
func (g *Generator) buildFileData(p *plan.Plan, pkg *plan.PackagePlan, d *plan.Decomposition) *fileData {
	data := &fileData{
		Package:  pkg.Name,
		Record:   d.Record.ID.Name,
		Family:   d.Family,
		Bundle:   d.Bundle,
		Marker:   d.Marker,
		Receiver: receiverName(d.Record.ID.Name),
	}

	imports := make(map[string]importSpec)

	if d.Mode == directive.ModeResource {
		alias := common.PkgAlias(p.RegistryImport)
		imports[p.RegistryImport] = importSpec{Name: alias, Path: p.RegistryImport}
		data.RegistryPkg = alias
	}

	for _, f := range d.Fields {
		data.Fields = append(data.Fields, fieldData{
			Member: f.Member,
			Alias:  f.Alias,
			Tag:    f.Tag,
			Source: f.Field.Name,
			Type:   typeString(f.Field.Type, pkg.Path, imports),
		})
	}

	for _, importPath := range common.SortedKeys(imports) {
		data.Imports = append(data.Imports, imports[importPath])
	}

	return data
}

// typeString renders a field type for emission into pkgPath. Every foreign
// package the type mentions lands in imports.
func typeString(t types.Type, pkgPath string, imports map[string]importSpec) string {
	qual := func(p *types.Package) string {
		if p.Path() == pkgPath {
			return ""
		}

		imports[p.Path()] = importSpec{Name: p.Name(), Path: p.Path()}

		return p.Name()
	}

	return types.TypeString(t, qual)
}

// receiverName returns the receiver for generated record methods. "r" is
// taken by the registry parameter of InsertInto, so records starting with R
// get a two-letter receiver.
func receiverName(record string) string {
	runes := []rune(record)

	rcv := strings.ToLower(string(runes[:1]))
	if rcv != "r" {
		return rcv
	}

	if len(runes) > 1 {
		return strings.ToLower(string(runes[:2]))
	}

	return "rec"
}

var componentTemplate = template.Must(template.New("component").Parse(`// Code generated by bundle-generator. DO NOT EDIT.

package {{.Package}}

{{if .Imports}}{{if eq (len .Imports) 1}}import {{(index .Imports 0).Ref}}{{else}}import (
{{range .Imports}}	{{.Ref}}
{{end}}){{end}}

{{end}}// Tag types. One per {{.Record}} field; they give each wrapper alias below a
// distinct compile-time identity.
type (
{{range .Fields}}	{{.Tag}} struct{}
{{end}})

// {{.Family}} wraps a single {{.Record}} field as an independently
// addressable component.
type {{.Family}}[F any, T any] struct {
	Value T
}

// Get returns the wrapped field value.
func (c {{.Family}}[F, T]) Get() T { return c.Value }

// Set replaces the wrapped field value.
func (c *{{.Family}}[F, T]) Set(v T) { c.Value = v }

// Wrapper aliases, one per {{.Record}} field.
type (
{{range .Fields}}	{{.Alias}} = {{$.Family}}[{{.Tag}}, {{.Type}}]
{{end}})

{{if .Marker}}// {{.Marker}} tags every decomposed {{.Record}}.
type {{.Marker}} struct{}

{{end}}// {{.Bundle}} holds one wrapper per {{.Record}} field, in declaration order.
type {{.Bundle}} struct {
{{range .Fields}}	{{.Member}} {{.Alias}}
{{end}}{{if .Marker}}	Marker {{.Marker}}
{{end}}}

// Components returns the bundle's wrappers in declaration order{{if .Marker}}, marker last{{end}}.
func (b {{.Bundle}}) Components() []any {
	return []any{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}b.{{$f.Member}}{{end}}{{if .Marker}}, b.Marker{{end}}}
}

// Bundled decomposes {{.Receiver}} into one component per field.
func ({{.Receiver}} {{.Record}}) Bundled() {{.Bundle}} {
	return {{.Bundle}}{
{{range .Fields}}		{{.Member}}: {{.Alias}}{Value: {{$.Receiver}}.{{.Source}}},
{{end}}	}
}

// Record reassembles the original {{.Record}} from its bundle.
func (b {{.Bundle}}) Record() {{.Record}} {
	return {{.Record}}{
{{range .Fields}}		{{.Source}}: b.{{.Member}}.Value,
{{end}}	}
}
`))

var resourceTemplate = template.Must(template.New("resource").Parse(`// Code generated by bundle-generator. DO NOT EDIT.

package {{.Package}}

{{if eq (len .Imports) 1}}import {{(index .Imports 0).Ref}}{{else}}import (
{{range .Imports}}	{{.Ref}}
{{end}}){{end}}

// Tag types. One per {{.Record}} field; they give each wrapper alias below a
// distinct compile-time identity.
type (
{{range .Fields}}	{{.Tag}} struct{}
{{end}})

// {{.Family}} wraps a single {{.Record}} field as an independently
// addressable resource.
type {{.Family}}[F any, T any] struct {
	Value T
}

// Get returns the wrapped field value.
func (c {{.Family}}[F, T]) Get() T { return c.Value }

// Set replaces the wrapped field value.
func (c *{{.Family}}[F, T]) Set(v T) { c.Value = v }

// Wrapper aliases, one per {{.Record}} field.
type (
{{range .Fields}}	{{.Alias}} = {{$.Family}}[{{.Tag}}, {{.Type}}]
{{end}})

// InsertInto stores each {{.Record}} field in r as an independent entry,
// overwriting any prior entry of the same wrapper type.
func ({{.Receiver}} {{.Record}}) InsertInto(r *{{.RegistryPkg}}.Registry) {
{{range .Fields}}	{{$.RegistryPkg}}.Put(r, {{.Alias}}{Value: {{$.Receiver}}.{{.Source}}})
{{end}}}

// QueueInto stages each {{.Record}} field into buf; the registry is untouched
// until buf is applied.
func ({{.Receiver}} {{.Record}}) QueueInto(buf *{{.RegistryPkg}}.CommandBuffer) {
{{range .Fields}}	{{$.RegistryPkg}}.Queue(buf, {{.Alias}}{Value: {{$.Receiver}}.{{.Source}}})
{{end}}}
`))
