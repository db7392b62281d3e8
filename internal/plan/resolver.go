package plan

import (
	"fmt"

	"bundle-generator/internal/analyze"
	"bundle-generator/internal/common"
	"bundle-generator/internal/diagnostic"
	"bundle-generator/internal/directive"
	"bundle-generator/internal/ident"
	"bundle-generator/internal/manifest"
	"bundle-generator/internal/match"
)

// knownFlags feeds typo suggestions for unrecognized directives.
var knownFlags = []string{
	directive.FlagComponent,
	directive.FlagResource,
	directive.FlagMarked,
	directive.FlagUnmarked,
}

// Config holds resolution options from the command line.
type Config struct {
	// DefaultTags is the tag strategy for records without a manifest
	// override.
	DefaultTags TagStrategy
}

// Resolver merges directives and manifest entries into a generation plan.
type Resolver struct {
	scan   *analyze.Scan
	man    *manifest.Manifest
	config Config
}

// NewResolver creates a Resolver. A nil manifest means directive-only
// selection with defaults.
func NewResolver(scan *analyze.Scan, man *manifest.Manifest, config Config) *Resolver {
	if man == nil {
		man = manifest.Empty()
	}

	return &Resolver{scan: scan, man: man, config: config}
}

// Resolve runs the full resolution pipeline. The returned plan carries all
// diagnostics; callers must not generate from a plan whose diagnostics
// contain errors.
func (r *Resolver) Resolve() *Plan {
	plan := &Plan{RegistryImport: r.man.RegistryImport}
	if plan.RegistryImport == "" {
		plan.RegistryImport = manifest.DefaultRegistryImport
	}

	plan.Diagnostics.Merge(*manifest.Validate(r.man, r.scan))

	for _, path := range common.SortedKeys(r.scan.Packages) {
		pkg := r.scan.Packages[path]

		pkgPlan := r.resolvePackage(pkg, &plan.Diagnostics)
		if len(pkgPlan.Decompositions) > 0 {
			plan.Packages = append(plan.Packages, pkgPlan)
		}
	}

	return plan
}

// resolvePackage resolves every selected record of one package and checks
// the package-wide name invariants.
func (r *Resolver) resolvePackage(pkg *analyze.PackageInfo, diags *diagnostic.Diagnostics) *PackagePlan {
	pkgPlan := &PackagePlan{Path: pkg.Path, Name: pkg.Name, Dir: pkg.Dir}

	// namespace -> owning record; derived name -> owning record
	namespaces := map[string]string{}
	derived := map[string]string{}

	for _, id := range pkg.Records {
		record := r.scan.Record(id)

		d := r.resolveRecord(pkg, record, diags)
		if d == nil {
			continue
		}

		if owner, taken := namespaces[d.Namespace]; taken {
			diags.AddErrorAt(record.Pos, diagnostic.CodeNamespaceCollision,
				fmt.Sprintf("namespace %s already belongs to record %s", d.Namespace, owner), id.Name, "")
			continue
		}

		namespaces[d.Namespace] = id.Name

		clean := true

		for _, name := range d.DerivedNames() {
			switch owner, taken := derived[name]; {
			case pkg.Decls[name]:
				diags.AddErrorAt(record.Pos, diagnostic.CodeDeclCollision,
					fmt.Sprintf("derived name %s collides with an existing declaration in %s", name, pkg.Path), id.Name, "")

				clean = false
			case taken:
				diags.AddErrorAt(record.Pos, diagnostic.CodeDeclCollision,
					fmt.Sprintf("derived name %s collides with record %s", name, owner), id.Name, "")

				clean = false
			default:
				derived[name] = id.Name
			}
		}

		if !clean {
			continue
		}

		pkgPlan.Decompositions = append(pkgPlan.Decompositions, d)
	}

	return pkgPlan
}

// resolveRecord merges the record's flags, validates its shape, and derives
// its names. Returns nil when the record is not selected or invalid.
func (r *Resolver) resolveRecord(pkg *analyze.PackageInfo, record *analyze.Record, diags *diagnostic.Diagnostics) *Decomposition {
	name := record.ID.Name

	set := directive.Parse(record.Doc)
	for _, unknown := range set.Unrecognized {
		msg := fmt.Sprintf("unrecognized directive %s%s ignored", directive.Prefix, unknown)
		if closest, ok := match.Closest(unknown, knownFlags); ok {
			msg += fmt.Sprintf(", did you mean %s%s", directive.Prefix, closest)
		}

		diags.AddInfo(diagnostic.CodeUnknownDirective, msg, name, "")
	}

	entry := r.man.Resolve(record.ID, pkg.Dir)
	if entry != nil {
		set = set.Union(entry.Directives())
	}

	mode, ok := set.Mode()
	if !ok {
		diags.AddErrorAt(record.Pos, diagnostic.CodeModeConflict,
			"component and resource both requested", name, "")
		return nil
	}

	if mode == directive.ModeUnset {
		switch {
		case entry != nil:
			diags.AddErrorAt(record.Pos, diagnostic.CodeManifestInvalid,
				"record selected without a mode", name, "")
		case set.Marked || set.Unmarked:
			diags.AddInfo(diagnostic.CodeIneffectiveDirective,
				"marker directive without component or resource has no effect", name, "")
		}

		return nil
	}

	marked, ok := set.TaggingEnabled()
	if !ok {
		diags.AddErrorAt(record.Pos, diagnostic.CodeMarkerConflict,
			"marked and unmarked both requested", name, "")
		return nil
	}

	if !r.checkShape(record, diags) {
		return nil
	}

	strategy := r.config.DefaultTags

	if entry != nil && entry.Tags != "" {
		// Validation already rejected unknown spellings.
		strategy, _ = ParseTagStrategy(entry.Tags)
	}

	d := &Decomposition{
		Record:    record,
		Mode:      mode,
		Marked:    mode == directive.ModeComponent && marked,
		Strategy:  strategy,
		Namespace: ident.Namespace(name),
		Filename:  ident.Filename(name),
	}

	switch mode {
	case directive.ModeComponent:
		d.Family = ident.ComponentFamily(name)
		d.Bundle = ident.Bundle(name)

		if d.Marked {
			d.Marker = ident.Marker(name)
		}
	case directive.ModeResource:
		d.Family = ident.ResourceFamily(name)
	}

	if !r.planFields(d, diags) {
		return nil
	}

	return d
}

// checkShape rejects records the decomposers cannot handle.
func (r *Resolver) checkShape(record *analyze.Record, diags *diagnostic.Diagnostics) bool {
	name := record.ID.Name
	clean := true

	if record.Generic {
		diags.AddErrorAt(record.Pos, diagnostic.CodeGenericRecord,
			"record declares type parameters", name, "")

		clean = false
	}

	if len(record.Fields) == 0 {
		diags.AddErrorAt(record.Pos, diagnostic.CodeBadRecordShape,
			"record has no fields", name, "")

		clean = false
	}

	for i := range record.Fields {
		if record.Fields[i].Embedded {
			diags.AddErrorAt(record.Pos, diagnostic.CodeBadRecordShape,
				"record embeds another type", name, record.Fields[i].Name)

			clean = false
		}
	}

	return clean
}

// planFields derives per-field names and checks accessor uniqueness.
func (r *Resolver) planFields(d *Decomposition, diags *diagnostic.Diagnostics) bool {
	name := d.Record.ID.Name

	// member -> owning field
	members := map[string]string{}
	clean := true

	for i := range d.Record.Fields {
		f := &d.Record.Fields[i]

		member := ident.PascalCase(f.Name)
		if owner, taken := members[member]; taken {
			diags.AddErrorAt(d.Record.Pos, diagnostic.CodeAccessorCollision,
				fmt.Sprintf("fields %s and %s both derive accessor %s", owner, f.Name, member), name, f.Name)

			clean = false

			continue
		}

		members[member] = f.Name

		fp := FieldPlan{
			Field:  f,
			Member: member,
			Alias:  ident.Accessor(name, f.Name),
		}

		if d.Strategy == TagsNamed {
			fp.Tag = ident.TagNamed(d.Namespace, member)
		} else {
			fp.Tag = ident.TagOrdinal(d.Namespace, i)
		}

		d.Fields = append(d.Fields, fp)
	}

	return clean
}
