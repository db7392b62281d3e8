package manifest

import (
	"fmt"

	"bundle-generator/internal/analyze"
	"bundle-generator/internal/diagnostic"
	"bundle-generator/internal/match"
)

// Validate checks a manifest structurally and resolves its entries against
// the scanned packages. It does not inspect record shapes; that is the
// planner's job.
func Validate(m *Manifest, scan *analyze.Scan) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if m == nil {
		res.AddError(diagnostic.CodeManifestInvalid, "manifest is nil", "", "")
		return res
	}

	if m.Version != SupportedVersion {
		res.AddError(diagnostic.CodeManifestInvalid,
			fmt.Sprintf("unsupported manifest version %d, want %d", m.Version, SupportedVersion), "", "")
	}

	seen := map[string]bool{}

	for i := range m.Decompositions {
		e := &m.Decompositions[i]
		validateEntry(res, e, i)

		key := e.Package + "." + e.Record
		if seen[key] {
			res.AddError(diagnostic.CodeManifestInvalid,
				fmt.Sprintf("duplicate entry for %s.%s", e.Package, e.Record), e.Record, "")
			continue
		}

		seen[key] = true

		if scan != nil {
			resolveEntry(res, e, scan)
		}
	}

	return res
}

// validateEntry checks one entry's fields against the recognized values.
func validateEntry(res *diagnostic.Diagnostics, e *Entry, i int) {
	if e.Package == "" {
		res.AddError(diagnostic.CodeManifestInvalid,
			fmt.Sprintf("entry %d has no package", i), e.Record, "")
	}

	if e.Record == "" {
		res.AddError(diagnostic.CodeManifestInvalid,
			fmt.Sprintf("entry %d has no record", i), "", "")
	}

	if !validMode(e.Mode) {
		res.AddError(diagnostic.CodeManifestInvalid,
			fmt.Sprintf("unknown mode %q, want %q or %q", e.Mode, ModeComponent, ModeResource), e.Record, "")
	}

	if !validTags(e.Tags) {
		res.AddError(diagnostic.CodeManifestInvalid,
			fmt.Sprintf("unknown tag strategy %q, want %q or %q", e.Tags, TagsOrdinal, TagsNamed), e.Record, "")
	}

	if !validMarker(e.Marker) {
		res.AddError(diagnostic.CodeManifestInvalid,
			fmt.Sprintf("unknown marker %q, want %q or %q", e.Marker, MarkerMarked, MarkerUnmarked), e.Record, "")
	}
}

// resolveEntry checks that the entry's record exists in the scan.
func resolveEntry(res *diagnostic.Diagnostics, e *Entry, scan *analyze.Scan) {
	if e.Package == "" || e.Record == "" {
		return
	}

	for path, pkg := range scan.Packages {
		if !e.Matches(path, pkg.Dir) {
			continue
		}

		id := analyze.TypeID{PkgPath: path, Name: e.Record}
		if scan.Record(id) == nil {
			// The scan only collects plain structs, so a declared name
			// that is missing here is some other kind of type.
			if pkg.Decls[e.Record] {
				res.AddError(diagnostic.CodeBadRecordShape,
					fmt.Sprintf("%s in package %s is not a plain named-field struct", e.Record, path), e.Record, "")
			} else {
				msg := fmt.Sprintf("record %s not found in package %s", e.Record, path)
				if closest, ok := match.Closest(e.Record, recordNames(pkg)); ok {
					msg += fmt.Sprintf(", did you mean %s", closest)
				}

				res.AddError(diagnostic.CodeRecordNotFound, msg, e.Record, "")
			}
		}

		return
	}

	res.AddError(diagnostic.CodeRecordNotFound,
		fmt.Sprintf("package %s was not loaded", e.Package), e.Record, "")
}

// recordNames returns the package's record names, already sorted by the
// analyzer.
func recordNames(pkg *analyze.PackageInfo) []string {
	names := make([]string, 0, len(pkg.Records))
	for _, id := range pkg.Records {
		names = append(names, id.Name)
	}

	return names
}

// Resolve returns the manifest entry addressing the given record, or nil.
func (m *Manifest) Resolve(id analyze.TypeID, pkgDir string) *Entry {
	for i := range m.Decompositions {
		e := &m.Decompositions[i]
		if e.Record == id.Name && e.Matches(id.PkgPath, pkgDir) {
			return e
		}
	}

	return nil
}
