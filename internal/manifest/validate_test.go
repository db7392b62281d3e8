package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundle-generator/internal/analyze"
	"bundle-generator/internal/diagnostic"
)

// fixtureScan builds an in-memory scan with one game package holding
// Player and Enemy.
func fixtureScan() *analyze.Scan {
	scan := analyze.NewScan()

	const path = "bundle-generator/examples/game"

	player := analyze.TypeID{PkgPath: path, Name: "Player"}
	enemy := analyze.TypeID{PkgPath: path, Name: "Enemy"}

	scan.Packages[path] = &analyze.PackageInfo{
		Path:    path,
		Name:    "game",
		Dir:     "/work/examples/game",
		Records: []analyze.TypeID{enemy, player},
		Decls:   map[string]bool{"Player": true, "Enemy": true, "Faction": true},
	}
	scan.Records[player] = &analyze.Record{ID: player}
	scan.Records[enemy] = &analyze.Record{ID: enemy}

	return scan
}

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_OK(t *testing.T) {
	m := &Manifest{
		Version: 1,
		Decompositions: []Entry{
			{Package: "bundle-generator/examples/game", Record: "Player", Mode: ModeComponent},
			{Package: "./examples/game", Record: "Enemy", Mode: ModeComponent, Tags: TagsNamed, Marker: MarkerUnmarked},
		},
	}

	res := Validate(m, fixtureScan())
	assert.True(t, res.IsValid(), "unexpected diagnostics: %v", res.Errors)
}

func TestValidate_NilManifest(t *testing.T) {
	res := Validate(nil, fixtureScan())
	require.True(t, res.HasErrors())
	assert.Contains(t, codes(res.Errors), diagnostic.CodeManifestInvalid)
}

func TestValidate_BadVersion(t *testing.T) {
	m := &Manifest{Version: 2}

	res := Validate(m, fixtureScan())
	require.True(t, res.HasErrors())
	assert.Contains(t, res.Errors[0].Message, "version")
}

func TestValidate_UnknownValues(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{"bad mode", Entry{Package: "p", Record: "R", Mode: "components"}},
		{"bad tags", Entry{Package: "p", Record: "R", Tags: "numbered"}},
		{"bad marker", Entry{Package: "p", Record: "R", Marker: "yes"}},
		{"missing package", Entry{Record: "R"}},
		{"missing record", Entry{Package: "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{Version: 1, Decompositions: []Entry{tt.entry}}

			res := Validate(m, nil)
			require.True(t, res.HasErrors())
			assert.Contains(t, codes(res.Errors), diagnostic.CodeManifestInvalid)
		})
	}
}

func TestValidate_DuplicateEntry(t *testing.T) {
	m := &Manifest{
		Version: 1,
		Decompositions: []Entry{
			{Package: "bundle-generator/examples/game", Record: "Player", Mode: ModeComponent},
			{Package: "bundle-generator/examples/game", Record: "Player", Mode: ModeResource},
		},
	}

	res := Validate(m, fixtureScan())
	require.True(t, res.HasErrors())
	assert.Contains(t, res.Errors[0].Message, "duplicate")
}

func TestValidate_RecordNotFound(t *testing.T) {
	m := &Manifest{
		Version: 1,
		Decompositions: []Entry{
			{Package: "bundle-generator/examples/game", Record: "Boss", Mode: ModeComponent},
		},
	}

	res := Validate(m, fixtureScan())
	require.True(t, res.HasErrors())
	assert.Contains(t, codes(res.Errors), diagnostic.CodeRecordNotFound)
}

func TestValidate_RecordNotFoundSuggestsClosest(t *testing.T) {
	m := &Manifest{
		Version: 1,
		Decompositions: []Entry{
			{Package: "bundle-generator/examples/game", Record: "Playr", Mode: ModeComponent},
		},
	}

	res := Validate(m, fixtureScan())
	require.True(t, res.HasErrors())
	assert.Contains(t, res.Errors[0].Message, "did you mean Player")
}

func TestValidate_NotAStruct(t *testing.T) {
	// Faction is declared in the package but is not a plain struct.
	m := &Manifest{
		Version: 1,
		Decompositions: []Entry{
			{Package: "bundle-generator/examples/game", Record: "Faction", Mode: ModeComponent},
		},
	}

	res := Validate(m, fixtureScan())
	require.True(t, res.HasErrors())
	assert.Contains(t, codes(res.Errors), diagnostic.CodeBadRecordShape)
}

func TestValidate_PackageNotLoaded(t *testing.T) {
	m := &Manifest{
		Version: 1,
		Decompositions: []Entry{
			{Package: "bundle-generator/examples/absent", Record: "Player", Mode: ModeComponent},
		},
	}

	res := Validate(m, fixtureScan())
	require.True(t, res.HasErrors())
	assert.Contains(t, codes(res.Errors), diagnostic.CodeRecordNotFound)
	assert.Contains(t, res.Errors[0].Message, "not loaded")
}

func TestResolve(t *testing.T) {
	m := &Manifest{
		Version: 1,
		Decompositions: []Entry{
			{Package: "./examples/game", Record: "Enemy", Tags: TagsNamed},
		},
	}

	id := analyze.TypeID{PkgPath: "bundle-generator/examples/game", Name: "Enemy"}

	e := m.Resolve(id, "/work/examples/game")
	require.NotNil(t, e)
	assert.Equal(t, TagsNamed, e.Tags)

	other := analyze.TypeID{PkgPath: "bundle-generator/examples/game", Name: "Player"}
	assert.Nil(t, m.Resolve(other, "/work/examples/game"))
}
