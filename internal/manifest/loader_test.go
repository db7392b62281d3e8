package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundle-generator/internal/directive"
)

func TestParse(t *testing.T) {
	yaml := `
version: 1
registryImport: example.com/host/registry
decompositions:
  - package: bundle-generator/examples/game
    record: Enemy
    mode: component
    tags: named
    marker: unmarked
  - package: ./examples/settings
    record: Settings
    mode: resource
`

	m, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 1, m.Version)
	assert.Equal(t, "example.com/host/registry", m.RegistryImport)
	require.Len(t, m.Decompositions, 2)

	enemy := m.Decompositions[0]
	assert.Equal(t, "bundle-generator/examples/game", enemy.Package)
	assert.Equal(t, "Enemy", enemy.Record)
	assert.Equal(t, ModeComponent, enemy.Mode)
	assert.Equal(t, TagsNamed, enemy.Tags)
	assert.Equal(t, MarkerUnmarked, enemy.Marker)

	settings := m.Decompositions[1]
	assert.Equal(t, "./examples/settings", settings.Package)
	assert.Equal(t, ModeResource, settings.Mode)
	assert.Empty(t, settings.Tags)
	assert.Empty(t, settings.Marker)
}

func TestParse_Defaults(t *testing.T) {
	m, err := Parse([]byte("decompositions: []\n"))
	require.NoError(t, err)

	assert.Equal(t, SupportedVersion, m.Version)
	assert.Equal(t, DefaultRegistryImport, m.RegistryImport)
	assert.Empty(t, m.Decompositions)
}

func TestParse_EmptyInput(t *testing.T) {
	m, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, SupportedVersion, m.Version)
	assert.Empty(t, m.Decompositions)
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	yaml := `
version: 1
decompositions:
  - package: p
    record: R
    strategy: named
`

	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strategy")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("decompositions: ["))
	require.Error(t, err)
}

func TestEmpty(t *testing.T) {
	m := Empty()
	assert.Equal(t, SupportedVersion, m.Version)
	assert.Equal(t, DefaultRegistryImport, m.RegistryImport)
	assert.Empty(t, m.Decompositions)
}

func TestEntry_Directives(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  directive.Set
	}{
		{
			name:  "component marked",
			entry: Entry{Mode: ModeComponent, Marker: MarkerMarked},
			want:  directive.Set{Component: true, Marked: true},
		},
		{
			name:  "resource",
			entry: Entry{Mode: ModeResource},
			want:  directive.Set{Resource: true},
		},
		{
			name:  "unmarked only",
			entry: Entry{Marker: MarkerUnmarked},
			want:  directive.Set{Unmarked: true},
		},
		{
			name:  "empty entry contributes nothing",
			entry: Entry{},
			want:  directive.Set{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Directives())
		})
	}
}

func TestEntry_Matches(t *testing.T) {
	e := Entry{Package: "bundle-generator/examples/game"}
	assert.True(t, e.Matches("bundle-generator/examples/game", "/work/examples/game"))
	assert.False(t, e.Matches("bundle-generator/examples/settings", "/work/examples/settings"))

	rel := Entry{Package: "./examples/game"}
	assert.True(t, rel.Matches("bundle-generator/examples/game", "/work/examples/game"))
	assert.False(t, rel.Matches("bundle-generator/examples/settings", "/work/examples/settings"))
}

func TestPackagePatterns(t *testing.T) {
	m := &Manifest{
		Decompositions: []Entry{
			{Package: "a", Record: "X"},
			{Package: "b", Record: "Y"},
			{Package: "a", Record: "Z"},
		},
	}

	assert.Equal(t, []string{"a", "b"}, m.PackagePatterns())
}
