package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return m, nil
}

// Parse parses YAML data into a Manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&m)

	return &m, nil
}

// Empty returns a manifest with defaults applied and no entries, for runs
// driven by source directives alone.
func Empty() *Manifest {
	m := &Manifest{}
	applyDefaults(m)

	return m
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(m *Manifest) {
	if m.Version == 0 {
		m.Version = SupportedVersion
	}

	if m.RegistryImport == "" {
		m.RegistryImport = DefaultRegistryImport
	}
}

// PackagePatterns returns the distinct package patterns named by the
// manifest, in first-seen order, for handing to the package loader.
func (m *Manifest) PackagePatterns() []string {
	seen := map[string]bool{}

	var patterns []string

	for _, e := range m.Decompositions {
		if e.Package == "" || seen[e.Package] {
			continue
		}

		seen[e.Package] = true

		patterns = append(patterns, e.Package)
	}

	return patterns
}
