package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoRoot(t *testing.T) string {
	t.Helper()

	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	return root
}

// regenerateExample runs the real binary against one example package and
// returns the temp dir the files were generated into.
func regenerateExample(t *testing.T, example string) string {
	t.Helper()

	root := repoRoot(t)
	outDir := t.TempDir()

	cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/bundle-generator", "gen",
		"-pkg", "./examples/"+example,
		"-manifest", filepath.Join(root, "examples", example, "bundle.yaml"),
		"-out", outDir,
	)
	cmd.Dir = root

	b, err := cmd.CombinedOutput()
	require.NoError(t, err, "gen failed:\n%s", string(b))

	return outDir
}

// The committed example output must be reproducible byte for byte. This both
// proves the committed files are current and that re-runs are deterministic.
func TestRegenerateExamples_MatchCommitted(t *testing.T) {
	cases := []struct {
		example string
		files   []string
	}{
		{"game", []string{"player_bundle.go", "enemy_bundle.go"}},
		{"settings", []string{"settings_bundle.go", "world_clock_bundle.go"}},
	}

	for _, tc := range cases {
		t.Run(tc.example, func(t *testing.T) {
			outDir := regenerateExample(t, tc.example)
			root := repoRoot(t)

			for _, name := range tc.files {
				fresh, err := os.ReadFile(filepath.Join(outDir, name))
				require.NoError(t, err, "expected %s to be generated", name)

				committed, err := os.ReadFile(filepath.Join(root, "examples", tc.example, name))
				require.NoError(t, err)

				assert.Equal(t, string(committed), string(fresh),
					"%s drifted from generator output; re-run gen and commit", name)
			}
		})
	}
}

func TestCheckExamples(t *testing.T) {
	root := repoRoot(t)

	for _, example := range []string{"game", "settings"} {
		t.Run(example, func(t *testing.T) {
			cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/bundle-generator", "check",
				"-pkg", "./examples/"+example,
				"-manifest", filepath.Join(root, "examples", example, "bundle.yaml"),
			)
			cmd.Dir = root

			b, err := cmd.CombinedOutput()
			require.NoError(t, err, "check failed:\n%s", string(b))
			assert.Contains(t, string(b), "ok: 2 record(s)")
		})
	}
}

func TestDescribeExample(t *testing.T) {
	root := repoRoot(t)

	cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/bundle-generator", "describe",
		"-pkg", "./examples/game",
	)
	cmd.Dir = root

	b, err := cmd.CombinedOutput()
	require.NoError(t, err, "describe failed:\n%s", string(b))

	out := string(b)
	for _, want := range []string{"game.Player", "PlayerID", "_player_f0", "bundle PlayerBundle"} {
		assert.True(t, strings.Contains(out, want), "describe output missing %q:\n%s", want, out)
	}
}
