package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func resource(name string) string {
	return filepath.Join("..", "resources", name)
}

func TestConsolidateCommand(t *testing.T) {
	out, err := run(t, "consolidate", "--file", resource("solution_response.json"), "--users", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "#1 Mon 10:00-12:00 everyone available")
	assert.Contains(t, out, "carol")
	assert.NotContains(t, out, "Sun")
}

func TestConsolidateCommand_RequiresUsers(t *testing.T) {
	_, err := run(t, "consolidate", "--file", resource("solution_response.json"), "--users", "0")

	assert.ErrorContains(t, err, "--users must be positive")
}

func TestHeatmapCommand(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.html")

	out, err := run(t, "heatmap", "--file", resource("heatmap_response.json"), "--out", dst)

	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+dst)
	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestHeatmapCommand_MissingFile(t *testing.T) {
	_, err := run(t, "heatmap", "--file", "does-not-exist.json", "--out", filepath.Join(t.TempDir(), "x.html"))

	assert.Error(t, err)
}
