package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadUserPresets_RegistersPreset(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "ocean.yaml", `
name: ocean
description: A custom blue theme
colors:
  syntax.keyword: "#0000FF"
  syntax.string: "#00AAFF"
`)

	require.NoError(t, LoadUserPresets(dir))
	defer delete(Presets, "ocean")

	preset, ok := Presets["ocean"]
	require.True(t, ok)
	require.Equal(t, "A custom blue theme", preset.Description)
	require.Equal(t, "#0000FF", preset.Colors[TokenSyntaxKeyword])
}

func TestLoadUserPresets_MissingDirIsNotAnError(t *testing.T) {
	require.NoError(t, LoadUserPresets(filepath.Join(t.TempDir(), "nope")))
}

func TestLoadUserPresets_RejectsUnknownToken(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "bad.yaml", `
name: bad
colors:
  syntax.wat: "#112233"
`)

	err := LoadUserPresets(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color token")
}

func TestLoadUserPresets_RequiresName(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "anon.yaml", `
colors:
  syntax.keyword: "#112233"
`)

	err := LoadUserPresets(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must declare a name")
}

func TestLoadUserPresets_IgnoresNonYAML(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "notes.txt", "not a theme")

	require.NoError(t, LoadUserPresets(dir))
}
