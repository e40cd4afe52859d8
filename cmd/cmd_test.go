package cmd

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, args...)
	return out, err
}

func executeWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	configPath = ""
	verbose = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeGamePak(t *testing.T, base string) string {
	t.Helper()

	path := filepath.Join(base, "resource", "map.pak")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	fw, err := w.Create("map/single/desert/m1/0.mi")
	require.NoError(t, err)
	_, err = fw.Write([]byte("{mission}\n{\"autosave\"}\n{units}\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return path
}

func missionFile(base string) string {
	return filepath.Join(base, "resource", "map", "single", "desert", "m1", "0.mi")
}

func TestFixCommand(t *testing.T) {
	base := t.TempDir()
	archive := writeGamePak(t, base)

	out, err := execute(t, "fix", base)
	require.NoError(t, err)

	assert.Equal(t, "it's done! \nby: Kanroot and TheIIIrd\n", out)
	assert.NoFileExists(t, archive)

	data, err := os.ReadFile(missionFile(base))
	require.NoError(t, err)
	assert.Equal(t, "{mission}\n{units}\n", string(data))
}

func TestFixCommandQuietByDefault(t *testing.T) {
	base := t.TempDir()
	writeGamePak(t, base)

	out, errOut, err := executeWithStderr(t, "fix", base)
	require.NoError(t, err)
	assert.Equal(t, "it's done! \nby: Kanroot and TheIIIrd\n", out)
	assert.Empty(t, errOut)

	base = t.TempDir()
	writeGamePak(t, base)

	_, errOut, err = executeWithStderr(t, "fix", base, "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Found 1 missions in 1 factions")
}

func TestFixCommandArchiveMissing(t *testing.T) {
	base := t.TempDir()

	out, err := execute(t, "fix", base)
	require.NoError(t, err)
	assert.Equal(t, "PATH DOES NOT EXIST\n", out)
}

func TestFixCommandReadsBaseFromConfig(t *testing.T) {
	base := t.TempDir()
	archive := writeGamePak(t, base)

	cfg := filepath.Join(t.TempDir(), "mowtools.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("base_path: "+base+"\n"), 0644))

	out, err := execute(t, "fix", "--config", cfg, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "it's done!")
	assert.NoFileExists(t, archive)
}

func TestExtractListStrip(t *testing.T) {
	base := t.TempDir()
	archive := writeGamePak(t, base)

	out, err := execute(t, "extract", base)
	require.NoError(t, err)
	assert.Contains(t, out, "Files: 1")
	assert.Contains(t, out, "Extraction complete!")
	assert.FileExists(t, archive)

	out, err = execute(t, "list", base)
	require.NoError(t, err)
	assert.Equal(t, "desert/m1\nMissions: 1\n", out)

	out, err = execute(t, "strip", base)
	require.NoError(t, err)
	assert.Equal(t, "Stripped 1 of 1 mission files\n", out)

	data, err := os.ReadFile(missionFile(base))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), `{"autosave"}`))

	out, err = execute(t, "strip", base)
	require.NoError(t, err)
	assert.Equal(t, "Stripped 0 of 1 mission files\n", out)
}

func TestExtractCommandArchiveMissing(t *testing.T) {
	_, err := execute(t, "extract", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive not found")
}

func TestListCommandMissingRoot(t *testing.T) {
	_, err := execute(t, "list", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
