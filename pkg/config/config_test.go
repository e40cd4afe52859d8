package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "./", cfg.BasePath)
}

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader("base_path: /games/Men of War Assault Squad 2/\n"))
	require.NoError(t, err)
	assert.Equal(t, "/games/Men of War Assault Squad 2/", cfg.BasePath)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		empty bool
	}{
		{name: "empty document", input: "", empty: true},
		{name: "blank value", input: "base_path: \"\"\n", empty: true},
		{name: "unknown key", input: "base_path: x\noutput: y\n"},
		{name: "not yaml", input: "base_path: [unterminated\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.empty {
				assert.ErrorIs(t, err, ErrEmptyBasePath)
			} else {
				assert.NotErrorIs(t, err, ErrEmptyBasePath)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mowtools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_path: /srv/game\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/game", cfg.BasePath)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveBasePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mowtools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_path: /from/config\n"), 0644))

	got, err := ResolveBasePath([]string{"/from/arg"}, path)
	require.NoError(t, err)
	assert.Equal(t, "/from/arg", got)

	got, err = ResolveBasePath(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "/from/config", got)

	got, err = ResolveBasePath(nil, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultBasePath, got)
}
