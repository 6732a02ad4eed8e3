package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flacmeta.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_NoPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, FormatText, cfg.Defaults.Format)
	assert.False(t, cfg.Defaults.NoColor)
	assert.False(t, cfg.Defaults.FailFast)
	assert.False(t, cfg.Defaults.StreamInfoFirst)
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
defaults:
  format: yaml
  no_color: true
  fail_fast: true
  stream_info_first: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, cfg.Defaults.Format)
	assert.True(t, cfg.Defaults.NoColor)
	assert.True(t, cfg.Defaults.FailFast)
	assert.True(t, cfg.Defaults.StreamInfoFirst)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
defaults:
  no_color: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatText, cfg.Defaults.Format)
	assert.True(t, cfg.Defaults.NoColor)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return "/nonexistent/path/flacmeta.yaml" }},
		{"malformed yaml", func(t *testing.T) string { return writeConfig(t, "defaults: [unclosed") }},
		{"unknown format", func(t *testing.T) string { return writeConfig(t, "defaults:\n  format: xml\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path(t))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
