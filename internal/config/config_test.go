package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	yaml := `
viewport:
  height: 700
reveal:
  strategy: transition
  threshold: 0.25
  selectors:
    - .card
nav:
  threshold_px: 120
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 700.0, cfg.Viewport.Height)
	assert.Equal(t, "transition", cfg.Reveal.Strategy)
	assert.Equal(t, 0.25, cfg.Reveal.Threshold)
	assert.Equal(t, []string{".card"}, cfg.Reveal.Selectors)
	assert.Equal(t, 120.0, cfg.Nav.ThresholdPx)
	// Untouched keys keep their defaults.
	assert.Equal(t, "0px 0px -100px 0px", cfg.Reveal.RootMargin)
	assert.Equal(t, ".nav-menu a", cfg.Nav.LinkSelector)
	require.NoError(t, cfg.Validate())
}

func TestLoad_SitefxYAMLInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sitefx.yaml"), []byte("log:\n  level: debug\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SITEFX_NAV_THRESHOLD_PX", "150")
	t.Setenv("SITEFX_REVEAL_STRATEGY", "transition")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 150.0, cfg.Nav.ThresholdPx)
	assert.Equal(t, "transition", cfg.Reveal.Strategy)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reveal: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"threshold above one", func(c *Config) { c.Reveal.Threshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.Reveal.Threshold = -0.1 }},
		{"unknown strategy", func(c *Config) { c.Reveal.Strategy = "fade" }},
		{"no selectors", func(c *Config) { c.Reveal.Selectors = nil }},
		{"blank selector", func(c *Config) { c.Reveal.Selectors = []string{""} }},
		{"zero viewport", func(c *Config) { c.Viewport.Height = 0 }},
		{"negative nav threshold", func(c *Config) { c.Nav.ThresholdPx = -1 }},
		{"lazy without selector", func(c *Config) { c.LazyImages.Selector = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestValidate_LazyDisabledNeedsNoSelector(t *testing.T) {
	cfg := Default()
	cfg.LazyImages.Enabled = false
	cfg.LazyImages.Selector = ""
	assert.NoError(t, cfg.Validate())
}
