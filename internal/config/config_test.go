package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REPORT_INPUT_PATH", "")
	t.Setenv("REPORT_OUTPUT_DIR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "data/prices.csv", cfg.InputPath)
	assert.Equal(t, "reports", cfg.OutputDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_path: /srv/prices.csv\noutput_dir: /srv/reports\n"), 0o644))

	t.Setenv("REPORT_INPUT_PATH", "")
	t.Setenv("REPORT_OUTPUT_DIR", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/prices.csv", cfg.InputPath)
	assert.Equal(t, "/srv/reports", cfg.OutputDir)

	t.Setenv("REPORT_OUTPUT_DIR", "/tmp/out")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/prices.csv", cfg.InputPath)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_path: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{OutputDir: "reports"}).Validate())
	assert.Error(t, (&Config{InputPath: "data/prices.csv"}).Validate())
	assert.NoError(t, (&Config{InputPath: "a.csv", OutputDir: "out"}).Validate())
}
