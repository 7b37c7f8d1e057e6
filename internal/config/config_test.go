package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, runtime.NumCPU(), cfg.Scan.Workers)
	assert.False(t, cfg.Scan.Strict)
	assert.Equal(t, "csv", cfg.Report.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
}

func TestExampleYAMLIsValid(t *testing.T) {
	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Scan.Workers)
}

func TestValidateYAMLContent_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero workers", "scan:\n  workers: 0\n"},
		{"bad report format", "report:\n  format: pdf\n"},
		{"bad log level", "logging:\n  level: trace\n"},
		{"negative backups", "logging:\n  max_backups: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateYAMLContent([]byte(tt.content))
			assert.ErrorContains(t, err, "validation failed")
		})
	}
}

func TestValidateYAMLContent_Normalizes(t *testing.T) {
	cfg, err := ValidateYAMLContent([]byte("report:\n  format: \" Excel \"\nlogging:\n  level: DEBUG\n"))
	require.NoError(t, err)
	assert.Equal(t, "excel", cfg.Report.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ECHOPROC_SCAN_WORKERS", "7")
	t.Setenv("ECHOPROC_REPORT_FORMAT", "excel")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Scan.Workers)
	assert.Equal(t, "excel", cfg.Report.Format)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan:\n  workers: 2\n  strict: true\n"), 0o644))

	v := New()
	require.NoError(t, ReadFile(v, path, ""))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Scan.Workers)
	assert.True(t, cfg.Scan.Strict)
	assert.Equal(t, path, v.ConfigFileUsed())
}

func TestReadFile_SearchHome(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ".echoproc.yaml"), []byte("report:\n  format: xlsx\n"), 0o644))

	v := New()
	require.NoError(t, ReadFile(v, "", home))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", cfg.Report.Format)
}

func TestReadFile_MissingExplicit(t *testing.T) {
	err := ReadFile(New(), filepath.Join(t.TempDir(), "absent.yaml"), "")
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "csv", decoded["report"]["format"])
	assert.Equal(t, "info", decoded["logging"]["level"])
}
