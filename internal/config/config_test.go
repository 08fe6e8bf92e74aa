package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/clampvec/internal/export"
	"github.com/roach88/clampvec/internal/naming"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, naming.DefaultLayout, cfg.TimestampLayout)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clampvec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir: exports
format: csv
journal: exports/journal.db
lang: ru
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "exports", cfg.OutputDir)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "exports/journal.db", cfg.Journal)
	assert.Equal(t, "ru", cfg.Lang)
	assert.Equal(t, naming.DefaultLayout, cfg.TimestampLayout, "unset keys keep defaults")

	f, err := cfg.ExportFormat()
	require.NoError(t, err)
	assert.Equal(t, export.FormatCSV, f)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestParse_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown format", "format: xml\n"},
		{"unknown lang", "lang: de\n"},
		{"empty output dir", "output_dir: \"\"\n"},
		{"empty layout", "timestamp_layout: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("format: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("output_dir: out\nfromat: csv\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
	assert.Contains(t, err.Error(), "fromat")
}

func TestParse_EmptyDocumentIsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
