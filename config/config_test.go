package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/fintab/ocr"
)

// chdir moves into an empty directory so no stray .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, OutputCSV, cfg.Output)
	assert.Equal(t, "eng", cfg.OCR.Language)
	assert.True(t, cfg.TablesConfig().ExcludeHeaderLine)
	assert.Equal(t, ocr.PSM_SINGLE_BLOCK, cfg.OCROptions().PageSegMode)
}

func TestLoadYAML(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "fintab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
workers: 3
output: markdown
precedence: [annual, q3]
ocr:
  language: eng+deu
  min_width: 800
tables:
  denylist: ["memo:"]
  keep_header_line: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, OutputMarkdown, cfg.Output)
	assert.Equal(t, []string{"annual", "q3"}, cfg.Precedence)
	assert.Equal(t, "eng+deu", cfg.OCR.Language)
	assert.Equal(t, 800, cfg.OCR.MinWidth)
	// unset keys keep their defaults
	assert.Equal(t, 2, cfg.Tables.MinHeaderPeriods)
	assert.Equal(t, []string{"memo:"}, cfg.TablesConfig().Denylist)
	assert.False(t, cfg.TablesConfig().ExcludeHeaderLine)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t)
	t.Setenv("FINTAB_WORKERS", "7")
	t.Setenv("FINTAB_OUTPUT", "Markdown")
	t.Setenv("FINTAB_OCR_PSM", "4")
	t.Setenv("FINTAB_DENYLIST", "memo:, note ,")
	t.Setenv("FINTAB_PRECEDENCE", "b,a")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, OutputMarkdown, cfg.Output)
	assert.Equal(t, ocr.PSM_SINGLE_COLUMN, cfg.OCROptions().PageSegMode)
	assert.Equal(t, []string{"memo:", "note"}, cfg.Tables.Denylist)
	assert.Equal(t, []string{"b", "a"}, cfg.Precedence)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FINTAB_OCR_LANGUAGE=fra\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FINTAB_OCR_LANGUAGE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fra", cfg.OCR.Language)
}

func TestLoadErrors(t *testing.T) {
	dir := chdir(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("workers: [1"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv("FINTAB_WORKERS", "many")
	_, err = Load("")
	assert.ErrorContains(t, err, "FINTAB_WORKERS")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"unknown output", func(c *Config) { c.Output = "xlsx" }},
		{"negative min width", func(c *Config) { c.OCR.MinWidth = -1 }},
		{"min row tokens", func(c *Config) { c.Tables.MinRowTokens = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.txt", "b.txt"}, SplitList(" a.txt, b.txt ,,"))
	assert.Nil(t, SplitList(" , "))
}
