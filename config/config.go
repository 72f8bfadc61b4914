// Package config loads fintab settings from defaults, an optional YAML file,
// a .env file and FINTAB_* environment variables, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/tsawler/fintab/ocr"
	"github.com/tsawler/fintab/tables"
)

// Output formats.
const (
	OutputCSV      = "csv"
	OutputMarkdown = "markdown"
)

// Config holds all settings.
type Config struct {
	Workers    int      `yaml:"workers"`
	Output     string   `yaml:"output"`
	LogLevel   string   `yaml:"log_level"`
	Precedence []string `yaml:"precedence"`
	OCR        OCR      `yaml:"ocr"`
	Tables     Tables   `yaml:"tables"`
}

// OCR holds Tesseract settings.
type OCR struct {
	Language    string `yaml:"language"`
	PageSegMode int    `yaml:"psm"`
	MinWidth    int    `yaml:"min_width"`
}

// Tables holds table assembly settings.
type Tables struct {
	MinHeaderPeriods int      `yaml:"min_header_periods"`
	MinRowTokens     int      `yaml:"min_row_tokens"`
	Denylist         []string `yaml:"denylist"`
	KeepHeaderLine   bool     `yaml:"keep_header_line"`
}

// Default returns the built-in settings.
func Default() Config {
	o := ocr.DefaultOptions()
	t := tables.DefaultConfig()
	return Config{
		Workers:  runtime.NumCPU(),
		Output:   OutputCSV,
		LogLevel: "warn",
		OCR: OCR{
			Language:    o.Language,
			PageSegMode: int(o.PageSegMode),
			MinWidth:    o.MinWidth,
		},
		Tables: Tables{
			MinHeaderPeriods: t.MinHeaderPeriods,
			MinRowTokens:     t.MinRowTokens,
			KeepHeaderLine:   !t.ExcludeHeaderLine,
		},
	}
}

// Load builds the configuration. path names an optional YAML file; an empty
// path skips it. A missing .env file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("FINTAB_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FINTAB_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("FINTAB_OUTPUT"); v != "" {
		c.Output = strings.ToLower(v)
	}
	if v := os.Getenv("FINTAB_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("FINTAB_PRECEDENCE"); v != "" {
		c.Precedence = SplitList(v)
	}
	if v := os.Getenv("FINTAB_OCR_LANGUAGE"); v != "" {
		c.OCR.Language = v
	}
	if v := os.Getenv("FINTAB_OCR_PSM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FINTAB_OCR_PSM: %w", err)
		}
		c.OCR.PageSegMode = n
	}
	if v := os.Getenv("FINTAB_OCR_MIN_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FINTAB_OCR_MIN_WIDTH: %w", err)
		}
		c.OCR.MinWidth = n
	}
	if v := os.Getenv("FINTAB_DENYLIST"); v != "" {
		c.Tables.Denylist = append(c.Tables.Denylist, SplitList(v)...)
	}
	return nil
}

// SplitList splits a comma-separated list, trimming entries and dropping
// empty ones.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports settings that cannot be honored.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Output {
	case OutputCSV, OutputMarkdown:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output, OutputCSV, OutputMarkdown)
	}
	if c.OCR.MinWidth < 0 {
		return fmt.Errorf("ocr min_width must not be negative, got %d", c.OCR.MinWidth)
	}
	return c.TablesConfig().Validate()
}

// OCROptions converts the OCR settings for ocr.New.
func (c Config) OCROptions() ocr.Options {
	return ocr.Options{
		Language:    c.OCR.Language,
		PageSegMode: ocr.PageSegMode(c.OCR.PageSegMode),
		MinWidth:    c.OCR.MinWidth,
	}
}

// TablesConfig converts the table settings for tables.Assembler.
func (c Config) TablesConfig() tables.Config {
	return tables.Config{
		MinHeaderPeriods:  c.Tables.MinHeaderPeriods,
		MinRowTokens:      c.Tables.MinRowTokens,
		Denylist:          c.Tables.Denylist,
		ExcludeHeaderLine: !c.Tables.KeepHeaderLine,
	}
}
