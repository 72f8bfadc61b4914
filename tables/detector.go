package tables

import (
	"fmt"

	"github.com/tsawler/fintab/rows"
)

// Config holds assembler configuration
type Config struct {
	// Minimum period tokens for a line to count as the header
	MinHeaderPeriods int

	// Minimum numeric tokens for a line to count as a data row
	MinRowTokens int

	// Descriptions rejected in addition to rows.DefaultDenylist
	Denylist []string

	// Whether a header line with quarter or half-year markers is left out of
	// row extraction. The marker digits of "Q1 2023 Q2 2023" otherwise read
	// as numeric tokens. Header lines of bare years are always kept.
	ExcludeHeaderLine bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinHeaderPeriods:  2,
		MinRowTokens:      rows.MinTokens,
		ExcludeHeaderLine: true,
	}
}

// Validate reports configuration values the pipeline cannot honor.
func (c Config) Validate() error {
	if c.MinHeaderPeriods < 1 {
		return fmt.Errorf("MinHeaderPeriods must be at least 1, got %d", c.MinHeaderPeriods)
	}
	if c.MinRowTokens < rows.MinTokens {
		return fmt.Errorf("MinRowTokens must be at least %d, got %d", rows.MinTokens, c.MinRowTokens)
	}
	return nil
}
