package fintab

import (
	"runtime"

	"github.com/tsawler/fintab/ocr"
	"github.com/tsawler/fintab/source"
	"github.com/tsawler/fintab/tables"
)

// ExtractOptions holds configuration for a batch run.
type ExtractOptions struct {
	// Concurrent documents
	workers int

	// Document IDs (paths) processed first, in order
	precedence []string

	// Table assembly
	tables tables.Config

	// OCR, used only when no provider is set
	ocr ocr.Options

	// Text acquisition; nil means a source.Router built from the options
	provider source.Provider
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		workers: runtime.NumCPU(),
		tables:  tables.DefaultConfig(),
		ocr:     ocr.DefaultOptions(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	// Deep copy slices
	if o.precedence != nil {
		newOpts.precedence = append([]string(nil), o.precedence...)
	}
	if o.tables.Denylist != nil {
		newOpts.tables.Denylist = append([]string(nil), o.tables.Denylist...)
	}

	return newOpts
}
