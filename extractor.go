package fintab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/fintab/config"
	"github.com/tsawler/fintab/logging"
	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/ocr"
	"github.com/tsawler/fintab/source"
	"github.com/tsawler/fintab/tables"
)

// Extractor provides a fluent interface for turning statement files into
// tables. Each configuration method returns a new Extractor instance, making
// it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source files; each path is also the document's ID
	paths []string

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		paths:   append([]string(nil), e.paths...),
		options: e.options.clone(),
		err:     e.err,
	}
}

// Workers sets how many documents are processed concurrently.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	if n < 1 {
		newExt.err = fmt.Errorf("workers must be at least 1, got %d", n)
		return newExt
	}
	newExt.options.workers = n
	return newExt
}

// Precedence lists document paths to process first. When documents report
// different values for the same line item and period, the earliest processed
// document wins.
func (e *Extractor) Precedence(paths ...string) *Extractor {
	newExt := e.clone()
	newExt.options.precedence = append([]string(nil), paths...)
	return newExt
}

// Language sets the OCR language(s), e.g. "eng" or "eng+deu".
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.ocr.Language = lang
	return newExt
}

// PageSegMode sets the OCR page segmentation mode.
func (e *Extractor) PageSegMode(mode ocr.PageSegMode) *Extractor {
	newExt := e.clone()
	newExt.options.ocr.PageSegMode = mode
	return newExt
}

// TableConfig sets the table assembly configuration.
func (e *Extractor) TableConfig(cfg tables.Config) *Extractor {
	newExt := e.clone()
	if err := cfg.Validate(); err != nil {
		newExt.err = err
		return newExt
	}
	newExt.options.tables = cfg
	return newExt
}

// Provider replaces text acquisition. OCR options are ignored when a
// provider is set.
func (e *Extractor) Provider(p source.Provider) *Extractor {
	newExt := e.clone()
	newExt.options.provider = p
	return newExt
}

// WithConfig applies loaded settings: workers, precedence, OCR and table
// options.
func (e *Extractor) WithConfig(cfg config.Config) *Extractor {
	if err := cfg.Validate(); err != nil {
		newExt := e.clone()
		newExt.err = err
		return newExt
	}
	newExt := e.Workers(cfg.Workers).TableConfig(cfg.TablesConfig())
	newExt.options.ocr = cfg.OCROptions()
	if len(cfg.Precedence) > 0 {
		newExt.options.precedence = append([]string(nil), cfg.Precedence...)
	}
	return newExt
}

// provider returns the text source for a run and a function releasing it.
func (e *Extractor) provider() (source.Provider, func()) {
	if e.options.provider != nil {
		return e.options.provider, func() {}
	}

	client, err := ocr.New(e.options.ocr)
	if err != nil {
		logging.For("fintab").Debug("OCR unavailable, images will be skipped", slog.Any("error", err))
		return source.NewRouter(), func() {}
	}
	return source.NewRouter(source.WithRecognizer(client)), func() { client.Close() }
}

// Tables acquires the text of every file and rebuilds its table. Results are
// in input order. A file whose text cannot be acquired is reported in its
// DocumentResult and as a warning; it never stops the others. The returned
// error is non-nil only for invalid configuration or when ctx is done.
func (e *Extractor) Tables(ctx context.Context) ([]DocumentResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	assembler := tables.NewAssembler()
	if err := assembler.Configure(e.options.tables); err != nil {
		return nil, nil, err
	}

	p, release := e.provider()
	defer release()

	results := make([]DocumentResult, len(e.paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.workers)

	for i, path := range e.paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := p.Extract(gctx, path)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
					return err
				}
				results[i] = failedResult(path, err)
				return nil
			}
			table, warnings := assembler.Assemble(path, text)
			results[i] = newResult(path, table, warnings)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("processing cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("processing cancelled: %w", err)
	}

	var warnings []Warning
	for _, r := range results {
		warnings = append(warnings, r.Warnings...)
	}
	return results, warnings, nil
}

// Combine runs Tables and merges the results into one sorted table plus a
// stack of tables without usable period headers.
//
// Example:
//
//	result, warnings, err := fintab.Open(paths...).Combine(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Sorted.ToMarkdown())
func (e *Extractor) Combine(ctx context.Context) (*model.CombinedResult, []Warning, error) {
	results, warnings, err := e.Tables(ctx)
	if err != nil {
		return nil, nil, err
	}
	return CombineResults(results, e.options.precedence...), warnings, nil
}
