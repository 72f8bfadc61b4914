// Package fintab rebuilds financial statement tables from scanned or exported
// documents and merges them into one chronologically sorted table.
//
// Basic usage:
//
//	result, warnings, err := fintab.Open("q1.png", "q2.pdf", "annual.html").Combine(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", fintab.FormatWarnings(warnings))
//	}
//	fmt.Print(result.Sorted.ToCSV())
//
// With options:
//
//	result, _, err := fintab.Open(paths...).
//	    Workers(4).
//	    Language("eng+deu").
//	    Precedence("annual.html").
//	    Combine(ctx)
//
// When the text is already available, ProcessDocuments and ProcessOneDocument
// skip text acquisition entirely.
package fintab

import (
	"github.com/google/uuid"

	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/tables"
)

// Document is the OCR text of one statement.
type Document struct {
	// ID names the document in warnings, stacked output and precedence
	// lists. An empty ID is replaced with a random UUID.
	ID   string
	Text string
}

// ProcessOneDocument rebuilds the table of a single document's text.
// It never fails: text without data rows yields an empty table and a warning.
func ProcessOneDocument(text string) (*model.Table, []Warning) {
	return tables.NewAssembler().Assemble("", text)
}

// ProcessDocuments rebuilds each document's table and combines them. Where
// documents disagree on a value, the first one in processing order wins;
// precedence lists document IDs to process first, the rest follow in input
// order.
func ProcessDocuments(docs []Document, precedence ...string) (*model.CombinedResult, []Warning) {
	a := tables.NewAssembler()

	var warnings []Warning
	all := make([]*model.Table, 0, len(docs))
	for _, doc := range docs {
		id := doc.ID
		if id == "" {
			id = uuid.NewString()
		}
		table, w := a.Assemble(id, doc.Text)
		warnings = append(warnings, w...)
		all = append(all, table)
	}
	return tables.Combine(all, precedence...), warnings
}

// Open returns an Extractor for the given files. Nothing is read until a
// terminal operation such as Combine or Tables is called.
//
// Example:
//
//	result, warnings, err := fintab.Open("q1.png", "q2.png").Combine(ctx)
func Open(paths ...string) *Extractor {
	return &Extractor{
		paths:   append([]string(nil), paths...),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Combine() or Tables() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	result := fintab.MustResult(fintab.Open("q1.txt").Combine(ctx))
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
