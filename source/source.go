// Package source acquires the raw text of statement documents.
//
// A [Provider] turns one file into text. The [Router] picks a provider by the
// file's detected format: scanned images go through OCR, PDFs through their
// text layer, HTML through a table-aware text walk and plain text files are
// read as they are. All text leaves the router normalized by [Clean].
//
//	router := source.NewRouter(source.WithRecognizer(client))
//	text, err := router.Extract(ctx, "q3-2023.png")
//
// Failure is always a returned error; providers never encode failure in the
// text itself.
package source

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnsupportedFormat is returned for files no provider is registered for.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Provider extracts the text of one document.
type Provider interface {
	Extract(ctx context.Context, path string) (string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, path string) (string, error)

// Extract calls f(ctx, path).
func (f ProviderFunc) Extract(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

var blanks = regexp.MustCompile(`[ \t\f\v]+`)

// Clean normalizes extracted text: NFKC folds compatibility characters
// (fullwidth digits, non-breaking spaces, ligatures) into their plain forms,
// line endings become \n, runs of blanks collapse to one space and each line
// is trimmed.
func Clean(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(blanks.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
