package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tsawler/fintab/format"
	"github.com/tsawler/fintab/logging"
)

// Router dispatches each file to the provider registered for its format and
// cleans the result. A Router is itself a Provider.
type Router struct {
	providers map[format.Format]Provider
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithRecognizer enables image documents, recognized with r.
func WithRecognizer(r Recognizer) RouterOption {
	return func(rt *Router) {
		p := NewImageProvider(r)
		for _, f := range imageFormats {
			rt.providers[f] = p
		}
	}
}

// WithProvider registers p for f, replacing any default.
func WithProvider(f format.Format, p Provider) RouterOption {
	return func(rt *Router) {
		rt.providers[f] = p
	}
}

var imageFormats = []format.Format{format.PNG, format.JPEG, format.TIFF, format.BMP, format.GIF, format.WEBP}

// NewRouter returns a router for text, HTML and PDF files. Images are only
// handled once a recognizer is supplied with WithRecognizer.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		providers: map[format.Format]Provider{
			format.Text: TextProvider{},
			format.HTML: HTMLProvider{},
			format.PDF:  NewPDFProvider(),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Supports reports whether a provider is registered for f.
func (r *Router) Supports(f format.Format) bool {
	_, ok := r.providers[f]
	return ok
}

// Extract detects the format of path, extracts its text and cleans it.
// A document without text yields "" and a nil error.
func (r *Router) Extract(ctx context.Context, path string) (string, error) {
	f, err := format.DetectFile(path)
	if err != nil {
		return "", err
	}

	p, ok := r.providers[f]
	if !ok {
		if f == format.Unknown {
			return "", ErrUnsupportedFormat
		}
		return "", fmt.Errorf("%s: %w", f, ErrUnsupportedFormat)
	}

	text, err := p.Extract(ctx, path)
	if err != nil {
		return "", err
	}

	text = Clean(text)
	logging.For("source").Debug("text extracted",
		slog.String("path", path),
		slog.String("format", f.String()),
		slog.Int("bytes", len(text)))
	return text, nil
}
