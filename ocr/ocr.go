//go:build ocr

// Package ocr recognizes the text of scanned financial statements.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Images are normalized with [Prepare] before recognition.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// ErrOCRNotEnabled is returned by the stub build. It is declared here too so
// callers can match it regardless of build tags.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client wraps Tesseract for OCR operations. A Client serializes its calls:
// the underlying engine holds per-image state.
type Client struct {
	mu      sync.Mutex
	client  *gosseract.Client
	options Options
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New(opts Options) (*Client, error) {
	opts = opts.withDefaults()
	client := gosseract.NewClient()
	c := &Client{client: client, options: opts}

	if err := c.SetLanguage(opts.Language); err != nil {
		client.Close()
		return nil, err
	}
	if err := c.SetPageSegMode(opts.PageSegMode); err != nil {
		client.Close()
		return nil, err
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client.Close()
}

// Recognize prepares an encoded image and returns its text.
func (c *Client) Recognize(ctx context.Context, imageData []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	prepared, err := Prepare(imageData, c.options.MinWidth)
	if err != nil {
		return "", err
	}
	return c.RecognizeImage(prepared)
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.) as is.
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
func (c *Client) SetLanguage(lang string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.client.SetLanguage(strings.Split(lang, "+")...); err != nil {
		return fmt.Errorf("set language %q: %w", lang, err)
	}
	c.options.Language = lang
	return nil
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.client.SetPageSegMode(gosseract.PageSegMode(mode)); err != nil {
		return fmt.Errorf("set page segmentation mode %d: %w", mode, err)
	}
	c.options.PageSegMode = mode
	return nil
}
