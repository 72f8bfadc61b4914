package source

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// Recognizer turns an encoded image into text. *ocr.Client implements it.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// ImageProvider runs OCR on image files. Recognition is serialized because
// OCR engines keep per-image state.
type ImageProvider struct {
	mu         sync.Mutex
	recognizer Recognizer
}

// NewImageProvider returns a provider that recognizes images with r.
func NewImageProvider(r Recognizer) *ImageProvider {
	return &ImageProvider{recognizer: r}
}

// Extract reads the image at path and returns the recognized text.
func (p *ImageProvider) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := p.recognizer.Recognize(ctx, data)
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return text, nil
}
