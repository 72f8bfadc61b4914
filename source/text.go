package source

import (
	"context"
	"fmt"
	"os"
)

// TextProvider reads plain text files, typically OCR output saved earlier.
type TextProvider struct{}

// Extract returns the file content.
func (TextProvider) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return string(data), nil
}
