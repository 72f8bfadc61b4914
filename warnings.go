package fintab

import (
	"strings"

	"github.com/tsawler/fintab/model"
)

// Warning is a non-fatal issue found while processing a document.
type Warning = model.Warning

// Warning codes.
const (
	WarnHeaderMismatch   = model.WarnHeaderMismatch
	WarnNoRows           = model.WarnNoRows
	WarnExtractionFailed = model.WarnExtractionFailed
)

// FormatWarnings joins warnings into one line for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
