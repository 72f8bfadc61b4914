package model

import (
	"fmt"
	"strings"
)

// WarningCode classifies a non-fatal issue.
type WarningCode string

const (
	// WarnHeaderMismatch means a header was found but its period count did
	// not match the document's column count; generic labels were used.
	WarnHeaderMismatch WarningCode = "header_mismatch"
	// WarnNoRows means no data rows survived extraction.
	WarnNoRows WarningCode = "no_rows"
	// WarnExtractionFailed means the document's text could not be acquired
	// and the document was left out.
	WarnExtractionFailed WarningCode = "extraction_failed"
)

// Warning is a non-fatal issue found while processing a document. Processing
// continued, but the result may be incomplete.
type Warning struct {
	Code     WarningCode
	Document string
	Message  string
	Err      error // underlying error, if any
}

// String formats the warning on one line.
func (w Warning) String() string {
	var sb strings.Builder
	if w.Document != "" {
		sb.WriteString(w.Document)
		sb.WriteString(": ")
	}
	sb.WriteString(w.Message)
	if w.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(w.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (w Warning) Unwrap() error { return w.Err }

// Warningf builds a warning with a formatted message.
func Warningf(code WarningCode, document, format string, args ...any) Warning {
	return Warning{Code: code, Document: document, Message: fmt.Sprintf(format, args...)}
}
