package ocr

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes used for statement scans. The values match
// Tesseract's own numbering.
const (
	PSM_AUTO          PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK  PageSegMode = 6  // Single uniform block of text
	PSM_SPARSE_TEXT   PageSegMode = 11 // Find as much text as possible
)

// Options configures a Client.
type Options struct {
	// Tesseract language(s), "+" separated (e.g. "eng+deu")
	Language string

	// Page segmentation mode. Statement pages read best as one block:
	// automatic segmentation tends to split a row's description from its
	// numbers.
	PageSegMode PageSegMode

	// Images narrower than this are upscaled before recognition. Zero
	// disables upscaling.
	MinWidth int
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Language:    "eng",
		PageSegMode: PSM_SINGLE_BLOCK,
		MinWidth:    1600,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Language == "" {
		o.Language = d.Language
	}
	if o.PageSegMode == 0 {
		o.PageSegMode = d.PageSegMode
	}
	return o
}
