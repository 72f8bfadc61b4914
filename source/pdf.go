package source

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFProvider reads the text layer of PDF files. Glyphs are grouped into
// lines by baseline, so a statement row comes out as one line with its
// description and numbers in reading order.
type PDFProvider struct {
	// Maximum baseline distance, in points, for glyphs to share a line
	RowTolerance float64
}

// NewPDFProvider returns a PDFProvider with a 2pt row tolerance.
func NewPDFProvider() *PDFProvider {
	return &PDFProvider{RowTolerance: 2.0}
}

// Extract returns the text of every page, one line per row. A PDF without a
// text layer (a scan saved as PDF) yields empty text.
func (p *PDFProvider) Extract(ctx context.Context, path string) (text string, err error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	// the pdf package panics on some malformed content streams
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("read pdf: %v", rec)
		}
	}()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, line := range groupRows(page.Content().Text, p.RowTolerance) {
			sb.WriteString(lineText(line))
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// groupRows buckets glyphs whose baselines lie within tolerance of each
// other and returns the rows top to bottom, each sorted left to right.
func groupRows(texts []pdf.Text, tolerance float64) [][]pdf.Text {
	type bucket struct {
		yMin, yMax float64
		texts      []pdf.Text
	}

	var buckets []bucket
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range buckets {
			b := &buckets[i]
			if t.Y >= b.yMin-tolerance && t.Y <= b.yMax+tolerance {
				b.texts = append(b.texts, t)
				b.yMin = math.Min(b.yMin, t.Y)
				b.yMax = math.Max(b.yMax, t.Y)
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: t.Y, yMax: t.Y, texts: []pdf.Text{t}})
		}
	}

	// PDF y grows upwards
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].yMax > buckets[j].yMax
	})

	rows := make([][]pdf.Text, len(buckets))
	for i, b := range buckets {
		sort.SliceStable(b.texts, func(x, y int) bool {
			return b.texts[x].X < b.texts[y].X
		})
		rows[i] = b.texts
	}
	return rows
}

// lineText joins a row's glyphs, inserting a space wherever the horizontal
// gap to the previous glyph exceeds a fifth of the font size.
func lineText(row []pdf.Text) string {
	var sb strings.Builder
	for i, t := range row {
		if i > 0 {
			prev := row[i-1]
			gap := t.X - (prev.X + prev.W)
			if gap > math.Max(prev.FontSize, 1)*0.2 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(t.S)
	}
	return strings.TrimSpace(sb.String())
}
