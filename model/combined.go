package model

import (
	"strconv"
	"strings"

	"github.com/tsawler/fintab/period"
)

// Cell is one value of a PeriodTable. Present is false for a description
// that no document reported for the column's period.
type Cell struct {
	Value   string
	Present bool
}

// PeriodRow is one description across all periods of a PeriodTable.
type PeriodRow struct {
	Description string
	Cells       []Cell // one per PeriodTable.Periods entry
}

// PeriodTable is the chronologically sorted combination of sortable tables.
type PeriodTable struct {
	Periods []period.Period // ascending
	Rows    []PeriodRow
}

// IsEmpty reports whether the table has no rows.
func (t *PeriodTable) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// RowCount returns the number of descriptions.
func (t *PeriodTable) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Descriptions returns the row descriptions in order.
func (t *PeriodTable) Descriptions() []string {
	out := make([]string, t.RowCount())
	for i, row := range t.Rows {
		out[i] = row.Description
	}
	return out
}

// Value returns the value reported for description in period p.
func (t *PeriodTable) Value(description string, p period.Period) (string, bool) {
	if t == nil {
		return "", false
	}
	col := -1
	for i, q := range t.Periods {
		if q == p {
			col = i
			break
		}
	}
	if col < 0 {
		return "", false
	}
	for _, row := range t.Rows {
		if row.Description == description {
			cell := row.Cells[col]
			return cell.Value, cell.Present
		}
	}
	return "", false
}

// Float returns the value for description in period p parsed as a float.
func (t *PeriodTable) Float(description string, p period.Period) (float64, bool) {
	v, ok := t.Value(description, p)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Header returns the header row including the description column.
func (t *PeriodTable) Header() []string {
	header := []string{DescriptionHeader}
	for _, p := range t.Periods {
		header = append(header, p.String())
	}
	return header
}

// Records returns the rows as string slices; absent cells are empty.
func (t *PeriodTable) Records() [][]string {
	records := make([][]string, t.RowCount())
	for i, row := range t.Rows {
		rec := make([]string, 0, len(row.Cells)+1)
		rec = append(rec, row.Description)
		for _, c := range row.Cells {
			rec = append(rec, c.Value)
		}
		records[i] = rec
	}
	return records
}

// ToMarkdown converts the table to markdown format
func (t *PeriodTable) ToMarkdown() string {
	if t.IsEmpty() {
		return ""
	}
	return renderMarkdown(t.Header(), t.Records())
}

// ToCSV converts the table to CSV format
func (t *PeriodTable) ToCSV() string {
	if t == nil {
		return ""
	}
	return renderCSV(t.Header(), t.Records())
}

// StackedTable is the row-wise concatenation of tables that could not be
// labeled with periods. No column alignment is attempted across parts: each
// part keeps the labels of its own document.
type StackedTable struct {
	Parts []*Table
}

// IsEmpty reports whether no part has rows.
func (s *StackedTable) IsEmpty() bool {
	return s.RowCount() == 0
}

// RowCount returns the total number of rows across parts.
func (s *StackedTable) RowCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, p := range s.Parts {
		n += p.RowCount()
	}
	return n
}

// Width returns the largest column count of any part.
func (s *StackedTable) Width() int {
	if s == nil {
		return 0
	}
	w := 0
	for _, p := range s.Parts {
		if p.ColCount() > w {
			w = p.ColCount()
		}
	}
	return w
}

// Rows returns all rows in processing order.
func (s *StackedTable) Rows() []DataRow {
	var out []DataRow
	if s == nil {
		return out
	}
	for _, p := range s.Parts {
		out = append(out, p.Rows...)
	}
	return out
}

// ToMarkdown renders each part as its own markdown table, preceded by the
// document ID, so that per-document labels stay visible.
func (s *StackedTable) ToMarkdown() string {
	if s.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for _, p := range s.Parts {
		if p.IsEmpty() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		if p.Document != "" {
			sb.WriteString("**" + p.Document + "**\n\n")
		}
		sb.WriteString(p.ToMarkdown())
	}
	return sb.String()
}

// ToCSV renders all parts in one CSV with a leading document column.
// Shorter rows are padded to the widest part.
func (s *StackedTable) ToCSV() string {
	width := s.Width()
	header := []string{"Document", DescriptionHeader}
	for _, c := range GenericColumns(width) {
		header = append(header, c.String())
	}

	var records [][]string
	if s != nil {
		for _, p := range s.Parts {
			for _, rec := range p.Records() {
				row := make([]string, 0, width+2)
				row = append(row, p.Document)
				row = append(row, rec...)
				for len(row) < width+2 {
					row = append(row, "")
				}
				records = append(records, row)
			}
		}
	}
	return renderCSV(header, records)
}

// CombinedResult pairs the sorted and unsortable outputs of a combination.
type CombinedResult struct {
	Sorted   *PeriodTable
	Unsorted *StackedTable
}

// IsEmpty reports whether both outputs are empty.
func (r *CombinedResult) IsEmpty() bool {
	return r == nil || (r.Sorted.IsEmpty() && r.Unsorted.IsEmpty())
}
