package model

import (
	"fmt"
	"strings"

	"github.com/tsawler/fintab/period"
)

// DescriptionHeader is the header of the implicit first column.
const DescriptionHeader = "Description"

// DataRow is one line item with its normalized values, one per column.
type DataRow struct {
	Description string
	Values      []string
}

// Table is the reconstruction of one document.
type Table struct {
	Document string // ID of the source document
	Columns  []ColumnLabel
	Rows     []DataRow
}

// NewTable creates an empty table for document with the given columns.
func NewTable(document string, columns []ColumnLabel) *Table {
	return &Table{
		Document: document,
		Columns:  columns,
		Rows:     make([]DataRow, 0),
	}
}

// AddRow appends a row. The row must carry one value per column.
func (t *Table) AddRow(row DataRow) error {
	if len(row.Values) != len(t.Columns) {
		return fmt.Errorf("row %q has %d values, table has %d columns",
			row.Description, len(row.Values), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of value columns, not counting the description.
func (t *Table) ColCount() int {
	return len(t.Columns)
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// Sortable reports whether every column is labeled with a period.
func (t *Table) Sortable() bool {
	if t == nil || len(t.Columns) == 0 {
		return false
	}
	for _, c := range t.Columns {
		if c.Kind() != PeriodKind {
			return false
		}
	}
	return true
}

// Periods returns the period of each column, or nil if the table is not
// sortable.
func (t *Table) Periods() []period.Period {
	if !t.Sortable() {
		return nil
	}
	out := make([]period.Period, len(t.Columns))
	for i, c := range t.Columns {
		out[i], _ = c.Period()
	}
	return out
}

// Header returns the header row including the description column.
func (t *Table) Header() []string {
	header := make([]string, 0, len(t.Columns)+1)
	header = append(header, DescriptionHeader)
	for _, c := range t.Columns {
		header = append(header, c.String())
	}
	return header
}

// Records returns the data rows as string slices, description first.
func (t *Table) Records() [][]string {
	records := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		records[i] = append([]string{row.Description}, row.Values...)
	}
	return records
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	if t.IsEmpty() {
		return ""
	}
	return renderMarkdown(t.Header(), t.Records())
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	return renderCSV(t.Header(), t.Records())
}

// renderMarkdown writes a header row, a separator and the records as a
// markdown table. Short records are padded with empty cells.
func renderMarkdown(header []string, records [][]string) string {
	var sb strings.Builder

	writeRow := func(cells []string) {
		for j := range header {
			text := ""
			if j < len(cells) {
				text = cells[j]
			}
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(text, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(header)
	for range header {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, rec := range records {
		writeRow(rec)
	}

	return sb.String()
}

// renderCSV writes the header and records as CSV.
func renderCSV(header []string, records [][]string) string {
	var sb strings.Builder
	writeRow := func(cells []string) {
		for j, text := range cells {
			// Escape quotes and wrap in quotes if necessary
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(cells)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}

	writeRow(header)
	for _, rec := range records {
		writeRow(rec)
	}
	return sb.String()
}
