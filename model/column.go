package model

import (
	"fmt"

	"github.com/tsawler/fintab/period"
)

// ColumnKind tags the variant held by a ColumnLabel.
type ColumnKind int

const (
	// GenericKind labels a column "Value i".
	GenericKind ColumnKind = iota
	// PeriodKind labels a column with a reporting period.
	PeriodKind
)

// String returns the string representation of the kind.
func (k ColumnKind) String() string {
	switch k {
	case PeriodKind:
		return "period"
	default:
		return "generic"
	}
}

// ColumnLabel names one value column of a Table. It holds either a period or
// a 1-based generic index, selected by Kind.
type ColumnLabel struct {
	kind   ColumnKind
	period period.Period
	index  int
}

// PeriodColumn returns a label for period p.
func PeriodColumn(p period.Period) ColumnLabel {
	return ColumnLabel{kind: PeriodKind, period: p}
}

// GenericColumn returns the label "Value i" (1-based).
func GenericColumn(i int) ColumnLabel {
	return ColumnLabel{kind: GenericKind, index: i}
}

// PeriodColumns labels columns with periods, in order.
func PeriodColumns(periods []period.Period) []ColumnLabel {
	cols := make([]ColumnLabel, len(periods))
	for i, p := range periods {
		cols[i] = PeriodColumn(p)
	}
	return cols
}

// GenericColumns returns "Value 1" through "Value n".
func GenericColumns(n int) []ColumnLabel {
	cols := make([]ColumnLabel, n)
	for i := range cols {
		cols[i] = GenericColumn(i + 1)
	}
	return cols
}

// Kind returns the variant of the label.
func (c ColumnLabel) Kind() ColumnKind { return c.kind }

// Period returns the label's period. It reports false for generic labels.
func (c ColumnLabel) Period() (period.Period, bool) {
	return c.period, c.kind == PeriodKind
}

// Index returns the 1-based index of a generic label, or 0 for period labels.
func (c ColumnLabel) Index() int {
	if c.kind != GenericKind {
		return 0
	}
	return c.index
}

// String renders the label as it appears in a table header.
func (c ColumnLabel) String() string {
	if c.kind == PeriodKind {
		return c.period.String()
	}
	return fmt.Sprintf("Value %d", c.index)
}
