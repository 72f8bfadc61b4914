// Package model defines the tables produced by the fintab pipeline.
//
// All parsing and combination operations produce these types, making them the
// primary API for consuming reconstructed financial statements.
//
// # Column Labels
//
// A [ColumnLabel] is either a period column (2023Q1, 2023) or a generic
// column ("Value 1", "Value 2", ...) used when a document's header could not
// be matched to its data. Code dispatches on [ColumnLabel.Kind]:
//
//	switch col.Kind() {
//	case model.PeriodKind:
//	    p, _ := col.Period()
//	case model.GenericKind:
//	    i := col.Index()
//	}
//
// # Tables
//
// One [Table] is produced per input document. The description column is
// implicit, so every [DataRow] carries exactly one value per column label.
// Tables whose columns are all periods are sortable.
//
// Combining tables yields a [CombinedResult]:
//
//   - [PeriodTable] - one row per description, one column per period in
//     ascending order; cells may be absent
//   - [StackedTable] - the unsortable tables stacked in processing order,
//     each keeping its own generic labels
//
// # Export
//
// Every table type renders with ToMarkdown() and ToCSV().
package model
