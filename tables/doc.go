// Package tables rebuilds financial tables from OCR text and combines them
// across documents.
//
// OCR text keeps the reading order of a statement but loses its grid. The
// [Assembler] recovers the grid from two signals: the period header line and
// the number of numeric tokens on each line.
//
// # Assembly
//
// For one document the [Assembler]:
//
//  1. Finds the first line with at least two period-shaped tokens ([DetectHeader])
//  2. Collects lines with a description and two or more numeric tokens
//  3. Keeps only lines with the most common token count
//  4. Labels the columns with the header periods if their count matches,
//     otherwise with generic labels "Value 1".."Value n"
//
// A column-count mismatch with a detected header is reported as a
// [model.WarnHeaderMismatch] warning. A document without data rows yields an
// empty table and a [model.WarnNoRows] warning.
//
//	a := tables.NewAssembler()
//	table, warnings := a.Assemble("q3-report", text)
//
// # Combining
//
// [Combine] merges tables from many documents. Period-labeled tables are
// melted to (description, period, value) observations and pivoted back into
// one [model.PeriodTable] with periods ascending. The first document in
// processing order wins for any description and period it reports.
// Generic-labeled tables cannot be aligned and are stacked as they are.
//
//	result := tables.Combine(all, "annual-report", "q3-report")
//
// # Configuration
//
// Assembler behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.Denylist = []string{"memo:"}
//	a.Configure(config)
package tables
