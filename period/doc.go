// Package period recognizes reporting periods in OCR text and models them as
// canonical time buckets.
//
// A [Period] is either quarterly (2023Q1) or annual (2023). Three lexical
// shapes are recognized, in this order of precedence:
//
//   - quarter form: "Q1 2023", "Q1.2023", "Q12023"
//   - half form: "H1 2023", "#2 2023" (an OCR misread of H); H1 maps to Q2
//     and H2 maps to Q4
//   - bare year: "2023"
//
// A year that belongs to a quarter or half token is never reported again as a
// bare year. Tokens that match a shape but fail canonicalization (for example
// "Q5 2023") are dropped without error.
//
// # Parsing
//
//	periods := period.Parse("Q4 2022   Q1 2023   Q2 2023")
//	// [2022Q4 2023Q1 2023Q2]
//
// [ParseTokens] returns the same matches with their offsets and the [Form]
// they were read from, so callers can tell a half-year column from a true
// quarter.
package period
