// Package rows turns OCR text lines into candidate data rows.
//
// A line is a candidate when it carries at least two numeric tokens. The
// description is everything before the first token. Numeric tokens accept an
// optional currency symbol ($ or €), thousands separators, a decimal
// fraction, and accounting parentheses for negatives:
//
//	Revenue        $1,234.56    (500)    €2,000
//
// yields the description "Revenue" and the normalized values
// "1234.56", "-500" and "2000".
//
// Because OCR drops and invents tokens, the rows of one document are filtered
// by [SelectMode], which keeps only the rows whose token count equals the
// most common count in the document.
package rows
