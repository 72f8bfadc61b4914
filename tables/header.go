package tables

import (
	"regexp"
	"strings"

	"github.com/tsawler/fintab/period"
)

// headerTokenPattern counts period-shaped tokens. It is looser than the period
// parser: "Total 2023" counts here but yields no period.
var headerTokenPattern = regexp.MustCompile(`((?:Q|H)\d|Total)\s?\.?\d{4}|\b\d{4}\b`)

// Header is the detected period header of a document.
type Header struct {
	Line   int    // index of the header line, -1 if none was found
	Text   string // header line after OCR normalization
	Tokens []period.Token
}

// Found reports whether a header line was detected.
func (h Header) Found() bool {
	return h.Line >= 0
}

// Periods returns the header periods in left-to-right order.
func (h Header) Periods() []period.Period {
	if len(h.Tokens) == 0 {
		return nil
	}
	out := make([]period.Period, len(h.Tokens))
	for i, tok := range h.Tokens {
		out[i] = tok.Period
	}
	return out
}

// Marked reports whether the header carries quarter or half-year markers,
// whose digits would otherwise read as numeric tokens.
func (h Header) Marked() bool {
	for _, tok := range h.Tokens {
		if tok.Form == period.QuarterForm || tok.Form == period.HalfForm {
			return true
		}
	}
	return false
}

// DetectHeader returns the first line with at least two period-shaped
// tokens, parsed into periods. The left-to-right order of the periods is
// assumed to match the order of the numeric columns below.
func DetectHeader(lines []string) Header {
	return detectHeader(lines, DefaultConfig().MinHeaderPeriods)
}

func detectHeader(lines []string, minPeriods int) Header {
	for i, line := range lines {
		// "#" is a common OCR misread of "H"
		line = strings.ReplaceAll(line, "#", "H")
		if len(headerTokenPattern.FindAllString(line, -1)) < minPeriods {
			continue
		}
		return Header{
			Line:   i,
			Text:   line,
			Tokens: period.ParseTokens(line),
		}
	}
	return Header{Line: -1}
}
