package rows

import (
	"regexp"
	"strings"
)

// numberPattern matches one numeric token: optional opening parenthesis,
// optional currency symbol, digits with thousands separators, an optional
// fraction and an optional closing parenthesis.
var numberPattern = regexp.MustCompile(`\(?[$€]?\d[\d,]*\.?\d*\)?`)

// DefaultDenylist holds descriptions that label sub-totals or annotations
// rather than line items. Matching is case-insensitive on the trimmed text.
var DefaultDenylist = []string{"basic", "diluted", "of which:"}

// MinTokens is the fewest numeric tokens a line needs to be a data row.
const MinTokens = 2

// Candidate is a line that looks like a data row, before column-count
// filtering.
type Candidate struct {
	Line        int      // index of the source line
	Description string   // text before the first numeric token, trimmed
	Tokens      []string // numeric tokens exactly as matched
}

// NumColumns returns the number of numeric tokens on the line.
func (c Candidate) NumColumns() int {
	return len(c.Tokens)
}

// Values returns the normalized numeric tokens.
func (c Candidate) Values() []string {
	values := make([]string, len(c.Tokens))
	for i, tok := range c.Tokens {
		values[i] = Normalize(tok)
	}
	return values
}

// Extractor finds candidate rows in text lines.
type Extractor struct {
	minTokens int
	denylist  map[string]bool
}

// NewExtractor returns an Extractor that requires minTokens numeric tokens
// per line and rejects the default denylist plus extra descriptions.
// minTokens below MinTokens is raised to MinTokens.
func NewExtractor(minTokens int, extra ...string) *Extractor {
	if minTokens < MinTokens {
		minTokens = MinTokens
	}
	e := &Extractor{
		minTokens: minTokens,
		denylist:  make(map[string]bool, len(DefaultDenylist)+len(extra)),
	}
	for _, d := range DefaultDenylist {
		e.denylist[d] = true
	}
	for _, d := range extra {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			e.denylist[d] = true
		}
	}
	return e
}

// Extract returns the candidate rows found in lines, in line order.
func (e *Extractor) Extract(lines []string) []Candidate {
	var out []Candidate
	for i, line := range lines {
		if c, ok := e.ExtractLine(line); ok {
			c.Line = i
			out = append(out, c)
		}
	}
	return out
}

// ExtractLine reports whether line is a candidate row and returns it.
// Lines with too few tokens, an empty description or a denylisted
// description are rejected.
func (e *Extractor) ExtractLine(line string) (Candidate, bool) {
	locs := numberPattern.FindAllStringIndex(line, -1)
	if len(locs) < e.minTokens {
		return Candidate{}, false
	}

	desc := strings.TrimSpace(line[:locs[0][0]])
	if desc == "" || e.denylist[strings.ToLower(desc)] {
		return Candidate{}, false
	}

	tokens := make([]string, len(locs))
	for i, loc := range locs {
		tokens[i] = line[loc[0]:loc[1]]
	}
	return Candidate{Description: desc, Tokens: tokens}, true
}
