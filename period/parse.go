package period

import (
	"regexp"
	"strconv"
	"strings"
)

// Form identifies the lexical shape a period token was read from.
type Form int

const (
	// QuarterForm is a "Qn YYYY" token.
	QuarterForm Form = iota
	// HalfForm is an "Hn YYYY" token mapped onto a quarter.
	HalfForm
	// YearForm is a bare four-digit year.
	YearForm
)

// String returns the string representation of the form.
func (f Form) String() string {
	switch f {
	case QuarterForm:
		return "quarter"
	case HalfForm:
		return "half"
	case YearForm:
		return "year"
	default:
		return "unknown"
	}
}

// Token is one recognized period occurrence in a string.
type Token struct {
	Period Period
	Form   Form
	Text   string // matched substring
	Start  int    // byte offset of the match
	End    int
}

// rule is one entry of the recognition table. Rules earlier in the table win
// when two rules could match at the same offset.
type rule struct {
	form  Form
	expr  string
	build func(groups []string) (Period, bool)
}

var rules = []rule{
	{
		form: QuarterForm,
		expr: `Q(\d)\s?\.?(\d{4})`,
		build: func(g []string) (Period, bool) {
			return Quarter(atoi(g[1]), atoi(g[0]))
		},
	},
	{
		form: HalfForm,
		expr: `[H#](\d)\s?\.?(\d{4})`,
		build: func(g []string) (Period, bool) {
			switch g[0] {
			case "1":
				return Quarter(atoi(g[1]), 2)
			case "2":
				return Quarter(atoi(g[1]), 4)
			}
			return Period{}, false
		},
	},
	{
		form: YearForm,
		expr: `\b(\d{4})\b`,
		build: func(g []string) (Period, bool) {
			return Year(atoi(g[0])), true
		},
	},
}

// matcher is the rule table compiled into a single leftmost-first
// alternation. offsets[i] is the index of rule i's outer capture group.
type matcher struct {
	rules   []rule
	re      *regexp.Regexp
	offsets []int
	widths  []int
}

var defaultMatcher = compileRules(rules)

func compileRules(rs []rule) *matcher {
	m := &matcher{
		rules:   rs,
		offsets: make([]int, len(rs)),
		widths:  make([]int, len(rs)),
	}
	parts := make([]string, len(rs))
	group := 1
	for i, r := range rs {
		parts[i] = "(" + r.expr + ")"
		m.offsets[i] = group
		m.widths[i] = regexp.MustCompile(r.expr).NumSubexp()
		group += 1 + m.widths[i]
	}
	m.re = regexp.MustCompile(strings.Join(parts, "|"))
	return m
}

// ParseTokens returns every period recognized in s, left to right.
func ParseTokens(s string) []Token {
	return defaultMatcher.tokens(s)
}

// Parse returns the periods recognized in s, left to right.
func Parse(s string) []Period {
	tokens := ParseTokens(s)
	if len(tokens) == 0 {
		return nil
	}
	periods := make([]Period, len(tokens))
	for i, tok := range tokens {
		periods[i] = tok.Period
	}
	return periods
}

func (m *matcher) tokens(s string) []Token {
	var out []Token
	for _, loc := range m.re.FindAllStringSubmatchIndex(s, -1) {
		for i, r := range m.rules {
			g := m.offsets[i]
			if loc[2*g] < 0 {
				continue
			}
			groups := make([]string, m.widths[i])
			for k := range groups {
				start, end := loc[2*(g+1+k)], loc[2*(g+1+k)+1]
				if start >= 0 {
					groups[k] = s[start:end]
				}
			}
			if p, ok := r.build(groups); ok {
				out = append(out, Token{
					Period: p,
					Form:   r.form,
					Text:   s[loc[0]:loc[1]],
					Start:  loc[0],
					End:    loc[1],
				})
			}
			break
		}
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
