package period

import (
	"fmt"
	"sort"
	"strconv"
)

// Frequency is the reporting frequency of a Period.
type Frequency int

const (
	// Annual periods cover a calendar year and carry no quarter.
	Annual Frequency = iota
	// Quarterly periods carry a quarter in 1..4.
	Quarterly
)

// String returns the string representation of the frequency.
func (f Frequency) String() string {
	switch f {
	case Quarterly:
		return "quarterly"
	default:
		return "annual"
	}
}

// Period is a canonical reporting time bucket. The zero Quarter means the
// period is annual. Periods are comparable with ==.
type Period struct {
	Year    int
	Quarter int
	Freq    Frequency
}

// Quarter returns the quarterly period for year and quarter q.
// It reports false when q is outside 1..4.
func Quarter(year, q int) (Period, bool) {
	if q < 1 || q > 4 {
		return Period{}, false
	}
	return Period{Year: year, Quarter: q, Freq: Quarterly}, true
}

// Year returns the annual period for year.
func Year(year int) Period {
	return Period{Year: year, Freq: Annual}
}

// IsZero reports whether p is the zero Period.
func (p Period) IsZero() bool {
	return p == Period{}
}

// String renders the period as "2023Q1" or "2023".
func (p Period) String() string {
	if p.Freq == Quarterly {
		return fmt.Sprintf("%04dQ%d", p.Year, p.Quarter)
	}
	return fmt.Sprintf("%04d", p.Year)
}

// Compare orders periods by year, then quarter. An annual period sorts
// before the quarters of the same year.
func (p Period) Compare(other Period) int {
	switch {
	case p.Year < other.Year:
		return -1
	case p.Year > other.Year:
		return 1
	case p.Quarter < other.Quarter:
		return -1
	case p.Quarter > other.Quarter:
		return 1
	case p.Freq < other.Freq:
		return -1
	case p.Freq > other.Freq:
		return 1
	}
	return 0
}

// Before reports whether p sorts before other.
func (p Period) Before(other Period) bool {
	return p.Compare(other) < 0
}

// Sort sorts periods in ascending chronological order.
func Sort(periods []Period) {
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].Before(periods[j])
	})
}

// ParseOne parses a canonical period string as produced by String
// ("2023Q1" or "2023"). It is the inverse of String.
func ParseOne(s string) (Period, bool) {
	switch len(s) {
	case 4:
		y, err := strconv.Atoi(s)
		if err != nil {
			return Period{}, false
		}
		return Year(y), true
	case 6:
		if s[4] != 'Q' {
			return Period{}, false
		}
		y, err := strconv.Atoi(s[:4])
		if err != nil {
			return Period{}, false
		}
		q, err := strconv.Atoi(s[5:])
		if err != nil {
			return Period{}, false
		}
		return Quarter(y, q)
	}
	return Period{}, false
}
