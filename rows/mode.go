package rows

import "github.com/tsawler/fintab/model"

// SelectMode keeps the candidates whose column count equals the most common
// column count and returns them with that count. When two counts are equally
// common, the count seen first in candidate order wins. An empty input
// returns no rows and a mode of 0.
func SelectMode(candidates []Candidate) ([]Candidate, int) {
	if len(candidates) == 0 {
		return nil, 0
	}

	freq := make(map[int]int)
	var order []int
	for _, c := range candidates {
		n := c.NumColumns()
		if freq[n] == 0 {
			order = append(order, n)
		}
		freq[n]++
	}

	mode := order[0]
	for _, n := range order[1:] {
		if freq[n] > freq[mode] {
			mode = n
		}
	}

	kept := make([]Candidate, 0, freq[mode])
	for _, c := range candidates {
		if c.NumColumns() == mode {
			kept = append(kept, c)
		}
	}
	return kept, mode
}

// DataRows converts candidates into data rows with normalized values.
func DataRows(candidates []Candidate) []model.DataRow {
	out := make([]model.DataRow, len(candidates))
	for i, c := range candidates {
		out[i] = model.DataRow{
			Description: c.Description,
			Values:      c.Values(),
		}
	}
	return out
}
