package tables

import (
	"sort"
	"strconv"

	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/period"
)

// Order returns tables in processing order. Tables whose Document appears in
// precedence come first, in precedence order; the rest follow in input order.
// With no precedence the input order is kept.
func Order(tables []*model.Table, precedence []string) []*model.Table {
	out := append([]*model.Table(nil), tables...)
	if len(precedence) == 0 {
		return out
	}

	rank := make(map[string]int, len(precedence))
	for i, id := range precedence {
		if _, dup := rank[id]; !dup {
			rank[id] = i
		}
	}
	rankOf := func(t *model.Table) int {
		if r, ok := rank[t.Document]; ok {
			return r
		}
		return len(precedence)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(out[i]) < rankOf(out[j])
	})
	return out
}

// Combine merges per-document tables into a chronologically sorted table and
// a stack of the tables that could not be labeled with periods.
//
// When two documents report a value for the same description and period,
// the one processed first wins; later values are discarded, never merged.
// precedence fixes the processing order (see Order). Empty tables are
// skipped. Combine never fails: with no usable input both outputs are empty.
func Combine(tables []*model.Table, precedence ...string) *model.CombinedResult {
	var sortable []*model.Table
	unsorted := &model.StackedTable{}

	for _, t := range Order(tables, precedence) {
		if t.IsEmpty() {
			continue
		}
		if t.Sortable() {
			sortable = append(sortable, t)
		} else {
			unsorted.Parts = append(unsorted.Parts, t)
		}
	}

	return &model.CombinedResult{
		Sorted:   pivot(melt(sortable)),
		Unsorted: unsorted,
	}
}

// observation is one (description, period, value) triple of the long form.
type observation struct {
	description string
	period      period.Period
	value       string
}

// melt turns wide tables into observations, dropping values that do not
// parse as numbers and keeping only the first value per description and
// period.
func melt(tables []*model.Table) []observation {
	type key struct {
		description string
		period      period.Period
	}
	seen := make(map[key]bool)

	var out []observation
	for _, t := range tables {
		periods := t.Periods()
		for _, row := range t.Rows {
			for i, v := range row.Values {
				if _, err := strconv.ParseFloat(v, 64); err != nil {
					continue
				}
				k := key{row.Description, periods[i]}
				if seen[k] {
					continue
				}
				seen[k] = true
				out = append(out, observation{row.Description, periods[i], v})
			}
		}
	}
	return out
}

// pivot turns observations back into a wide table with one row per
// description, in order of first occurrence, and one column per period,
// ascending.
func pivot(obs []observation) *model.PeriodTable {
	pt := &model.PeriodTable{}
	if len(obs) == 0 {
		return pt
	}

	rowIndex := make(map[string]int)
	periodSet := make(map[period.Period]bool)
	for _, o := range obs {
		if _, ok := rowIndex[o.description]; !ok {
			rowIndex[o.description] = len(pt.Rows)
			pt.Rows = append(pt.Rows, model.PeriodRow{Description: o.description})
		}
		if !periodSet[o.period] {
			periodSet[o.period] = true
			pt.Periods = append(pt.Periods, o.period)
		}
	}
	period.Sort(pt.Periods)

	colIndex := make(map[period.Period]int, len(pt.Periods))
	for i, p := range pt.Periods {
		colIndex[p] = i
	}
	for i := range pt.Rows {
		pt.Rows[i].Cells = make([]model.Cell, len(pt.Periods))
	}
	for _, o := range obs {
		pt.Rows[rowIndex[o.description]].Cells[colIndex[o.period]] = model.Cell{Value: o.value, Present: true}
	}
	return pt
}
