package fintab

import (
	"github.com/tsawler/fintab/model"
	"github.com/tsawler/fintab/tables"
)

// Status summarizes the outcome for one document.
type Status int

const (
	// StatusParsed means a table with at least one row was rebuilt.
	StatusParsed Status = iota
	// StatusNoData means the text was read but held no data rows.
	StatusNoData
	// StatusFailed means the text could not be acquired.
	StatusFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusParsed:
		return "parsed"
	case StatusNoData:
		return "no data"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DocumentResult is the outcome for one input file.
type DocumentResult struct {
	Path     string
	Status   Status
	Table    *model.Table // nil when Status is StatusFailed
	Warnings []Warning
	Err      error // set when Status is StatusFailed
}

// Message returns a one-line status suitable for display next to the file.
func (r DocumentResult) Message() string {
	switch r.Status {
	case StatusParsed:
		return "Successfully parsed."
	case StatusNoData:
		return "Could not parse data."
	default:
		return "Error: " + r.Err.Error()
	}
}

// CombineResults combines the tables of results, skipping failed documents.
// See ProcessDocuments for precedence.
func CombineResults(results []DocumentResult, precedence ...string) *model.CombinedResult {
	all := make([]*model.Table, 0, len(results))
	for _, r := range results {
		if r.Table != nil {
			all = append(all, r.Table)
		}
	}
	return tables.Combine(all, precedence...)
}

func newResult(path string, table *model.Table, warnings []Warning) DocumentResult {
	status := StatusParsed
	if table.IsEmpty() {
		status = StatusNoData
	}
	return DocumentResult{Path: path, Status: status, Table: table, Warnings: warnings}
}

func failedResult(path string, err error) DocumentResult {
	return DocumentResult{
		Path:   path,
		Status: StatusFailed,
		Err:    err,
		Warnings: []Warning{{
			Code:     model.WarnExtractionFailed,
			Document: path,
			Message:  "could not extract text",
			Err:      err,
		}},
	}
}
