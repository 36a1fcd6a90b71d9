// Package sheets reads and appends rows of a spreadsheet used as the
// operator's database.
package sheets

import (
	"context"
	"errors"
)

// ErrNoTable is returned when a sheet with the requested title does not exist.
var ErrNoTable = errors.New("sheet not found")

// Record is one data row keyed by the header row's titles.
// Cells missing from a short row read as "".
type Record map[string]string

func (r Record) Get(key string) string {
	if r == nil {
		return ""
	}
	return r[key]
}

// Store is the contract every driver satisfies. Reads are header-keyed,
// appends are positional: the column order of values is fixed per table.
type Store interface {
	ReadTable(ctx context.Context, name string) ([]Record, error)
	AppendRow(ctx context.Context, name string, values []any) error
}

// Prober is implemented by drivers that can cheaply check the credential.
type Prober interface {
	Probe(ctx context.Context) error
}

// recordsFromRows turns a header row plus data rows into records.
func recordsFromRows(rows [][]string) []Record {
	if len(rows) == 0 {
		return []Record{}
	}
	headers := rows[0]
	out := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		out = append(out, rec)
	}
	return out
}
