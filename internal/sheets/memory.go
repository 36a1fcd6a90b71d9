package sheets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps sheets in process. It backs tests and the memory driver.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string][][]string

	// ReadErr, when set for a table, fails every read of it.
	ReadErr map[string]error
	// BeforeAppend may veto an append; the row is not stored on error.
	BeforeAppend func(name string, values []any) error
	// ProbeErr is returned by Probe.
	ProbeErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables:  map[string][][]string{},
		ReadErr: map[string]error{},
	}
}

// SetTable replaces a sheet with a header row and data rows.
func (m *MemoryStore) SetTable(name string, header []string, rows ...[]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := make([][]string, 0, len(rows)+1)
	table = append(table, append([]string(nil), header...))
	for _, r := range rows {
		table = append(table, append([]string(nil), r...))
	}
	m.tables[name] = table
}

// Rows returns a copy of a sheet's data rows, header excluded.
func (m *MemoryStore) Rows(name string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := m.tables[name]
	if len(table) < 2 {
		return nil
	}
	out := make([][]string, 0, len(table)-1)
	for _, r := range table[1:] {
		out = append(out, append([]string(nil), r...))
	}
	return out
}

func (m *MemoryStore) ReadTable(ctx context.Context, name string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ReadErr[name]; err != nil {
		return nil, err
	}
	table, ok := m.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoTable, name)
	}
	return recordsFromRows(table), nil
}

func (m *MemoryStore) AppendRow(ctx context.Context, name string, values []any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.BeforeAppend != nil {
		if err := m.BeforeAppend(name, values); err != nil {
			return err
		}
	}
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = fmt.Sprint(v)
	}
	if _, ok := m.tables[name]; !ok {
		// a sheet without a header row; the first append becomes row 1
		m.tables[name] = [][]string{}
	}
	m.tables[name] = append(m.tables[name], row)
	return nil
}

func (m *MemoryStore) Probe(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.ProbeErr
}
