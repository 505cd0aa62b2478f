package fixedcsv

import (
	"errors"
	"fmt"
)

var (
	// ErrRowOutOfRange is returned when a row index is negative or not less than the number of rows.
	ErrRowOutOfRange = errors.New("fixedcsv: row index out of range")
	// ErrUnknownColumn is returned by Table.Lookup for a name absent from the header.
	ErrUnknownColumn = errors.New("fixedcsv: unknown column")
)

// Row is one parsed line, positionally aligned with the column names of its Table.
type Row []string

// Table holds the header and rows of a fixed-width CSV file. It is read-only once built and safe
// for concurrent readers.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable takes ownership of columns and rows. Every row must have len(columns) fields.
// Duplicate column names are accepted.
func NewTable(columns []string, rows []Row) (*Table, error) {
	if len(columns) < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrColumnCount, len(columns))
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrFieldCount, i, len(row), len(columns))
		}
	}
	return &Table{columns: columns, rows: rows}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// NumColumns returns the column count N.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// Columns returns the column names. The slice is shared with the Table and must not be modified.
func (t *Table) Columns() []string {
	return t.columns
}

// Fields returns the row at index. The slice is shared with the Table and must not be modified.
func (t *Table) Fields(index int) (Row, error) {
	if index < 0 || index >= len(t.rows) {
		return nil, fmt.Errorf("%w: index %d, %d rows", ErrRowOutOfRange, index, len(t.rows))
	}
	return t.rows[index], nil
}

// Row returns a view of the row at index mapping each column name to its field. When a name
// occurs more than once the rightmost column wins.
func (t *Table) Row(index int) (map[string]string, error) {
	row, err := t.Fields(index)
	if err != nil {
		return nil, err
	}
	view := make(map[string]string, len(t.columns))
	for i, name := range t.columns {
		view[name] = row[i]
	}
	return view, nil
}

// Lookup returns a single field of the row at index. When a name occurs more than once the
// leftmost column wins.
func (t *Table) Lookup(index int, name string) (string, error) {
	row, err := t.Fields(index)
	if err != nil {
		return "", err
	}
	for i, col := range t.columns {
		if col == name {
			return row[i], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}
