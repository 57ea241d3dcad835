package ui

import (
	"io"

	"github.com/pterm/pterm"
)

// PTable renders the same column model as Table through pterm.
type PTable struct {
	columns     []Column
	rows        [][]string
	headerColor func(string) string
}

// PTableOption configures optional rendering behavior for a PTable.
type PTableOption func(*PTable)

// WithPTableHeaderColor sets a coloring function used for header titles.
func WithPTableHeaderColor(fn func(string) string) PTableOption {
	return func(t *PTable) { t.headerColor = fn }
}

// NewPTable creates a new pterm-based table with the given columns and options.
func NewPTable(columns []Column, opts ...PTableOption) *PTable {
	t := &PTable{columns: make([]Column, len(columns))}
	copy(t.columns, columns)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddRow appends a row. Rows of the wrong shape are dropped.
func (t *PTable) AddRow(cells ...string) {
	if len(cells) != len(t.columns) {
		return
	}
	t.rows = append(t.rows, cells)
}

// Render prints the table to stdout.
func (t *PTable) Render() {
	_ = t.Write(stdout)
}

// Write renders the table to w.
func (t *PTable) Write(w io.Writer) error {
	out, err := pterm.DefaultTable.
		WithHasHeader(true).
		WithBoxed(true).
		WithData(t.data()).
		Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}

func (t *PTable) data() pterm.TableData {
	data := make(pterm.TableData, 0, len(t.rows)+1)

	header := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = col.Title
		if t.headerColor != nil {
			header[i] = t.headerColor(col.Title)
		}
	}
	data = append(data, header)

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if limit := t.columns[i].Max; limit > 0 {
				cell = truncateANSI(cell, limit)
			}
			cells[i] = cell
		}
		data = append(data, cells)
	}
	return data
}
