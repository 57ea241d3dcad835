// Package view describes how a Razor collection is laid out as a table: which
// field feeds each column and which transform turns it into text.
package view

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dantech2000/razorctl/internal/transforms"
)

// ErrUnknownView is returned when a view name is not registered.
var ErrUnknownView = errors.New("unknown view")

// Column maps one record field to one table column.
type Column struct {
	Label     string `yaml:"label" json:"label"`
	Path      string `yaml:"path,omitempty" json:"path,omitempty"`
	Transform string `yaml:"transform,omitempty" json:"transform,omitempty"`
	Status    bool   `yaml:"status,omitempty" json:"status,omitempty"`
	Max       int    `yaml:"max,omitempty" json:"max,omitempty"`
}

// TransformName returns the transform applied to the column.
func (c Column) TransformName() string {
	if c.Transform == "" {
		return "identity"
	}
	return c.Transform
}

// Value selects the column's field from a record. An empty path or @this
// selects the record itself.
func (c Column) Value(record gjson.Result) gjson.Result {
	if c.Path == "" || c.Path == "@this" {
		return record
	}
	return record.Get(c.Path)
}

// View is an ordered set of columns for one collection.
type View struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []Column `yaml:"columns" json:"columns"`
	Detail  []Column `yaml:"detail,omitempty" json:"detail,omitempty"`
}

// Cell is one rendered table cell.
type Cell struct {
	Text   string
	Hidden bool
}

// Validate checks that the view is usable.
func (v View) Validate() error {
	if v.Name == "" {
		return errors.New("view has no name")
	}
	if len(v.Columns) == 0 {
		return fmt.Errorf("view %q has no columns", v.Name)
	}
	for _, cols := range [][]Column{v.Columns, v.Detail} {
		for i, c := range cols {
			if c.Label == "" {
				return fmt.Errorf("view %q: column %d has no label", v.Name, i+1)
			}
			if _, ok := transforms.Lookup(c.TransformName()); !ok {
				return fmt.Errorf("view %q, column %q: %w: %q", v.Name, c.Label, transforms.ErrUnknownTransform, c.TransformName())
			}
		}
	}
	return nil
}

// DetailColumns returns the layout used for a single item.
func (v View) DetailColumns() []Column {
	if len(v.Detail) > 0 {
		return v.Detail
	}
	return v.Columns
}

// Row renders a record with the list columns.
func (v View) Row(record gjson.Result) ([]Cell, error) {
	return renderCells(v.Columns, record)
}

// DetailRow renders a record with the detail columns.
func (v View) DetailRow(record gjson.Result) ([]Cell, error) {
	return renderCells(v.DetailColumns(), record)
}

func renderCells(cols []Column, record gjson.Result) ([]Cell, error) {
	cells := make([]Cell, len(cols))
	for i, c := range cols {
		res, err := transforms.Apply(c.TransformName(), c.Value(record))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Label, err)
		}
		cells[i] = Cell{Text: res.Text, Hidden: res.Hidden}
	}
	return cells, nil
}

// Grid is a rendered table. Columns hidden in every row are already removed.
type Grid struct {
	Columns []Column
	Rows    [][]Cell
}

// Grid renders records and drops any column that every row hides. A column
// hidden in only some rows keeps an empty cell for those rows.
func (v View) Grid(records []gjson.Result) (Grid, error) {
	rows := make([][]Cell, 0, len(records))
	for i, rec := range records {
		cells, err := v.Row(rec)
		if err != nil {
			return Grid{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, cells)
	}

	keep := make([]int, 0, len(v.Columns))
	for col := range v.Columns {
		if len(rows) == 0 || !hiddenEverywhere(rows, col) {
			keep = append(keep, col)
		}
	}

	g := Grid{Columns: make([]Column, len(keep)), Rows: make([][]Cell, len(rows))}
	for i, col := range keep {
		g.Columns[i] = v.Columns[col]
	}
	for r, cells := range rows {
		out := make([]Cell, len(keep))
		for i, col := range keep {
			out[i] = cells[col]
		}
		g.Rows[r] = out
	}
	return g, nil
}

func hiddenEverywhere(rows [][]Cell, col int) bool {
	for _, cells := range rows {
		if !cells[col].Hidden {
			return false
		}
	}
	return true
}

// Labels returns the column labels of the grid.
func (g Grid) Labels() []string {
	labels := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		labels[i] = c.Label
	}
	return labels
}

// Strings returns the grid cells as text, with hidden cells empty.
func (g Grid) Strings() [][]string {
	out := make([][]string, len(g.Rows))
	for r, cells := range g.Rows {
		row := make([]string, len(cells))
		for i, c := range cells {
			if !c.Hidden {
				row[i] = c.Text
			}
		}
		out[r] = row
	}
	return out
}

// Records extracts table rows from an API document: an array is used as is,
// an object with an items array yields the items, any other object is a
// single record.
func Records(doc gjson.Result) []gjson.Result {
	switch {
	case doc.IsArray():
		return doc.Array()
	case doc.IsObject():
		if items := doc.Get("items"); items.IsArray() {
			return items.Array()
		}
		return []gjson.Result{doc}
	}
	return nil
}
