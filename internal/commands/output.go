package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dantech2000/razorctl/internal/ui"
	"github.com/dantech2000/razorctl/internal/view"
)

// Output formats and table styles accepted by --format and --style.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"

	styleBox   = "box"
	stylePterm = "pterm"
)

func validateFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "", formatTable:
		return formatTable, nil
	case formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
}

func validateStyle(style string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(style))
	switch s {
	case "", styleBox:
		return styleBox, nil
	case stylePterm:
		return s, nil
	}
	return "", fmt.Errorf("unsupported table style %q (use box or pterm)", style)
}

// field is one labelled cell in structured output.
type field struct {
	Key   string
	Value string
}

// orderedRow keeps column order when encoded as JSON or YAML. Hidden cells
// are left out.
type orderedRow []field

func newOrderedRow(cols []view.Column, cells []view.Cell) orderedRow {
	row := make(orderedRow, 0, len(cells))
	for i, c := range cells {
		if c.Hidden {
			continue
		}
		row = append(row, field{Key: cols[i].Label, Value: c.Text})
	}
	return row
}

func (r orderedRow) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (r orderedRow) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value},
		)
	}
	return node, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer func() {
		_ = encoder.Close() // Ignore close errors for output streams
	}()
	return encoder.Encode(v)
}

// renderList writes records laid out by v in the requested format.
func renderList(w io.Writer, v view.View, records []gjson.Result, format, style string) error {
	grid, err := v.Grid(records)
	if err != nil {
		return err
	}

	switch format {
	case formatJSON, formatYAML:
		rows := make([]orderedRow, len(grid.Rows))
		for i, cells := range grid.Rows {
			rows[i] = newOrderedRow(grid.Columns, cells)
		}
		if format == formatJSON {
			return writeJSON(w, rows)
		}
		return writeYAML(w, rows)
	}

	if len(grid.Rows) == 0 {
		_, err := fmt.Fprintln(w, color.YellowString("No %s found", v.Name))
		return err
	}
	return writeGrid(w, grid, style)
}

func writeGrid(w io.Writer, grid view.Grid, style string) error {
	columns := make([]ui.Column, len(grid.Columns))
	for i, c := range grid.Columns {
		columns[i] = ui.Column{Title: strings.ToUpper(c.Label), Min: len(c.Label), Max: c.Max, Align: ui.AlignLeft}
	}
	header := func(s string) string { return color.CyanString(s) }
	cellColor := func(col int, text string) string {
		if grid.Columns[col].Status && !ui.IsPlaceholder(text) {
			return ui.StatusColor(text)("%s", text)
		}
		return ui.Placeholder(text)
	}

	if style == stylePterm {
		table := ui.NewPTable(columns, ui.WithPTableHeaderColor(header))
		for _, row := range grid.Strings() {
			colored := make([]string, len(row))
			for i, text := range row {
				colored[i] = cellColor(i, text)
			}
			table.AddRow(colored...)
		}
		return table.Write(w)
	}

	table := ui.NewTable(columns, ui.WithHeaderColor(header), ui.WithCellColor(cellColor))
	for _, row := range grid.Strings() {
		table.AddRow(row...)
	}
	return table.Write(w)
}

// renderDetail writes a single record with the view's detail columns.
func renderDetail(w io.Writer, v view.View, title string, record gjson.Result, format string) error {
	cols := v.DetailColumns()
	cells, err := v.DetailRow(record)
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		return writeJSON(w, newOrderedRow(cols, cells))
	case formatYAML:
		return writeYAML(w, newOrderedRow(cols, cells))
	}

	if _, err := fmt.Fprintf(w, "%s %s\n\n", color.CyanString(strings.TrimSuffix(v.Name, "s")), title); err != nil {
		return err
	}
	table := ui.NewDynamicTable()
	for i, c := range cells {
		if c.Hidden {
			continue
		}
		if cols[i].Status && !ui.IsPlaceholder(c.Text) {
			table.AddStatus(cols[i].Label, c.Text)
			continue
		}
		table.Add(cols[i].Label, ui.Placeholder(c.Text))
	}
	return table.Write(w)
}
