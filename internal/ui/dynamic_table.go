package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// DynamicTable lays out key/value pairs with the separator aligned across
// rows regardless of ANSI color codes. It renders single Razor items.
type DynamicTable struct {
	rows []DynamicRow
}

// DynamicRow represents a key-value pair for display
type DynamicRow struct {
	Key   string
	Value string
}

// NewDynamicTable creates a new dynamic table instance
func NewDynamicTable() *DynamicTable {
	return &DynamicTable{
		rows: make([]DynamicRow, 0),
	}
}

// Add appends a key-value row to the table
func (dt *DynamicTable) Add(key, value string) *DynamicTable {
	dt.rows = append(dt.rows, DynamicRow{Key: key, Value: value})
	return dt
}

// AddIf conditionally adds a row only if the condition is true
func (dt *DynamicTable) AddIf(condition bool, key, value string) *DynamicTable {
	if condition {
		dt.Add(key, value)
	}
	return dt
}

// AddColored adds a row whose value is passed through colorFunc.
func (dt *DynamicTable) AddColored(key string, value string, colorFunc func(string) string) *DynamicTable {
	return dt.Add(key, colorFunc(value))
}

// AddStatus adds a row colored by StatusColor.
func (dt *DynamicTable) AddStatus(key, status string) *DynamicTable {
	return dt.Add(key, StatusColor(status)("%s", status))
}

// AddBool adds a boolean value with automatic ENABLED/DISABLED coloring
func (dt *DynamicTable) AddBool(key string, enabled bool) *DynamicTable {
	if enabled {
		return dt.AddStatus(key, "ENABLED")
	}
	return dt.AddStatus(key, "DISABLED")
}

// Render prints the table to stdout.
func (dt *DynamicTable) Render() {
	_ = dt.Write(stdout)
}

// Write prints the table to w with every separator in the same column.
func (dt *DynamicTable) Write(w io.Writer) error {
	if len(dt.rows) == 0 {
		return nil
	}

	maxKeyWidth := 0
	for _, row := range dt.rows {
		if width := calculateVisibleWidth(row.Key); width > maxKeyWidth {
			maxKeyWidth = width
		}
	}

	for _, row := range dt.rows {
		key := padANSIString(color.YellowString(row.Key), maxKeyWidth)
		if _, err := fmt.Fprintf(w, "%s │ %s\n", key, row.Value); err != nil {
			return err
		}
	}
	return nil
}

// RenderSection renders the table with a section header
func (dt *DynamicTable) RenderSection(sectionTitle string) {
	if sectionTitle != "" {
		Outf("\n%s:\n", color.CyanString(sectionTitle))
	}
	dt.Render()
}

// Clear removes all rows from the table
func (dt *DynamicTable) Clear() *DynamicTable {
	dt.rows = dt.rows[:0]
	return dt
}

// Count returns the number of rows in the table
func (dt *DynamicTable) Count() int {
	return len(dt.rows)
}

// IsEmpty returns true if the table has no rows
func (dt *DynamicTable) IsEmpty() bool {
	return len(dt.rows) == 0
}

// calculateVisibleWidth returns the printable width of a string, excluding ANSI codes
func calculateVisibleWidth(s string) int {
	return visibleLength(s)
}

// padANSIString pads an ANSI-colored string to the specified width
func padANSIString(s string, width int) string {
	visibleLen := calculateVisibleWidth(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
