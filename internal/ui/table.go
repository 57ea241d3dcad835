package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Alignment represents horizontal text alignment within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column defines a table column with sizing and alignment rules.
type Column struct {
	Title string
	Min   int
	Max   int
	Align Alignment
}

// Option configures optional rendering behavior for a Table.
type Option func(*Table)

// Table is an ANSI-aware box-drawn table.
type Table struct {
	columns     []Column
	rows        [][]string
	headerColor func(string) string
	cellColor   func(col int, text string) string
}

// WithHeaderColor sets a coloring function used for header titles.
func WithHeaderColor(fn func(string) string) Option {
	return func(t *Table) { t.headerColor = fn }
}

// WithCellColor sets a coloring function applied to every cell after
// truncation, so escape codes never count toward the column width.
func WithCellColor(fn func(col int, text string) string) Option {
	return func(t *Table) { t.cellColor = fn }
}

// NewTable creates a new table with the given columns and options.
func NewTable(columns []Column, opts ...Option) *Table {
	t := &Table{columns: make([]Column, len(columns))}
	copy(t.columns, columns)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddRow appends a row. The number of cells must match the number of columns.
func (t *Table) AddRow(cells ...string) {
	if len(cells) != len(t.columns) {
		if os.Getenv("RAZOR_DEBUG_TABLE") == "1" {
			Errf("table: dropped row with %d cells (expected %d)\n", len(cells), len(t.columns))
		}
		return
	}
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render prints the table to stdout.
func (t *Table) Render() {
	_ = t.Write(stdout)
}

// Write renders the table to w.
func (t *Table) Write(out io.Writer) error {
	widths := t.computeColumnWidths()
	w := bufio.NewWriterSize(out, 64*1024)

	fmt.Fprintln(w, buildBorder("┌", "┬", "┐", widths))

	var b strings.Builder
	b.WriteString("│")
	for i, col := range t.columns {
		header := truncateANSI(col.Title, widths[i])
		if t.headerColor != nil {
			header = t.headerColor(header)
		}
		b.WriteString(" ")
		b.WriteString(padANSI(header, widths[i], col.Align))
		b.WriteString(" │")
	}
	fmt.Fprintln(w, b.String())

	fmt.Fprintln(w, buildBorder("├", "┼", "┤", widths))

	for _, row := range t.rows {
		var rb strings.Builder
		rb.WriteString("│")
		for i, cell := range row {
			text := truncateANSI(cell, widths[i])
			if t.cellColor != nil {
				text = t.cellColor(i, text)
			}
			rb.WriteString(" ")
			rb.WriteString(padANSI(text, widths[i], t.columns[i].Align))
			rb.WriteString(" │")
		}
		fmt.Fprintln(w, rb.String())
	}

	fmt.Fprintln(w, buildBorder("└", "┴", "┘", widths))
	return w.Flush()
}

// computeColumnWidths sizes each column to its widest cell or header,
// clamped to the column's Min/Max.
func (t *Table) computeColumnWidths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = visibleLength(col.Title)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := visibleLength(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, col := range t.columns {
		if col.Max > 0 && widths[i] > col.Max {
			widths[i] = col.Max
		}
		if col.Min > 0 && widths[i] < col.Min {
			widths[i] = col.Min
		}
	}
	return widths
}

func buildBorder(left, mid, right string, widths []int) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		} else {
			b.WriteString(right)
		}
	}
	return b.String()
}

// padANSI left- or right-aligns a possibly ANSI-colored string to width.
func padANSI(s string, width int, align Alignment) string {
	vis := visibleLength(s)
	if vis >= width {
		return s
	}
	pad := strings.Repeat(" ", width-vis)
	if align == AlignRight {
		return pad + s
	}
	return s + pad
}

// truncateANSI cuts a possibly ANSI-colored string to width visible runes,
// ending with an ellipsis when there is room for one.
func truncateANSI(s string, width int) string {
	if visibleLength(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	target := width
	ellipsis := ""
	if width >= 3 {
		target = width - 3
		ellipsis = "..."
	}

	var out strings.Builder
	out.Grow(len(s))
	visible := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\u001b':
			inEscape = true
			out.WriteRune(r)
		case inEscape:
			out.WriteRune(r)
			if isEscapeTerminator(r) {
				inEscape = false
			}
		case visible < target:
			out.WriteRune(r)
			visible++
		}
		if !inEscape && visible >= target && r != '\u001b' {
			break
		}
	}
	out.WriteString(ellipsis)
	return out.String()
}

// visibleLength returns the printable length of a string, excluding ANSI codes.
func visibleLength(s string) int {
	count := 0
	inEscape := false
	for _, r := range s {
		if r == '\u001b' {
			inEscape = true
			continue
		}
		if inEscape {
			if isEscapeTerminator(r) {
				inEscape = false
			}
			continue
		}
		count++
	}
	return count
}

func isEscapeTerminator(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
