package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// TreeBuilder provides a fluent API for constructing hierarchical displays
type TreeBuilder struct {
	leveledList pterm.LeveledList
	level       int
}

// NewTreeBuilder creates a new tree builder
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{
		leveledList: make(pterm.LeveledList, 0),
	}
}

// AddRoot adds a root node to the tree
func (tb *TreeBuilder) AddRoot(text string) *TreeBuilder {
	tb.level = 0
	return tb.add(text)
}

// AddNode adds a node at the current level
func (tb *TreeBuilder) AddNode(text string) *TreeBuilder {
	return tb.add(text)
}

// AddChild adds a child node and increases the level
func (tb *TreeBuilder) AddChild(text string) *TreeBuilder {
	tb.level++
	return tb.add(text)
}

// AddStatus adds a node colored by a Razor status.
func (tb *TreeBuilder) AddStatus(text, status string) *TreeBuilder {
	return tb.add(StatusColor(status)("%s", text))
}

// Up moves up one level in the hierarchy
func (tb *TreeBuilder) Up() *TreeBuilder {
	if tb.level > 0 {
		tb.level--
	}
	return tb
}

func (tb *TreeBuilder) add(text string) *TreeBuilder {
	tb.leveledList = append(tb.leveledList, pterm.LeveledListItem{
		Level: tb.level,
		Text:  text,
	})
	return tb
}

// Len returns the number of nodes added so far.
func (tb *TreeBuilder) Len() int {
	return len(tb.leveledList)
}

// Render outputs the tree to stdout
func (tb *TreeBuilder) Render() error {
	return tb.Write(stdout)
}

// Write renders the tree to w.
func (tb *TreeBuilder) Write(w io.Writer) error {
	if len(tb.leveledList) == 0 {
		return errors.New("no tree nodes to render")
	}
	root := putils.TreeFromLeveledList(tb.leveledList)
	out, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// FormatSummary creates a summary line for listings
func FormatSummary(itemCount int, itemType string, duration float64) string {
	return fmt.Sprintf("Found %d %s in %s",
		itemCount,
		itemType,
		color.GreenString("%.1fs", duration))
}
