package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"

	"github.com/dantech2000/razorctl/internal/transforms"
)

// PrintRecordTree prints a nested record as a tree rooted at title. Objects
// and arrays become branches; scalars are printed inline after their key.
func PrintRecordTree(w io.Writer, title string, record gjson.Result) {
	fmt.Fprintf(w, "%s\n", color.CyanString(title))
	printBranch(w, "", record)
}

func printBranch(w io.Writer, indent string, node gjson.Result) {
	type child struct {
		key   string
		value gjson.Result
	}
	var children []child
	node.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if node.IsArray() {
			key = fmt.Sprintf("[%d]", len(children))
		}
		children = append(children, child{key: key, value: v})
		return true
	})

	for i, c := range children {
		isLast := i == len(children)-1
		prefix, nextIndent := "├── ", indent+"│   "
		if isLast {
			prefix, nextIndent = "└── ", indent+"    "
		}

		switch {
		case c.value.IsObject() || c.value.IsArray():
			if isEmptyContainer(c.value) {
				fmt.Fprintf(w, "%s%s%s: %s\n", indent, prefix, color.YellowString(c.key), Placeholder(transforms.None))
				continue
			}
			fmt.Fprintf(w, "%s%s%s\n", indent, prefix, color.YellowString(c.key))
			printBranch(w, nextIndent, c.value)
		case c.value.Type == gjson.Null:
			fmt.Fprintf(w, "%s%s%s: %s\n", indent, prefix, color.YellowString(c.key), Placeholder(transforms.Missing))
		default:
			fmt.Fprintf(w, "%s%s%s: %s\n", indent, prefix, color.YellowString(c.key), transforms.Display(c.value))
		}
	}
}

func isEmptyContainer(v gjson.Result) bool {
	n := 0
	v.ForEach(func(_, _ gjson.Result) bool {
		n++
		return false
	})
	return n == 0
}
