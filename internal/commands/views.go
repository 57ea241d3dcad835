package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	appconfig "github.com/dantech2000/razorctl/internal/config"
	"github.com/dantech2000/razorctl/internal/ui"
	"github.com/dantech2000/razorctl/internal/view"
)

// ViewsCommand prints the column layouts razorctl knows about.
func ViewsCommand() *cli.Command {
	return &cli.Command{
		Name:      "views",
		Usage:     "List the column layouts used for each collection",
		ArgsUsage: "[collection]",
		Flags:     []cli.Flag{formatFlag(), viewsFlag()},
		Action: func(c *cli.Context) error {
			cfg := appconfig.Get()
			format, err := validateFormat(c.String("format"))
			if err != nil {
				return err
			}
			set, err := loadViews(c, cfg)
			if err != nil {
				return err
			}
			return writeViews(os.Stdout, set, c.Args().First(), format)
		},
	}
}

func writeViews(w io.Writer, set *view.Set, only, format string) error {
	var selected []view.View
	if only != "" {
		v, err := set.Resolve(only)
		if err != nil {
			return err
		}
		selected = append(selected, v)
	} else {
		for _, name := range set.Names() {
			v, _ := set.Get(name)
			selected = append(selected, v)
		}
	}

	switch format {
	case formatJSON:
		return writeJSON(w, selected)
	case formatYAML:
		return writeYAML(w, view.File{SchemaVersion: view.SupportedSchema, Views: selected})
	}

	tree := ui.NewTreeBuilder()
	for _, v := range selected {
		tree.AddRoot(color.CyanString(v.Name))
		for i, col := range v.Columns {
			line := fmt.Sprintf("%s  %s <- %s", col.Label, color.YellowString(col.TransformName()), pathLabel(col.Path))
			if i == 0 {
				tree.AddChild(line)
				continue
			}
			tree.AddNode(line)
		}
	}
	return tree.Write(w)
}

func pathLabel(path string) string {
	if path == "" || path == "@this" {
		return "(record)"
	}
	return path
}
