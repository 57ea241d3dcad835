package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"

	"github.com/dantech2000/razorctl/internal/transforms"
	"github.com/dantech2000/razorctl/internal/ui"
)

// hiddenMarker is printed by "transforms apply" for the omit-column result.
const hiddenMarker = "(hidden)"

// TransformsCommand lists the column transforms and can run one by hand.
func TransformsCommand() *cli.Command {
	return &cli.Command{
		Name:  "transforms",
		Usage: "List the column transforms available to views",
		Flags: []cli.Flag{formatFlag()},
		Action: func(c *cli.Context) error {
			format, err := validateFormat(c.String("format"))
			if err != nil {
				return err
			}
			return writeCatalog(os.Stdout, format)
		},
		Subcommands: []*cli.Command{
			transformsApplyCommand(),
		},
	}
}

func transformsApplyCommand() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Apply one transform to a JSON value",
		ArgsUsage: "<transform> [json]",
		Description: `Run a transform on a literal JSON value and print the cell it
produces. Leave the value out to see how the transform treats a missing
field. A result that omits the column prints (hidden).`,
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("a transform name is required, e.g. razorctl transforms apply mac '\"aa-bb\"'", 1)
			}
			return applyTransform(os.Stdout, c.Args().Get(0), c.Args().Get(1))
		},
	}
}

func writeCatalog(w io.Writer, format string) error {
	catalog := transforms.Catalog()
	switch format {
	case formatJSON, formatYAML:
		rows := make([]orderedRow, len(catalog))
		for i, e := range catalog {
			rows[i] = orderedRow{{"name", e.Name}, {"input", e.Input}, {"output", e.Summary}}
		}
		if format == formatJSON {
			return writeJSON(w, rows)
		}
		return writeYAML(w, rows)
	}

	table := ui.NewTable([]ui.Column{
		{Title: "NAME", Min: 4, Align: ui.AlignLeft},
		{Title: "INPUT", Min: 5, Align: ui.AlignLeft},
		{Title: "OUTPUT", Min: 6, Max: 60, Align: ui.AlignLeft},
	}, ui.WithHeaderColor(func(s string) string { return color.CyanString(s) }))
	for _, e := range catalog {
		table.AddRow(e.Name, e.Input, e.Summary)
	}
	return table.Write(w)
}

// applyTransform parses raw as JSON (empty means absent) and prints the
// transform's cell.
func applyTransform(w io.Writer, name, raw string) error {
	var v gjson.Result
	if raw != "" {
		if !gjson.Valid(raw) {
			return fmt.Errorf("value %q is not valid JSON (quote strings, e.g. '\"text\"')", raw)
		}
		v = gjson.Parse(raw)
	}

	res, err := transforms.Apply(name, v)
	if err != nil {
		return err
	}
	if res.Hidden {
		_, err = fmt.Fprintln(w, hiddenMarker)
		return err
	}
	_, err = fmt.Fprintln(w, res.Text)
	return err
}
