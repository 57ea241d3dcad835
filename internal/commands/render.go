package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"

	appconfig "github.com/dantech2000/razorctl/internal/config"
	"github.com/dantech2000/razorctl/internal/view"
)

// RenderCommand renders a saved API document without contacting a server.
func RenderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a saved JSON document with a collection's view",
		ArgsUsage: "<collection> [file|-]",
		Description: `Read a JSON document previously fetched from the Razor API (a
collection listing, an array of items or a single item) and print it the way
"show" would. Reads stdin when the file is omitted or "-".`,
		Flags: append(outputFlags(),
			&cli.BoolFlag{
				Name:    "detail",
				Aliases: []string{"d"},
				Usage:   "Treat the document as one item and use the detail columns",
			},
			viewsFlag(),
		),
		Action: func(c *cli.Context) error {
			return runRender(c, os.Stdin, os.Stdout)
		},
	}
}

func runRender(c *cli.Context, stdin io.Reader, out io.Writer) error {
	if c.NArg() < 1 {
		return cli.Exit("a collection name is required, e.g. razorctl render nodes nodes.json", 1)
	}
	cfg := appconfig.Get()
	format, style, err := resolveOutput(c, cfg)
	if err != nil {
		return err
	}
	views, err := loadViews(c, cfg)
	if err != nil {
		return err
	}

	doc, err := readDocument(c.Args().Get(1), stdin)
	if err != nil {
		return err
	}

	v := views.GetOrFallback(c.Args().First())
	if c.Bool("detail") {
		return renderDetail(out, v, doc.Get("name").String(), doc, format)
	}
	return renderList(out, v, view.Records(doc), format, style)
}

// readDocument loads JSON from path, or from stdin for "" and "-".
func readDocument(path string, stdin io.Reader) (gjson.Result, error) {
	var (
		raw []byte
		err error
	)
	if path == "" || path == "-" {
		raw, err = io.ReadAll(stdin)
		path = "stdin"
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%s is not valid JSON", path)
	}
	return gjson.ParseBytes(raw), nil
}
