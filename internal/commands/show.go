package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"
	"github.com/yarlson/pin"

	appconfig "github.com/dantech2000/razorctl/internal/config"
	"github.com/dantech2000/razorctl/internal/razor"
	"github.com/dantech2000/razorctl/internal/ui"
	"github.com/dantech2000/razorctl/internal/view"
)

func apiFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "api",
		Usage: "Razor API root (overrides RAZOR_API_URL and the config file)",
	}
}

func timeoutFlag() cli.Flag {
	return &cli.DurationFlag{
		Name:    "timeout",
		Aliases: []string{"t"},
		Usage:   "Operation timeout (e.g. 10s, 1m)",
	}
}

func viewsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "views",
		Usage: "YAML file with extra or replacement column layouts",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"o"},
		Usage:   "Output format (table, json, yaml)",
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		formatFlag(),
		&cli.StringFlag{
			Name:    "style",
			Aliases: []string{"s"},
			Usage:   "Table style (box, pterm)",
		},
	}
}

// ShowCommand lists a collection or shows one of its items.
func ShowCommand() *cli.Command {
	flags := append(outputFlags(),
		&cli.BoolFlag{
			Name:  "tree",
			Usage: "Print the raw item as a tree instead of its detail view",
		},
		apiFlag(),
		timeoutFlag(),
		viewsFlag(),
	)
	return &cli.Command{
		Name:      "show",
		Aliases:   []string{"get"},
		Usage:     "Show a collection or one item of it",
		ArgsUsage: "<collection> [name]",
		Description: `Fetch a collection from the Razor server and render it with the
collection's view. With a name, show that item with the view's detail
columns. The collection may be a unique partial name such as "pol".`,
		Flags: flags,
		Action: func(c *cli.Context) error {
			return runShow(c)
		},
	}
}

// resolveOutput merges --format/--style with the configured defaults.
func resolveOutput(c *cli.Context, cfg *appconfig.Config) (string, string, error) {
	format := c.String("format")
	if format == "" {
		format = cfg.GetFormat()
	}
	style := c.String("style")
	if style == "" {
		style = cfg.GetStyle()
	}
	f, err := validateFormat(format)
	if err != nil {
		return "", "", err
	}
	s, err := validateStyle(style)
	if err != nil {
		return "", "", err
	}
	return f, s, nil
}

func runShow(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("a collection name is required, e.g. razorctl show nodes", 1)
	}
	cfg := commandConfig(c)
	format, style, err := resolveOutput(c, cfg)
	if err != nil {
		return err
	}
	views, err := loadViews(c, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, cfg.GetTimeout())
	defer cancel()

	svc := newRazorService(cfg, newLogger(cfg))
	defer svc.Close()

	requested := c.Args().Get(0)
	name := c.Args().Get(1)

	spinner := pin.New(fmt.Sprintf("Fetching %s...", requested),
		pin.WithSpinnerColor(pin.ColorCyan),
		pin.WithTextColor(pin.ColorYellow),
	)
	cancelSpinner := spinner.Start(ctx)
	defer cancelSpinner()

	start := time.Now()
	collection, err := resolveCollection(ctx, svc, requested)
	var doc gjson.Result
	if err == nil {
		if name == "" {
			doc, err = svc.List(ctx, collection)
		} else {
			doc, err = svc.Get(ctx, collection, name)
		}
	}
	spinner.Stop("Done")
	if err != nil {
		return reportFetchError(svc.BaseURL(), collection, name, err)
	}
	elapsed := time.Since(start)

	v := views.GetOrFallback(collection)
	out := os.Stdout

	if name != "" {
		if c.Bool("tree") && format == formatTable {
			ui.PrintRecordTree(out, fmt.Sprintf("%s/%s", collection, name), doc)
			return nil
		}
		return renderDetail(out, v, name, doc, format)
	}

	records := view.Records(doc)
	if err := renderList(out, v, records, format, style); err != nil {
		return err
	}
	if format == formatTable {
		ui.Outln(ui.FormatSummary(len(records), collection, elapsed.Seconds()))
	}
	return nil
}

// resolveCollection maps a possibly partial collection name to a single
// collection the server knows. A server that lists no collections gets the
// name as typed.
func resolveCollection(ctx context.Context, svc razor.Service, requested string) (string, error) {
	names, err := svc.Collections(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return requested, nil
	}
	matches := razor.MatchingCollections(names, requested)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no collection matches %q (available: %s)", requested, strings.Join(names, ", "))
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches several collections: %s", requested, strings.Join(matches, ", "))
	}
}

// reportFetchError prints connection help when the server is unreachable and
// names the missing item on a 404.
func reportFetchError(apiURL, collection, name string, err error) error {
	switch {
	case razor.IsConnectionError(err):
		razor.PrintConnectionHelp(apiURL)
		return fmt.Errorf("razor server unreachable: %w", err)
	case razor.IsNotFound(err) && name != "":
		return fmt.Errorf("no %s named %q: %w", collection, name, err)
	case razor.IsNotFound(err) && collection != "":
		return fmt.Errorf("collection %q not found: %w", collection, err)
	}
	return err
}
