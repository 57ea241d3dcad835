package commands

import (
	"context"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/yarlson/pin"

	"github.com/dantech2000/razorctl/internal/razor"
	"github.com/dantech2000/razorctl/internal/ui"
)

// CollectionsCommand lists the collections the server exposes.
func CollectionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "collections",
		Aliases:   []string{"ls"},
		Usage:     "List the collections the Razor server exposes",
		ArgsUsage: "[pattern]",
		Flags:     []cli.Flag{formatFlag(), apiFlag(), timeoutFlag()},
		Action: func(c *cli.Context) error {
			return runCollections(c)
		},
	}
}

func runCollections(c *cli.Context) error {
	cfg := commandConfig(c)
	format, _, err := resolveOutput(c, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Context, cfg.GetTimeout())
	defer cancel()

	svc := newRazorService(cfg, newLogger(cfg))
	defer svc.Close()

	spinner := pin.New("Asking the Razor server what it knows about...",
		pin.WithSpinnerColor(pin.ColorCyan),
		pin.WithTextColor(pin.ColorYellow),
	)
	cancelSpinner := spinner.Start(ctx)
	defer cancelSpinner()

	start := time.Now()
	names, err := svc.Collections(ctx)
	spinner.Stop("Collections gathered!")
	if err != nil {
		return reportFetchError(svc.BaseURL(), "", "", err)
	}

	pattern := c.Args().First()
	names = razor.MatchingCollections(names, pattern)
	if len(names) == 0 {
		color.Yellow("No collections found matching pattern: %s", pattern)
		return nil
	}

	switch format {
	case formatJSON:
		return writeJSON(os.Stdout, names)
	case formatYAML:
		return writeYAML(os.Stdout, names)
	}

	tree := ui.NewTreeBuilder().AddRoot(color.CyanString(svc.BaseURL()))
	for i, n := range names {
		if i == 0 {
			tree.AddChild(n)
			continue
		}
		tree.AddNode(n)
	}
	if err := tree.Render(); err != nil {
		return err
	}
	ui.Outln(ui.FormatSummary(len(names), "collections", time.Since(start).Seconds()))
	return nil
}
