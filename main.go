package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/dantech2000/razorctl/internal/commands"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "razorctl",
		Usage: "Browse the collections of a Razor provisioning server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api",
				Usage: "Razor API root (overrides RAZOR_API_URL and the config file)",
			},
		},
		Commands: []*cli.Command{
			commands.CollectionsCommand(),
			commands.ShowCommand(),
			commands.RenderCommand(),
			commands.TransformsCommand(),
			commands.ViewsCommand(),
			commands.VersionCommand(),
			commands.ManPageCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
