package commands

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dantech2000/razorctl/internal/types"
)

// These variables are set at build time via -ldflags
// Example: go build -ldflags "-X github.com/dantech2000/razorctl/internal/commands.version=v1.0.0"
var (
	version   = "v0.1.0"
	commit    = ""
	buildDate = ""
)

// VersionInfo provides access to version information
var VersionInfo = types.VersionInfo{
	Version:   version,
	Commit:    commit,
	BuildDate: buildDate,
}

func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version of this CLI",
		Flags: []cli.Flag{formatFlag()},
		Action: func(c *cli.Context) error {
			format, err := validateFormat(c.String("format"))
			if err != nil {
				return err
			}
			switch format {
			case formatJSON:
				return writeJSON(os.Stdout, VersionInfo)
			case formatYAML:
				return writeYAML(os.Stdout, VersionInfo)
			}
			fmt.Printf("razorctl version: %s\n", VersionInfo.Version)
			if VersionInfo.Commit != "" {
				fmt.Printf("commit: %s\n", VersionInfo.Commit)
			}
			if VersionInfo.BuildDate != "" {
				fmt.Printf("built: %s\n", VersionInfo.BuildDate)
			}
			return nil
		},
	}
}
