package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	appconfig "github.com/dantech2000/razorctl/internal/config"
	"github.com/dantech2000/razorctl/internal/razor"
	"github.com/dantech2000/razorctl/internal/view"
)

// newLogger returns the stderr diagnostics logger at the configured level.
func newLogger(cfg *appconfig.Config) *slog.Logger {
	level := appconfig.ParseLogLevel(cfg.GetLogLevel())
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// commandConfig returns the process configuration with --api and --timeout
// applied on top.
func commandConfig(c *cli.Context) *appconfig.Config {
	cfg := appconfig.Get()
	if u := strings.TrimSpace(c.String("api")); u != "" {
		cfg.SetAPIURL(u)
	}
	if d := c.Duration("timeout"); d > 0 {
		cfg.SetTimeout(d)
	}
	return cfg
}

// newRazorService centralizes client initialization.
func newRazorService(cfg *appconfig.Config, logger *slog.Logger) *razor.ServiceImpl {
	return razor.NewService(cfg.GetAPIURL(),
		razor.WithLogger(logger),
		razor.WithCacheTTL(cfg.GetCacheTTL()),
	)
}

// loadViews returns the builtin views with the user's views file laid over
// them. --views wins over the configured file.
func loadViews(c *cli.Context, cfg *appconfig.Config) (*view.Set, error) {
	path := c.String("views")
	if path == "" {
		path = cfg.GetViewsFile()
	}
	return view.LoadWithBuiltin(path)
}
