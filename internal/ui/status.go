package ui

import (
	"strings"

	"github.com/fatih/color"

	"github.com/dantech2000/razorctl/internal/transforms"
)

var faint = color.New(color.Faint).SprintFunc()

// StatusColor returns a color function for a Razor status, event severity or
// boolean flag.
func StatusColor(status string) func(format string, a ...interface{}) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "true", "enabled", "finished", "installed", "success", "active":
		return color.GreenString
	case "false", "disabled", "failed", "error", "critical":
		return color.RedString
	case "warning", "warn", "pending", "running", "in progress":
		return color.YellowString
	case "info":
		return color.CyanString
	default:
		return color.WhiteString
	}
}

// IsPlaceholder reports whether text is one of the absent-value placeholders.
func IsPlaceholder(text string) bool {
	return text == transforms.Missing || text == transforms.None
}

// Placeholder dims absent-value placeholders and leaves other text untouched.
func Placeholder(text string) string {
	if IsPlaceholder(text) {
		return faint(text)
	}
	return text
}
