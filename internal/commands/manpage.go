package commands

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	manPageName     = "razorctl.1"
	ManPageFileMode = 0644
	ManPageDirMode  = 0755
)

func ManPageCommand() *cli.Command {
	return &cli.Command{
		Name:    "install-man",
		Aliases: []string{"install-manpage"},
		Usage:   "Install the man page for razorctl",
		Description: `Install the razorctl man page for offline documentation access.

This command generates the man page from the CLI definition and installs it
to a user-accessible directory ($HOME/.local/share/man/man1 by default).
No sudo privileges required.`,
		Action: installManPage,
	}
}

func installManPage(c *cli.Context) error {
	manContent, err := c.App.ToMan()
	if err != nil {
		return fmt.Errorf("failed to generate man page: %w", err)
	}

	manDir := getManPageDir()
	manPath := filepath.Join(manDir, manPageName)

	if !isWritableDir(manDir) {
		return fmt.Errorf("cannot write to directory %s: permission denied", manDir)
	}
	if err := os.WriteFile(manPath, []byte(manContent), ManPageFileMode); err != nil {
		return fmt.Errorf("failed to write man page to %s: %w", manPath, err)
	}

	fmt.Printf("Man page installed successfully to: %s\n", manPath)

	manParentDir := filepath.Dir(manDir)
	if !isInManPath(manParentDir) {
		fmt.Printf("\nTo make the man page accessible, add the following to your shell profile:\n")
		fmt.Printf("  export MANPATH=\"%s:$MANPATH\"\n", manParentDir)
		fmt.Printf("\nOr run temporarily:\n")
		fmt.Printf("  MANPATH=\"%s:$MANPATH\" man razorctl\n", manParentDir)
	} else {
		fmt.Println("You can now use 'man razorctl' to view the documentation.")
	}

	updateManDB()
	return nil
}

func getManPageDir() string {
	homeDir := os.Getenv("HOME")
	userDirs := []string{
		filepath.Join(homeDir, ".local/share/man/man1"),
		filepath.Join(homeDir, ".local/man/man1"),
		filepath.Join(homeDir, "man/man1"),
	}
	for _, dir := range userDirs {
		if isWritableDir(dir) {
			return dir
		}
	}
	return filepath.Join(homeDir, ".local/share/man/man1")
}

func isWritableDir(dir string) bool {
	if err := os.MkdirAll(dir, ManPageDirMode); err != nil {
		return false
	}
	// Concurrent callers each get their own scratch file.
	file, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		return false
	}
	_ = file.Close()
	_ = os.Remove(file.Name())
	return true
}

func isInManPath(dir string) bool {
	output, err := exec.Command("manpath").Output()
	if err != nil {
		return false
	}
	return manpathContains(string(output), dir)
}

// manpathContains reports whether dir is one of the colon-separated entries
// printed by manpath(1).
func manpathContains(manpath, dir string) bool {
	for _, path := range strings.Split(strings.TrimSpace(manpath), ":") {
		if strings.TrimSpace(path) == dir {
			return true
		}
	}
	return false
}

func updateManDB() {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("makewhatis"); err == nil {
			_ = exec.Command("makewhatis", "/usr/local/share/man").Run()
		}
	case "linux":
		if _, err := exec.LookPath("mandb"); err == nil {
			_ = exec.Command("mandb", "-q").Run()
		}
	}
}
