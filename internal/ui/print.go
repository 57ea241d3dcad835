package ui

import (
	"fmt"
	"io"
	"os"
)

// Destinations for the Out* and Err* helpers. Tests swap them out.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects the helpers and returns a func restoring the previous
// writers. A nil writer leaves that stream unchanged.
func SetOutput(out, errOut io.Writer) (restore func()) {
	prevOut, prevErr := stdout, stderr
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
	return func() { stdout, stderr = prevOut, prevErr }
}

// Outln writes a line to stdout, ignoring write errors.
func Outln(a ...any) {
	_, _ = fmt.Fprintln(stdout, a...)
}

// Outf writes formatted output to stdout, ignoring write errors.
func Outf(format string, a ...any) {
	_, _ = fmt.Fprintf(stdout, format, a...)
}

// Errln writes a line to stderr, ignoring write errors.
func Errln(a ...any) {
	_, _ = fmt.Fprintln(stderr, a...)
}

// Errf writes formatted output to stderr, ignoring write errors.
func Errf(format string, a ...any) {
	_, _ = fmt.Fprintf(stderr, format, a...)
}
