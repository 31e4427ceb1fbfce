package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/google/goterm/term"
)

var (
	// Out receives all user-facing output.
	Out io.Writer = os.Stdout
	// Color enables ANSI colors. Turned off for non-terminal output and tests.
	Color = true
)

func bold(s string) string {
	if !Color {
		return s
	}
	return fmt.Sprint(term.Bold(s))
}

func green(s string) string {
	if !Color {
		return s
	}
	return fmt.Sprint(term.Green(s))
}

func red(s string) string {
	if !Color {
		return s
	}
	return fmt.Sprint(term.Red(s))
}

func yellow(s string) string {
	if !Color {
		return s
	}
	return fmt.Sprint(term.Yellow(s))
}

func PrintHeader(msg string) {
	fmt.Fprintf(Out, "\n%s\n", bold(msg))
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Out, "  %s %-15s %s\n", green("✔"), label, green(detail))
}

func PrintError(label, detail string) {
	fmt.Fprintf(Out, "  %s %-15s %s\n", red("✘"), label, red(detail))
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Out, "  %s %-15s %s\n", yellow("!"), label, yellow(detail))
}

// PrintMapping prints one "from -> to" progress line. It is never colored
// so build logs can grep it.
func PrintMapping(from, to string) {
	fmt.Fprintf(Out, "%s -> %s\n", from, to)
}
