// Package output prints human-readable CLI output with optional colors.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Colors and styles
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	gray   = color.New(color.FgHiBlack)
	bold   = color.New(color.Bold)

	// Output writers (can be overridden for testing)
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr

	// Disable colors if not TTY or NO_COLOR is set
	noColor = os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout)
)

func init() {
	if noColor {
		color.NoColor = true
	}
}

// Successf prints a success message with a checkmark
// Example: ✓ No alert for task t1
func Successf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stdout, green.Sprint("✓")+" "+format+"\n", a...)
}

// Infof prints an informational message with an arrow
// Example: → Replaying event from event.json
func Infof(format string, a ...any) {
	_, _ = fmt.Fprintf(Stdout, cyan.Sprint("→")+" "+format+"\n", a...)
}

// Warningf prints a warning message with a warning symbol
// Example: ⚠ Alert raised: unexpected-stop
func Warningf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stdout, yellow.Sprint("⚠")+" "+format+"\n", a...)
}

// Errorf prints an error message with an X symbol
// Example: ✗ failed to assume role: AccessDenied
func Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, red.Sprint("✗")+" "+format+"\n", a...)
}

// Fatalf prints an error message and exits with code 1
func Fatalf(format string, a ...any) {
	Errorf(format, a...)
	os.Exit(1)
}

// Header prints a section header with a separator line
func Header(text string) {
	_, _ = fmt.Fprintln(Stdout)
	_, _ = fmt.Fprintln(Stdout, bold.Sprint(text))
	_, _ = fmt.Fprintln(Stdout, gray.Sprint(strings.Repeat("━", 50)))
}

// KeyValue prints a key-value pair with indentation
// Example:   Cluster: prod
func KeyValue(key, value string) {
	_, _ = fmt.Fprintf(Stdout, "  %s: %s\n", gray.Sprint(key), value)
}

// Blank prints a blank line
func Blank() {
	_, _ = fmt.Fprintln(Stdout)
}

// JSON prints v as indented JSON.
func JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(Stdout, string(data))
	return err
}

// Bold prints text in bold
func Bold(text string) string {
	return bold.Sprint(text)
}

// Gray prints text in gray
func Gray(text string) string {
	return gray.Sprint(text)
}

// Red prints text in red
func Red(text string) string {
	return red.Sprint(text)
}

// Green prints text in green
func Green(text string) string {
	return green.Sprint(text)
}

// OrNone returns a gray placeholder for empty values.
func OrNone(value string) string {
	if value == "" {
		return Gray("(none)")
	}
	return value
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
