package parsley

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
)

// WarningFunc receives non-fatal specification-authoring diagnostics:
// duplicate qualifiers, qualifier/kind mismatches, out-of-range defaults,
// conflicting option names. These never stop construction, so a CLI author
// sees every mistake in one run.
type WarningFunc func(message string)

var warnFunc = PrintWarnings(os.Stderr)

// SetWarningFunc replaces the package-wide warning sink and returns the
// previous one. Passing nil discards warnings.
func SetWarningFunc(f WarningFunc) WarningFunc {
	prev := warnFunc
	if f == nil {
		f = func(string) {}
	}
	warnFunc = f
	return prev
}

var warnPrefix = color.New(color.FgYellow, color.Bold).Sprint("warning:")

// PrintWarnings writes each warning to w with a highlighted prefix. This is
// the default sink, writing to stderr.
func PrintWarnings(w io.Writer) WarningFunc {
	return func(message string) {
		fmt.Fprintf(w, "%s %s\n", warnPrefix, message)
	}
}

// CollectWarnings appends each warning to *dst instead of printing it.
func CollectWarnings(dst *[]string) WarningFunc {
	return func(message string) {
		*dst = append(*dst, message)
	}
}

// LogWarnings routes warnings to a structured logger at warn level.
func LogWarnings(logger *slog.Logger) WarningFunc {
	return func(message string) {
		logger.Warn(message)
	}
}

func warnf(format string, args ...interface{}) {
	warnFunc(fmt.Sprintf(format, args...))
}
