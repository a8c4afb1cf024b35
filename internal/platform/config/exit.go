package config

import (
	"fmt"
	"io"
	"os"
)

// Exitf writes a formatted message to stderr and exits with code.
// CLI entry points use it for failures meant for the user rather than the log.
func Exitf(code int, format string, args ...any) {
	writeLine(os.Stderr, format, args...)
	os.Exit(code)
}

func writeLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
