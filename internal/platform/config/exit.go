package config

import (
	"fmt"
	"io"
	"os"
)

// exit and stderr are swapped by tests.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// Command entry points use it for startup failures that must stop the process.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(1)
}
