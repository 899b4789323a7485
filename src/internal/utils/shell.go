package utils

import "github.com/alessio/shellescape"

// ShellQuote returns s quoted for safe use as a single word in a POSIX shell command line.
func ShellQuote(s string) string {
	return shellescape.Quote(s)
}
