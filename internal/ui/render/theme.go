// Package render provides formatting functions for slider document data.
package render

// ANSI color codes for terminal output.
const (
	Reset   = "\x1b[0m"
	Red     = "\x1b[0;31m"
	Green   = "\x1b[0;32m"
	Yellow  = "\x1b[0;33m"
	Magenta = "\x1b[0;35m"
	Cyan    = "\x1b[0;36m"
	Bold    = "\x1b[1m"
	Dim     = "\x1b[2m"
)
