// Package detector selects the log format from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Format is the log output format.
type Format int

const (
	// FormatPretty renders colored human-readable lines.
	FormatPretty Format = iota
	// FormatJSON renders one JSON object per line.
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "pretty"
}

// DetectEnvironment returns the recommended format for stderr.
func DetectEnvironment() Format {
	return Detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

// Detect returns FormatJSON when output is not a terminal and ci marks a CI run.
func Detect(isTTY bool, ci string) Format {
	isCI := ci == "true" || ci == "1"
	if !isTTY && isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveFormat applies a user override to the detected format.
// userFlag should be one of "auto", "pretty", "json", or empty.
func ResolveFormat(autoDetected Format, userFlag string) Format {
	switch userFlag {
	case "json":
		return FormatJSON
	case "pretty":
		return FormatPretty
	default:
		return autoDetected
	}
}
