package helpers

import (
	"regexp"
	"strings"
)

var errorTraceInMessageRegex = regexp.MustCompile(`^(?s:\s*Error Trace:.*\sError:\s*)`)

// StripTestifyTrace removes the "Error Trace:" preamble that testify/assert adds to its
// failure messages, leaving only the message itself.
func StripTestifyTrace(message string) string {
	if !strings.Contains(message, "Error Trace:") {
		return message
	}
	return strings.TrimSpace(errorTraceInMessageRegex.ReplaceAllLiteralString(message, ""))
}
