// fingerprint.go previews the grouping signature a backend should derive
// from a generated record.

package errseed

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// Fingerprint generates a stable hash for grouping similar records.
// The fingerprint is based on the record's format and the first 3 stack
// frames of its trace (function names only, normalized). It ignores
// variable data like timestamps, line numbers, and memory addresses, which
// is what a backend's grouping heuristic is expected to do.
func Fingerprint(record Record) string {
	parts := []string{string(record.Format)}
	parts = append(parts, normalizeStackTrace(traceText(record))...)

	input := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(input))

	// Hex-encoded first 16 bytes (32 hex chars)
	return hex.EncodeToString(hash[:16])
}

// traceText locates the trace carrier for each format: the raw text for
// plain-text records, stack_trace or error_details.full_stack_trace for
// the structured trace-bearing formats, and the message for formats that
// group on message text.
func traceText(record Record) string {
	if !record.Structured() {
		return record.Text
	}
	if trace, ok := record.Fields["stack_trace"].(string); ok {
		return trace
	}
	if details, ok := record.Fields["error_details"].(map[string]any); ok {
		if trace, ok := details["full_stack_trace"].(string); ok {
			return trace
		}
	}
	if msg, ok := record.Fields["message"].(string); ok {
		return msg
	}
	return ""
}

// Regex patterns for stack trace parsing
var (
	// Match function names like "main.doSomething" or "pkg/subpkg.Function"
	funcNamePattern = regexp.MustCompile(`^([a-zA-Z0-9_./]+\.[a-zA-Z0-9_]+)`)

	// Match memory addresses like "0x1234abcd"
	memAddrPattern = regexp.MustCompile(`0x[0-9a-fA-F]+`)

	// Match offset patterns like "+0x123"
	offsetPattern = regexp.MustCompile(`\+0x[0-9a-fA-F]+`)
)

// normalizeStackTrace extracts the first 3 function names from a trace,
// stripping line numbers, memory addresses, and other variable data.
// Both Go runtime traces and "at Frame (File:line)" application traces
// are recognized.
func normalizeStackTrace(trace string) []string {
	if trace == "" {
		return nil
	}

	var frames []string
	for _, line := range strings.Split(trace, "\n") {
		raw := line
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Skip header lines like "goroutine 1 [running]:"
		if strings.HasPrefix(line, "goroutine ") {
			continue
		}

		// Application-style frame: "at UserService.getUser (UserService.java:45)"
		if after, ok := strings.CutPrefix(line, "at "); ok {
			if idx := strings.Index(after, " ("); idx > 0 {
				after = after[:idx]
			}
			if match := funcNamePattern.FindString(after); match != "" {
				frames = append(frames, match)
				if len(frames) >= 3 {
					break
				}
			}
			continue
		}

		// Skip Go file-location lines (tab-indented or absolute paths)
		if strings.HasPrefix(raw, "\t") || strings.HasPrefix(line, "/") {
			continue
		}

		// Go-style frame: "main.doSomething(0x1234)" or "pkg.Function()"
		funcLine := memAddrPattern.ReplaceAllString(line, "")
		funcLine = offsetPattern.ReplaceAllString(funcLine, "")
		if idx := strings.Index(funcLine, "("); idx > 0 {
			funcLine = funcLine[:idx]
		}
		funcLine = strings.TrimSpace(funcLine)
		if funcLine == "" {
			continue
		}

		if match := funcNamePattern.FindString(funcLine); match != "" {
			frames = append(frames, match)
			if len(frames) >= 3 {
				break
			}
		}
	}

	return frames
}
