// record.go defines the output unit and the five payload formats.

package errseed

import "fmt"

// Severity is the operational-priority label attached to a record.
type Severity string

// SeverityError is the only severity errseed emits. Error-aggregation
// backends group records at this level.
const SeverityError Severity = "ERROR"

// Format identifies one of the five payload encodings.
type Format string

const (
	// FormatTextTrace is a raw unstructured stack trace with no JSON at
	// all. Exercises a backend's plain-text trace scanner.
	FormatTextTrace Format = "text-trace"

	// FormatJSONTrace is a structured payload whose stack_trace field is
	// the designated trace carrier.
	FormatJSONTrace Format = "json-trace"

	// FormatTypedEvent is a structured payload carrying the @type marker
	// of the reported-error-event schema and no trace field; grouping is
	// inferred from the message text alone.
	FormatTypedEvent Format = "typed-event"

	// FormatReportedEvent is a full incident payload: eventTime, service
	// context, a stack-like multi-line message, and HTTP request context
	// with a fixed 500 status.
	FormatReportedEvent Format = "reported-event"

	// FormatNestedCustom is a deeply nested custom payload whose
	// full_stack_trace sits under error_details. Exercises trace-field
	// discovery at depth.
	FormatNestedCustom Format = "nested-custom"

	// FormatAll selects one of the five formats uniformly at random per
	// dispatch.
	FormatAll Format = "all"
)

// Formats lists the five concrete payload formats in a stable order.
// FormatAll is a dispatch mode, not a payload format, and is excluded.
func Formats() []Format {
	return []Format{
		FormatTextTrace,
		FormatJSONTrace,
		FormatTypedEvent,
		FormatReportedEvent,
		FormatNestedCustom,
	}
}

// ParseFormat converts a user-supplied string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTextTrace, FormatJSONTrace, FormatTypedEvent, FormatReportedEvent, FormatNestedCustom, FormatAll:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (valid: text-trace, json-trace, typed-event, reported-event, nested-custom, all)", s)
}

// Record is one ready-to-transmit error report.
// Exactly one of Text and Fields is set: Text for FormatTextTrace, Fields
// for every structured format. Transports use this to choose between
// text and structured submission.
type Record struct {
	// Format is the encoding this record was produced with.
	Format Format

	// Severity is the label sent alongside the payload.
	Severity Severity

	// Text is the plain-text payload. Set only for FormatTextTrace.
	Text string

	// Fields is the structured payload.
	Fields map[string]any
}

// Structured reports whether the record carries a structured payload.
func (r Record) Structured() bool {
	return r.Fields != nil
}

// Payload returns the wire payload: Fields for structured records, Text
// otherwise.
func (r Record) Payload() any {
	if r.Structured() {
		return r.Fields
	}
	return r.Text
}
