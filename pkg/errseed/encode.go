// encode.go builds the five payload shapes from scenario and exception data.

package errseed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ReportedErrorEventType is the schema-type marker that tells a backend a
// structured payload follows the reported-error-event schema.
const ReportedErrorEventType = "type.googleapis.com/google.devtools.clouderrorreporting.v1beta1.ReportedErrorEvent"

// ProduceInput carries everything an encoder needs to build one record.
type ProduceInput struct {
	// Scenario is the catalog entry parameterizing the record.
	Scenario Scenario

	// Exception is the synthesized fault whose message and trace feed
	// the trace-bearing formats.
	Exception Exception

	// Prefix, when non-empty, is prepended to the record's first
	// human-readable fields: joined with a space before a message field
	// and with a newline before a trace field. Structural fields are
	// never prefixed.
	Prefix string

	// Rand drives the randomized sub-fields (versions, status codes,
	// identifiers, flags, metrics).
	Rand *rand.Rand

	// Now is the instant stamped on time-bearing formats.
	Now time.Time
}

// Produce builds one fully-formed record in the receiver's format.
// It fails only for FormatAll (which must be resolved by the dispatcher)
// and unrecognized formats.
func (f Format) Produce(in ProduceInput) (Record, error) {
	switch f {
	case FormatTextTrace:
		return encodeTextTrace(in), nil
	case FormatJSONTrace:
		return encodeJSONTrace(in), nil
	case FormatTypedEvent:
		return encodeTypedEvent(in), nil
	case FormatReportedEvent:
		return encodeReportedEvent(in), nil
	case FormatNestedCustom:
		return encodeNestedCustom(in), nil
	}
	return Record{}, fmt.Errorf("format %q cannot produce a record", f)
}

// prefixMessage joins the prefix to a message field with a single space.
func prefixMessage(prefix, msg string) string {
	if prefix == "" {
		return msg
	}
	return prefix + " " + msg
}

// prefixTrace joins the prefix to a trace-carrier field with a newline so
// the trace frames stay line-aligned for backend scanners.
func prefixTrace(prefix, trace string) string {
	if prefix == "" {
		return trace
	}
	return prefix + "\n" + trace
}

// encodeTextTrace emits the raw stack trace with no structure at all.
func encodeTextTrace(in ProduceInput) Record {
	return Record{
		Format:   FormatTextTrace,
		Severity: SeverityError,
		Text:     prefixTrace(in.Prefix, in.Exception.StackTrace),
	}
}

// encodeJSONTrace emits a structured payload whose stack_trace field
// carries the synthesized trace.
func encodeJSONTrace(in ProduceInput) Record {
	return Record{
		Format:   FormatJSONTrace,
		Severity: SeverityError,
		Fields: map[string]any{
			"message":     prefixMessage(in.Prefix, in.Exception.Message),
			"stack_trace": prefixTrace(in.Prefix, in.Exception.StackTrace),
			"serviceContext": map[string]any{
				"service": in.Scenario.Service,
				"version": randomVersion(in.Rand),
			},
			"context": map[string]any{
				"user": randomUser(in.Rand),
				"reportLocation": map[string]any{
					"filePath":     in.Scenario.Service + "/main.go",
					"lineNumber":   randomLineNumber(in.Rand),
					"functionName": "handleRequest",
				},
			},
		},
	}
}

// encodeTypedEvent emits a structured payload with the schema-type marker
// and a short human message. No trace field: the backend groups on the
// message text.
func encodeTypedEvent(in ProduceInput) Record {
	return Record{
		Format:   FormatTypedEvent,
		Severity: SeverityError,
		Fields: map[string]any{
			"@type":   ReportedErrorEventType,
			"message": prefixMessage(in.Prefix, pickShortMessage(in.Rand)),
			"serviceContext": map[string]any{
				"service": in.Scenario.Service,
				"version": randomVersion(in.Rand),
			},
			"context": map[string]any{
				"httpRequest": map[string]any{
					"method":             pickMethod(in.Rand),
					"url":                catalogURLBase + in.Scenario.HTTPPath,
					"responseStatusCode": pickStatusCode(in.Rand),
				},
				"user": randomUser(in.Rand),
			},
		},
	}
}

// encodeReportedEvent emits a full incident payload. The message is the
// scenario's stack-like multi-line text and the HTTP status is always 500.
func encodeReportedEvent(in ProduceInput) Record {
	return Record{
		Format:   FormatReportedEvent,
		Severity: SeverityError,
		Fields: map[string]any{
			"eventTime": in.Now.UTC().Format(time.RFC3339),
			"serviceContext": map[string]any{
				"service": in.Scenario.Service,
				"version": randomVersion(in.Rand),
			},
			"message": prefixMessage(in.Prefix, in.Scenario.Message),
			"context": map[string]any{
				"httpRequest": map[string]any{
					"method":             pickMethod(in.Rand),
					"url":                catalogURLBase + in.Scenario.HTTPPath,
					"userAgent":          catalogUserAgent,
					"referrer":           catalogReferrer,
					"responseStatusCode": 500,
					"remoteIp":           randomRemoteIP(in.Rand),
				},
				"user": randomUser(in.Rand),
				"reportLocation": map[string]any{
					"filePath":     in.Scenario.Service + "/Main.java",
					"lineNumber":   randomLineNumber(in.Rand),
					"functionName": "handleRequest",
				},
			},
		},
	}
}

// encodeNestedCustom emits the deeply nested custom payload. The trace is
// reachable only at error_details.full_stack_trace, never at top level.
func encodeNestedCustom(in ProduceInput) Record {
	return Record{
		Format:   FormatNestedCustom,
		Severity: SeverityError,
		Fields: map[string]any{
			"timestamp": in.Now.UTC().Format(time.RFC3339),
			"application": map[string]any{
				"name":        in.Scenario.Service,
				"environment": pickEnvironment(in.Rand),
				"version":     randomVersion(in.Rand),
			},
			"error_details": map[string]any{
				"error_type":       string(in.Exception.Kind),
				"error_message":    prefixMessage(in.Prefix, in.Exception.Message),
				"full_stack_trace": prefixTrace(in.Prefix, in.Exception.StackTrace),
				"additional_context": map[string]any{
					"request_id":    uuid.NewString(),
					"session_id":    uuid.NewString(),
					"feature_flags": randomFeatureFlags(in.Rand),
				},
			},
			"metrics": map[string]any{
				"response_time_ms": 100 + in.Rand.Intn(4901),
				"memory_usage_mb":  50 + in.Rand.Intn(451),
			},
		},
	}
}
