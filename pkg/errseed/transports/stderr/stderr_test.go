package stderr

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/strongdm/errseed/pkg/errseed"
)

func TestStderrTransport_ImplementsTransportInterface(t *testing.T) {
	var _ errseed.Transport = NewTransport()
}

func structuredRecord() errseed.Record {
	return errseed.Record{
		Format:   errseed.FormatJSONTrace,
		Severity: errseed.SeverityError,
		Fields: map[string]any{
			"message":     "SQLException: Connection pool exhausted\nat DatabasePool.getConnection (DatabasePool.java:89)",
			"stack_trace": "goroutine 1 [running]:\nmain.main()\n\t/app/main.go:10",
			"serviceContext": map[string]any{
				"service": "order-service",
				"version": "v1.2.3",
			},
		},
	}
}

func TestSend_FormatsSummaryLine(t *testing.T) {
	var buf bytes.Buffer
	transport := NewTransport(WithWriter(&buf))

	if err := transport.Send(context.Background(), structuredRecord()); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[ERRSEED]") {
		t.Error("output should contain the [ERRSEED] prefix")
	}
	if !strings.Contains(out, "ERROR") {
		t.Error("output should contain the severity")
	}
	if !strings.Contains(out, "json-trace") {
		t.Error("output should contain the format")
	}
	if !strings.Contains(out, "order-service") {
		t.Error("output should contain the service name")
	}
	if !strings.Contains(out, "Fingerprint: ") {
		t.Error("output should contain the grouping fingerprint")
	}
}

func TestSend_MessageTruncatedToFirstLine(t *testing.T) {
	var buf bytes.Buffer
	transport := NewTransport(WithWriter(&buf))

	if err := transport.Send(context.Background(), structuredRecord()); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "Message: SQLException: Connection pool exhausted") {
		t.Errorf("output should contain the first message line, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Message: SQLException: Connection pool exhausted\nat ") {
		t.Error("message line should not spill trace frames")
	}
}

func TestSend_VerboseIncludesPayload(t *testing.T) {
	var buf bytes.Buffer
	transport := NewTransport(WithWriter(&buf), WithVerbose())

	if err := transport.Send(context.Background(), structuredRecord()); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Payload:") {
		t.Error("verbose output should include the payload")
	}
	if !strings.Contains(out, `"stack_trace"`) {
		t.Error("verbose output should include the structured trace field")
	}
}

func TestSend_NonVerboseExcludesPayload(t *testing.T) {
	var buf bytes.Buffer
	transport := NewTransport(WithWriter(&buf))

	if err := transport.Send(context.Background(), structuredRecord()); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	if strings.Contains(buf.String(), "Payload:") {
		t.Error("non-verbose output should not include the payload")
	}
}

func TestSend_PlainTextRecord(t *testing.T) {
	var buf bytes.Buffer
	transport := NewTransport(WithWriter(&buf), WithVerbose())

	record := errseed.Record{
		Format:   errseed.FormatTextTrace,
		Severity: errseed.SeverityError,
		Text:     "goroutine 1 [running]:\nmain.crash()\n\t/app/main.go:22",
	}
	if err := transport.Send(context.Background(), record); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "text-trace") {
		t.Error("output should name the format")
	}
	if !strings.Contains(out, "main.crash()") {
		t.Error("verbose output should include the trace lines")
	}
	if strings.Contains(out, "service:") {
		t.Error("plain records have no service identity to print")
	}
}

func TestSend_NestedCustomServiceName(t *testing.T) {
	var buf bytes.Buffer
	transport := NewTransport(WithWriter(&buf))

	record := errseed.Record{
		Format:   errseed.FormatNestedCustom,
		Severity: errseed.SeverityError,
		Fields: map[string]any{
			"application": map[string]any{"name": "payment-service"},
			"error_details": map[string]any{
				"error_message":    "parse failed",
				"full_stack_trace": "goroutine 1 [running]:",
			},
		},
	}
	if err := transport.Send(context.Background(), record); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "payment-service") {
		t.Error("output should read the service from application.name")
	}
	if !strings.Contains(out, "Message: parse failed") {
		t.Error("output should read the message from error_details.error_message")
	}
}

func TestFlushAndClose_ReturnNil(t *testing.T) {
	transport := NewTransport(WithWriter(&bytes.Buffer{}))

	if err := transport.Flush(context.Background()); err != nil {
		t.Errorf("Flush returned error: %v", err)
	}
	if err := transport.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}
