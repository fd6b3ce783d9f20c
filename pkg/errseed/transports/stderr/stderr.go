// Package stderr provides a transport that prints records in
// human-readable form instead of shipping them anywhere.
// Useful for dry runs and for inspecting what a backend would receive.
package stderr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/strongdm/errseed/pkg/errseed"
)

// Option configures the stderr transport.
type Option func(*config)

type config struct {
	verbose bool
	out     io.Writer
}

// WithVerbose enables full payload output including stack traces.
func WithVerbose() Option {
	return func(c *config) {
		c.verbose = true
	}
}

// WithWriter redirects output away from os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// transport prints records in human-readable form.
type transport struct {
	verbose bool
	out     io.Writer
}

// NewTransport creates a transport that writes to stderr.
func NewTransport(opts ...Option) errseed.Transport {
	cfg := &config{out: os.Stderr}
	for _, opt := range opts {
		opt(cfg)
	}
	return &transport{
		verbose: cfg.verbose,
		out:     cfg.out,
	}
}

// Send formats and prints the record.
func (t *transport) Send(ctx context.Context, record errseed.Record) error {
	// Format: [ERRSEED] <SEVERITY> <format> record (service: <name>)
	parts := []string{fmt.Sprintf("[ERRSEED] %s %s record", record.Severity, record.Format)}
	if svc := serviceName(record); svc != "" {
		parts = append(parts, fmt.Sprintf("(service: %s)", svc))
	}
	fmt.Fprintln(t.out, strings.Join(parts, " "))

	if msg := firstLineOfMessage(record); msg != "" {
		fmt.Fprintf(t.out, "        Message: %s\n", msg)
	}
	fmt.Fprintf(t.out, "        Fingerprint: %s\n", errseed.Fingerprint(record))

	if t.verbose {
		if record.Structured() {
			payload, err := json.MarshalIndent(record.Fields, "        ", "  ")
			if err != nil {
				return fmt.Errorf("encode payload: %w", err)
			}
			fmt.Fprintf(t.out, "        Payload: %s\n", payload)
		} else {
			fmt.Fprintf(t.out, "        Payload:\n")
			for _, line := range strings.Split(record.Text, "\n") {
				fmt.Fprintf(t.out, "          %s\n", line)
			}
		}
	}

	return nil
}

// Flush is a no-op for the stderr transport.
func (t *transport) Flush(ctx context.Context) error {
	return nil
}

// Close is a no-op for the stderr transport.
func (t *transport) Close() error {
	return nil
}

// serviceName pulls the service identity out of whichever structured shape
// carries one.
func serviceName(record errseed.Record) string {
	if !record.Structured() {
		return ""
	}
	if sc, ok := record.Fields["serviceContext"].(map[string]any); ok {
		if svc, ok := sc["service"].(string); ok {
			return svc
		}
	}
	if app, ok := record.Fields["application"].(map[string]any); ok {
		if name, ok := app["name"].(string); ok {
			return name
		}
	}
	return ""
}

// firstLineOfMessage returns the leading line of the record's message
// field, or of the raw text for plain records.
func firstLineOfMessage(record errseed.Record) string {
	text := ""
	if record.Structured() {
		if msg, ok := record.Fields["message"].(string); ok {
			text = msg
		} else if details, ok := record.Fields["error_details"].(map[string]any); ok {
			if msg, ok := details["error_message"].(string); ok {
				text = msg
			}
		}
	} else {
		text = record.Text
	}
	if text == "" {
		return ""
	}
	return strings.SplitN(text, "\n", 2)[0]
}
