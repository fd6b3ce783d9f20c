// Package cloudlog ships records to Google Cloud Logging, where entries at
// severity ERROR surface in Error Reporting.
package cloudlog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/logging"

	"github.com/strongdm/errseed/pkg/errseed"
)

// DefaultLogName is the log that generated records are written to unless
// WithLogName overrides it.
const DefaultLogName = "error-reporting-demo"

// EntryLogger is the minimal interface for Cloud Logging writes.
// The real *logging.Logger satisfies this interface.
type EntryLogger interface {
	LogSync(ctx context.Context, e logging.Entry) error
	Flush() error
}

// Option configures the Cloud Logging transport.
type Option func(*config)

type config struct {
	logName string
	labels  map[string]string
}

// WithLogName sets the log name entries are written under.
func WithLogName(name string) Option {
	return func(c *config) {
		c.logName = name
	}
}

// WithLabels attaches fixed labels to every entry.
func WithLabels(labels map[string]string) Option {
	return func(c *config) {
		c.labels = labels
	}
}

// transport writes records as Cloud Logging entries.
type transport struct {
	client *logging.Client // nil when built around an injected logger
	logger EntryLogger
	labels map[string]string

	mu     sync.Mutex
	closed bool
}

func (t *transport) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// New creates a transport that authenticates against the given project and
// writes to its configured log.
func New(ctx context.Context, projectID string, opts ...Option) (errseed.Transport, error) {
	client, err := logging.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create logging client for project %s: %w", projectID, err)
	}

	cfg := applyOptions(opts)
	return &transport{
		client: client,
		logger: client.Logger(cfg.logName),
		labels: cfg.labels,
	}, nil
}

// NewWithLogger creates a transport around an existing logger.
// Useful for tests and for sharing one client across transports.
func NewWithLogger(logger EntryLogger, opts ...Option) errseed.Transport {
	cfg := applyOptions(opts)
	return &transport{
		logger: logger,
		labels: cfg.labels,
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{logName: DefaultLogName}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Send writes one record as a single entry. LogSync is used so delivery
// failures surface on the record that caused them rather than at flush.
func (t *transport) Send(ctx context.Context, record errseed.Record) error {
	if t.isClosed() {
		return errors.New("transport is closed")
	}

	entry := logging.Entry{
		Severity: severityFor(record.Severity),
		Payload:  record.Payload(),
		Labels:   t.labels,
	}

	if err := t.logger.LogSync(ctx, entry); err != nil {
		return fmt.Errorf("write log entry: %w", err)
	}
	return nil
}

// Flush delivers anything the client has buffered.
func (t *transport) Flush(ctx context.Context) error {
	if t.isClosed() {
		return errors.New("transport is closed")
	}
	if err := t.logger.Flush(); err != nil {
		return fmt.Errorf("flush log entries: %w", err)
	}
	return nil
}

// Close flushes and releases the underlying client.
func (t *transport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// severityFor maps the record label onto Cloud Logging's severity scale.
func severityFor(s errseed.Severity) logging.Severity {
	if s == errseed.SeverityError {
		return logging.Error
	}
	return logging.ParseSeverity(string(s))
}
