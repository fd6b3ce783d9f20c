// transport.go defines the Transport interface for record destinations.

package errseed

import "context"

// Transport is the destination for generated records.
// Implementations must be safe for concurrent use.
type Transport interface {
	// Send ships one record with its severity label. Called once per
	// successful dispatch; a returned error is recorded as a per-record
	// failure and never aborts a batch.
	Send(ctx context.Context, record Record) error

	// Flush ensures any buffered records are delivered.
	// For synchronous transports, this may be a no-op.
	Flush(ctx context.Context) error

	// Close releases resources held by the transport.
	// After Close is called, Send and Flush should return errors.
	Close() error
}
