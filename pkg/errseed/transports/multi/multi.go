// Package multi provides a transport that duplicates every record across
// several destinations, so one generated batch can feed a real backend and
// a local mirror at the same time (the CLI's verbose mode does exactly
// this with cloudlog plus stderr).
package multi

import (
	"context"
	"errors"

	"github.com/strongdm/errseed/pkg/errseed"
)

type multiTransport struct {
	transports []errseed.Transport
}

// NewTransport combines the given transports into one. Every destination
// sees every record; a failing destination never starves the others, and
// whatever errors occur come back joined.
func NewTransport(transports ...errseed.Transport) errseed.Transport {
	return &multiTransport{
		transports: transports,
	}
}

// Send delivers the record to every destination before reporting errors.
func (t *multiTransport) Send(ctx context.Context, record errseed.Record) error {
	var errs []error
	for _, transport := range t.transports {
		if err := transport.Send(ctx, record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Flush flushes every destination before reporting errors.
func (t *multiTransport) Flush(ctx context.Context) error {
	var errs []error
	for _, transport := range t.transports {
		if err := transport.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every destination before reporting errors.
func (t *multiTransport) Close() error {
	var errs []error
	for _, transport := range t.transports {
		if err := transport.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
