// Package noop provides a transport that accepts every record and delivers
// none of them. It exists to benchmark or exercise record generation in
// isolation, where networked delivery would only add noise.
package noop

import (
	"context"

	"github.com/strongdm/errseed/pkg/errseed"
)

type noopTransport struct{}

// NewTransport returns a transport whose Send, Flush, and Close always
// succeed without doing anything.
func NewTransport() errseed.Transport {
	return &noopTransport{}
}

func (t *noopTransport) Send(ctx context.Context, record errseed.Record) error {
	return nil
}

func (t *noopTransport) Flush(ctx context.Context) error {
	return nil
}

func (t *noopTransport) Close() error {
	return nil
}
