package noop

import (
	"context"
	"fmt"
	"testing"

	"github.com/strongdm/errseed/pkg/errseed"
)

func TestNoopTransport_ImplementsTransportInterface(t *testing.T) {
	var _ errseed.Transport = NewTransport()
}

func TestNoopTransport_AllMethodsReturnNil(t *testing.T) {
	transport := NewTransport()

	record := errseed.Record{
		Format:   errseed.FormatTextTrace,
		Severity: errseed.SeverityError,
		Text:     "goroutine 1 [running]:",
	}

	if err := transport.Send(context.Background(), record); err != nil {
		t.Errorf("Send returned error: %v", err)
	}
	if err := transport.Flush(context.Background()); err != nil {
		t.Errorf("Flush returned error: %v", err)
	}
	if err := transport.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}

func TestNoopTransport_MultipleSends(t *testing.T) {
	transport := NewTransport()

	for i := 0; i < 100; i++ {
		record := errseed.Record{
			Format:   errseed.FormatTextTrace,
			Severity: errseed.SeverityError,
			Text:     fmt.Sprintf("trace %d", i),
		}
		if err := transport.Send(context.Background(), record); err != nil {
			t.Fatalf("Send %d returned error: %v", i, err)
		}
	}
}
