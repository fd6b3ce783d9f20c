// generator.go provides the Generator: format dispatch plus batch driving.

package errseed

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorConfig)

type generatorConfig struct {
	transport Transport
	prefix    string
	rng       *rand.Rand
	now       func() time.Time
	report    io.Writer
}

// WithTransport sets the transport records are sent through.
func WithTransport(transport Transport) GeneratorOption {
	return func(c *generatorConfig) {
		c.transport = transport
	}
}

// WithPrefix sets a text prefix applied to every generated record's
// leading message and trace fields.
func WithPrefix(prefix string) GeneratorOption {
	return func(c *generatorConfig) {
		c.prefix = prefix
	}
}

// WithSeed makes scenario selection, format selection, and all randomized
// sub-fields deterministic.
func WithSeed(seed int64) GeneratorOption {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the randomness source directly. The generator is
// sequential, so the source is never used concurrently.
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(c *generatorConfig) {
		c.rng = rng
	}
}

// WithClock overrides the time source stamped on time-bearing formats.
func WithClock(now func() time.Time) GeneratorOption {
	return func(c *generatorConfig) {
		c.now = now
	}
}

// WithReportWriter sets the destination for per-record progress lines and
// the batch summary. Defaults to io.Discard.
func WithReportWriter(w io.Writer) GeneratorOption {
	return func(c *generatorConfig) {
		c.report = w
	}
}

// Generator produces records one at a time and ships each through its
// transport. It owns the randomness source and the transport handle for
// its lifetime; everything else is created and discarded per dispatch.
type Generator struct {
	transport Transport
	prefix    string
	rng       *rand.Rand
	now       func() time.Time
	report    io.Writer
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...GeneratorOption) *Generator {
	cfg := &generatorConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	// Default to a noop transport if none provided
	if cfg.transport == nil {
		cfg.transport = &noopTransportInternal{}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.report == nil {
		cfg.report = io.Discard
	}

	return &Generator{
		transport: cfg.transport,
		prefix:    cfg.prefix,
		rng:       cfg.rng,
		now:       cfg.now,
		report:    cfg.report,
	}
}

// Dispatch builds one record in the given format (resolving FormatAll to
// a uniformly chosen concrete format) and sends it with severity ERROR.
// The only failures it propagates are transport failures and unknown
// formats; synthesis faults never escape.
func (g *Generator) Dispatch(ctx context.Context, format Format) (Record, error) {
	if format == FormatAll {
		all := Formats()
		format = all[g.rng.Intn(len(all))]
	}

	record, err := format.Produce(ProduceInput{
		Scenario:  pickScenario(g.rng),
		Exception: Synthesize(g.rng),
		Prefix:    g.prefix,
		Rand:      g.rng,
		Now:       g.now(),
	})
	if err != nil {
		return Record{}, err
	}

	if err := g.transport.Send(ctx, record); err != nil {
		return Record{}, fmt.Errorf("send %s record: %w", record.Format, err)
	}
	return record, nil
}

// Failure records one failed dispatch within a batch.
type Failure struct {
	// Index is the zero-based position of the failed dispatch.
	Index int

	// Err is the reason the dispatch failed.
	Err error
}

// BatchResult is the tally of one batch run.
type BatchResult struct {
	// Attempted is the number of dispatches driven.
	Attempted int

	// Succeeded is the number of records sent successfully.
	Succeeded int

	// Failures lists the failed dispatches in order.
	Failures []Failure
}

// Failed returns the number of failed dispatches.
func (r BatchResult) Failed() int {
	return len(r.Failures)
}

// RunBatch drives count dispatches in the given format, isolating each
// failure so a failed send never aborts the batch. Progress and a final
// tally are written to the report writer. count <= 0 yields an empty,
// all-succeeded result.
func (g *Generator) RunBatch(ctx context.Context, count int, format Format) BatchResult {
	var result BatchResult
	if count < 0 {
		count = 0
	}

	fmt.Fprintf(g.report, "Generating %d error records...\n", count)
	fmt.Fprintln(g.report, batchRule)

	for i := 0; i < count; i++ {
		result.Attempted++
		record, err := g.Dispatch(ctx, format)
		if err != nil {
			result.Failures = append(result.Failures, Failure{Index: i, Err: err})
			fmt.Fprintf(g.report, "  [%d/%d] ✗ failed: %v\n", i+1, count, err)
			continue
		}
		result.Succeeded++
		fmt.Fprintf(g.report, "  [%d/%d] ✓ sent %s record\n", i+1, count, record.Format)
	}

	fmt.Fprintln(g.report, batchRule)
	fmt.Fprintf(g.report, "Finished: %d attempted, %d succeeded, %d failed.\n",
		result.Attempted, result.Succeeded, result.Failed())
	return result
}

const batchRule = "=================================================="

// noopTransportInternal is an internal noop transport to avoid import cycles.
type noopTransportInternal struct{}

func (t *noopTransportInternal) Send(ctx context.Context, record Record) error {
	return nil
}

func (t *noopTransportInternal) Flush(ctx context.Context) error {
	return nil
}

func (t *noopTransportInternal) Close() error {
	return nil
}
