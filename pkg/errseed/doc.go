// Package errseed generates synthetic error-report records for exercising
// log-ingestion and error-aggregation backends.
//
// errseed produces one record at a time in one of five wire formats, fills
// it with randomized scenario data, and hands it to a Transport for
// delivery. The formats range from a raw plain-text stack trace to a deeply
// nested custom structure, so a backend's error-grouping heuristics can be
// validated against every payload shape it claims to understand.
//
// # Core Components
//
// The library is organized around these concepts:
//
//   - Record: One ready-to-transmit error report, either plain text or structured
//   - Format: The five payload encodings, plus FormatAll for uniform random choice
//   - Exception: A synthesized fault with a genuine captured stack trace
//   - Generator: Draws scenario data, encodes a record, and sends it through a Transport
//   - Transport: Destination for records (Cloud Logging, stderr, multi, noop)
//
// # Quick Start
//
// For delivery to Google Cloud Logging:
//
//	transport, err := cloudlog.New(ctx, projectID)
//	gen := errseed.NewGenerator(
//	    errseed.WithTransport(transport),
//	    errseed.WithReportWriter(os.Stdout),
//	)
//	result := gen.RunBatch(ctx, 10, errseed.FormatAll)
//
// For a local dry run:
//
//	gen := errseed.NewGenerator(errseed.WithTransport(stderr.NewTransport()))
//	rec, err := gen.Dispatch(ctx, errseed.FormatReportedEvent)
//
// # Design Principles
//
//   - A failed send never aborts a batch: failures are tallied per record
//   - Stack traces are captured from real faults, never fabricated strings
//   - Zero-dependency core: external dependencies only in transport packages
package errseed
