package sink

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when a document with the given name does not exist
// in the underlying sink.
var ErrNotFound = fmt.Errorf("document not found")

// Sink accepts named documents and writes them durably.
type Sink interface {
	Write(ctx context.Context, name string, doc any) error
}

// WriteAll persists every document concurrently and waits for all writes to
// finish. The first failure cancels the remaining writes through the group
// context and is returned.
func WriteAll(ctx context.Context, s Sink, docs map[string]any) error {
	g, ctx := errgroup.WithContext(ctx)

	for name, doc := range docs {
		name, doc := name, doc
		g.Go(func() error {
			return s.Write(ctx, name, doc)
		})
	}

	return g.Wait()
}
