package specfile

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LoadAll loads every path concurrently and returns the documents in the
// order of paths. The first failure cancels the remaining loads.
// Complexity: O(Σ file size), at most GOMAXPROCS files in flight.
func LoadAll(ctx context.Context, paths ...string) ([]*Document, error) {
	docs := make([]*Document, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := Load(p)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}
