package minpairs

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Query is one entry of a batch.
type Query struct {
	Pair   string
	Filter FilterConfig
}

// Outcome is the answer to one Query. Exactly one of Result and Err is set.
type Outcome struct {
	Query  Query
	Result *Result
	Err    error
}

// FindBatch runs queries concurrently with at most workers in flight
// (GOMAXPROCS when workers <= 0). Outcomes are returned in input order.
// A bad query only fails its own outcome; the batch as a whole fails only
// when ctx is done before every query has run.
func (f *Finder) FindBatch(ctx context.Context, queries []Query, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := f.FindMinimalPairs(q.Pair, q.Filter)
			out[i] = Outcome{Query: q, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
