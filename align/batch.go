// SPDX-License-Identifier: MIT

package align

import (
	"context"
	"fmt"

	"github.com/katalvlaran/motionalign/core"
	"github.com/katalvlaran/motionalign/distance"
	"golang.org/x/sync/errgroup"
)

// AlignAll aligns every query against ref, running at most workers
// alignments at a time (workers ≤ 0 means no limit).
//
// Results are returned in query order. The first failing query cancels
// the remaining work and its error is returned, annotated with the query
// index. Once ctx is done no new alignment is started; an alignment that
// is already running completes.
func AlignAll(ctx context.Context, ref core.Sequence, queries []core.Sequence, fn distance.PointFunc, opts Options, workers int) ([]Result, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil distance function", ErrBadOptions)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for k, q := range queries {
		if gctx.Err() != nil {
			break
		}
		k, q := k, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Align(ref, q, fn, opts)
			if err != nil {
				return fmt.Errorf("query %d: %w", k, err)
			}
			results[k] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
