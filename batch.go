package chronohash

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var threads = runtime.NumCPU()

// SumBatch hashes every message under mode using one worker per CPU and returns the digests in
// input order. Each message is hashed by exactly one worker from start to finish; cancelling ctx
// stops messages that have not yet started, and SumBatch then returns ctx.Err().
func SumBatch(ctx context.Context, msgs [][]byte, mode Mode) ([]Digest, error) {
	if !mode.valid() {
		return nil, ErrInvalidMode
	}
	sums := make([]Digest, len(msgs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := range msgs {
		if gctx.Err() != nil {
			break /* Stop queueing; g.Wait reports why. */
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := Sum(msgs[i], mode)
			if err != nil {
				return err
			}
			sums[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	/* gctx is always done after Wait; only the caller's ctx says whether we were cancelled. */
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sums, nil
}
