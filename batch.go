package crc32c

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// ChecksumAll returns the checksum of every buffer in bufs, in order.
//
// Buffers are independent, so they are hashed in parallel. Each buffer is
// still processed by a single goroutine. If ctx is cancelled before all
// buffers are done, ChecksumAll returns the context's error.
func ChecksumAll(ctx context.Context, bufs [][]byte, optFns ...Option) ([]uint32, error) {
	o := applyOptions(optFns)
	start := time.Now()

	sums, err := checksumAll(ctx, bufs, o)
	o.metricsCollector.RecordBatch(len(bufs), time.Since(start), err)
	return sums, err
}

func checksumAll(ctx context.Context, bufs [][]byte, o options) ([]uint32, error) {
	sums := make([]uint32, len(bufs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, b := range bufs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			sums[i] = Checksum(b)
			o.metricsCollector.RecordChecksum(len(b), time.Since(start))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sums, nil
}
