package crc32c

import "runtime"

type options struct {
	concurrency      int
	metricsCollector MetricsCollector
}

// Option configures ChecksumAll, Verify and the checksumming Reader and Writer.
type Option func(*options)

// WithConcurrency limits how many buffers ChecksumAll hashes at once.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &crc32c.BasicMetricsCollector{}
//	sums, _ := crc32c.ChecksumAll(ctx, bufs, crc32c.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Buffers: %d, Avg latency: %dns\n", stats.ChecksumCount, stats.ChecksumAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o
}
