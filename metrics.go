package crc32c

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are called once per operation (a buffer, a batch, a failed
// verification), never per byte.
type MetricsCollector interface {
	// RecordChecksum is called after each buffer checksummed on behalf of
	// an operation that was configured with this collector.
	RecordChecksum(bytes int, duration time.Duration)

	// RecordBatch is called after each ChecksumAll call.
	// count is the number of buffers, err is nil if successful.
	RecordBatch(count int, duration time.Duration, err error)

	// RecordMismatch is called whenever a verification fails.
	RecordMismatch()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordChecksum(int, time.Duration)     {}
func (NoopMetricsCollector) RecordBatch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMismatch()                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ChecksumCount      atomic.Int64
	ChecksumBytes      atomic.Int64
	ChecksumTotalNanos atomic.Int64
	BatchCount         atomic.Int64
	BatchBuffers       atomic.Int64
	BatchErrors        atomic.Int64
	BatchTotalNanos    atomic.Int64
	MismatchCount      atomic.Int64
}

// RecordChecksum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChecksum(bytes int, duration time.Duration) {
	b.ChecksumCount.Add(1)
	b.ChecksumBytes.Add(int64(bytes))
	b.ChecksumTotalNanos.Add(duration.Nanoseconds())
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchBuffers.Add(int64(count))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// RecordMismatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMismatch() {
	b.MismatchCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ChecksumCount:    b.ChecksumCount.Load(),
		ChecksumBytes:    b.ChecksumBytes.Load(),
		ChecksumAvgNanos: b.getAvgChecksumNanos(),
		BatchCount:       b.BatchCount.Load(),
		BatchBuffers:     b.BatchBuffers.Load(),
		BatchErrors:      b.BatchErrors.Load(),
		BatchAvgNanos:    b.getAvgBatchNanos(),
		MismatchCount:    b.MismatchCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgChecksumNanos() int64 {
	count := b.ChecksumCount.Load()
	if count == 0 {
		return 0
	}
	return b.ChecksumTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgBatchNanos() int64 {
	count := b.BatchCount.Load()
	if count == 0 {
		return 0
	}
	return b.BatchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ChecksumCount    int64
	ChecksumBytes    int64
	ChecksumAvgNanos int64
	BatchCount       int64
	BatchBuffers     int64
	BatchErrors      int64
	BatchAvgNanos    int64
	MismatchCount    int64
}
