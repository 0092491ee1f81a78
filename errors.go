package crc32c

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrChecksumMismatch is matched by every *MismatchError via errors.Is.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// MismatchError is returned when verification fails.
type MismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// Is reports whether target is ErrChecksumMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}

// Verify returns a *MismatchError if the checksum of data is not expected.
func Verify(data []byte, expected uint32, optFns ...Option) error {
	o := applyOptions(optFns)
	start := time.Now()
	actual := Checksum(data)
	o.metricsCollector.RecordChecksum(len(data), time.Since(start))
	return verify(o.metricsCollector, expected, actual)
}

func verify(mc MetricsCollector, expected, actual uint32) error {
	if actual != expected {
		mc.RecordMismatch()
		return &MismatchError{
			Expected: expected,
			Actual:   actual,
		}
	}
	return nil
}
