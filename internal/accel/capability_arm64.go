//go:build arm64 && !noasm

package accel

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

const hardwareImpl = ARM64CRC

// Apple silicon always implements the CRC32 extension, but older
// x/sys/cpu releases do not report features on darwin.
func hasHardware() bool {
	return cpu.ARM64.HasCRC32 || runtime.GOOS == "darwin"
}
