//go:build amd64 && !noasm

package accel

import "golang.org/x/sys/cpu"

const hardwareImpl = SSE42

func hasHardware() bool {
	return cpu.X86.HasSSE42
}
