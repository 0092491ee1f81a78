//go:build amd64 && !noasm

package accel

// updateHardware feeds p into crc with the SSE4.2 crc32 instruction,
// 32 bytes per iteration, then 8, 2 and 1. It must only be called when
// hasHardware reports true.
//
//go:noescape
func updateHardware(crc uint32, p []byte) uint32
