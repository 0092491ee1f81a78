//go:build arm64 && !noasm

package accel

// updateHardware feeds p into crc with the ARMv8 crc32c* instructions,
// 32 bytes per iteration, then 8, 2 and 1. It must only be called when
// hasHardware reports true.
//
//go:noescape
func updateHardware(crc uint32, p []byte) uint32
