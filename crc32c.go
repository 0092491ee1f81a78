package crc32c

import "github.com/hupe1980/crc32c/internal/accel"

// Size of a CRC32C checksum in bytes.
const Size = 4

// Update returns the result of adding the bytes in p to crc.
//
// Any uint32 is a valid accumulator. Update(crc, nil) returns crc, and
// Update(Update(crc, a), b) equals Update(crc, a||b), so data that arrives
// in pieces can be checksummed by threading the result through calls in
// order. The accumulator follows the usual inverted-register convention,
// so results agree with hash/crc32 and other CRC32C implementations.
func Update(crc uint32, p []byte) uint32 {
	return ^accel.Update(^crc, p)
}

// UpdateRaw feeds p into the CRC register crc without inverting it on
// entry or exit. Chained calls starting from 0 produce the values of
// implementations that expose the bare register (e.g. RAMCloud), which
// differ from Update: UpdateRaw(c, p) == ^Update(^c, p).
func UpdateRaw(crc uint32, p []byte) uint32 {
	return accel.Update(crc, p)
}

// Checksum returns the CRC32C checksum of data.
func Checksum(data []byte) uint32 {
	return Update(0, data)
}

// Info describes the kernel selected for this process.
type Info struct {
	// Impl is the active kernel: "generic", "sse42" or "arm64crc".
	Impl string
	// Hardware reports whether the CPU offers a CRC32C instruction.
	Hardware bool
	// Overridden reports whether CRC32C_IMPL chose the kernel.
	Overridden bool
}

// Implementation returns the kernel selection for this process.
func Implementation() Info {
	return Info{
		Impl:       accel.Active().String(),
		Hardware:   accel.HasHardware(),
		Overridden: accel.IsOverridden(),
	}
}
