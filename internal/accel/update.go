package accel

// Update returns the raw CRC32C register after feeding p into crc using
// the active implementation. The register is not inverted on entry or
// exit; callers wanting the conventional checksum apply ^ on both sides.
func Update(crc uint32, p []byte) uint32 {
	if active().impl == Generic {
		return updateGeneric(crc, p)
	}
	return updateHardware(crc, p)
}

// UpdateGeneric always runs the slicing-by-8 software kernel.
func UpdateGeneric(crc uint32, p []byte) uint32 {
	return updateGeneric(crc, p)
}

// UpdateHardware runs the hardware kernel. On CPUs or builds without one
// it behaves like UpdateGeneric.
func UpdateHardware(crc uint32, p []byte) uint32 {
	if !hasHardware() {
		return updateGeneric(crc, p)
	}
	return updateHardware(crc, p)
}
