//go:build (!amd64 && !arm64) || noasm

package accel

const hardwareImpl = Generic

func hasHardware() bool {
	return false
}

func updateHardware(crc uint32, p []byte) uint32 {
	return updateGeneric(crc, p)
}
