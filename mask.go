package crc32c

const maskDelta = 0xa282ead8

// Mask returns a masked representation of crc.
//
// Computing the CRC of data that itself embeds CRCs weakens the check,
// so CRCs stored inside checksummed data (e.g. record headers) should be
// masked first. The transform matches LevelDB and RocksDB.
func Mask(crc uint32) uint32 {
	// Rotate right by 15 bits and add a constant.
	return ((crc >> 15) | (crc << 17)) + maskDelta
}

// Unmask returns the crc whose masked representation is masked.
func Unmask(masked uint32) uint32 {
	rot := masked - maskDelta
	return (rot >> 17) | (rot << 15)
}
