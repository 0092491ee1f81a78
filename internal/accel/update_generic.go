package accel

import (
	"encoding/binary"
	"unsafe"
)

// updateGeneric is the slicing-by-8 kernel. It consumes single bytes until
// the data pointer is 4-byte aligned, then 8 bytes per iteration, then the
// tail. Alignment only affects speed, never the result.
func updateGeneric(crc uint32, p []byte) uint32 {
	if len(p) == 0 {
		return crc
	}

	lead := int(-uintptr(unsafe.Pointer(unsafe.SliceData(p))) & 3)
	if lead > len(p) {
		lead = len(p)
	}
	for _, b := range p[:lead] {
		crc = table[0][byte(crc)^b] ^ crc>>8
	}
	p = p[lead:]

	for len(p) >= 8 {
		crc ^= binary.LittleEndian.Uint32(p)
		hi := binary.LittleEndian.Uint32(p[4:])
		crc = table[7][crc&0xff] ^
			table[6][crc>>8&0xff] ^
			table[5][crc>>16&0xff] ^
			table[4][crc>>24] ^
			table[3][hi&0xff] ^
			table[2][hi>>8&0xff] ^
			table[1][hi>>16&0xff] ^
			table[0][hi>>24]
		p = p[8:]
	}

	for _, b := range p {
		crc = table[0][byte(crc)^b] ^ crc>>8
	}
	return crc
}
