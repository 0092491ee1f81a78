package accel

// castagnoli is the reflected form of the Castagnoli polynomial 0x1EDC6F41.
const castagnoli = 0x82f63b78

type slicing8Table [8][256]uint32

// table is filled once at init and only read afterwards.
var table slicing8Table

func init() {
	makeSlicing8Table(&table, castagnoli)
}

// makeSlicing8Table fills t so that t[0] is the byte-at-a-time table and
// t[k][i] is the register after feeding byte i followed by k zero bytes.
// Entries assume little-endian word loads.
func makeSlicing8Table(t *slicing8Table, poly uint32) {
	for i := range uint32(256) {
		crc := i
		for range 8 {
			if crc&1 == 1 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		t[0][i] = crc
	}
	for i := range 256 {
		crc := t[0][i]
		for k := 1; k < 8; k++ {
			crc = t[0][crc&0xff] ^ crc>>8
			t[k][i] = crc
		}
	}
}
