package crc32c

import (
	"encoding/binary"
	"errors"
	"hash"
)

const (
	magic         = "crc32c\x01"
	marshaledSize = len(magic) + Size
)

var (
	errInvalidHashState = errors.New("crc32c: invalid hash state identifier")
	errHashStateSize    = errors.New("crc32c: invalid hash state size")
)

type digest struct {
	crc uint32
}

// New creates a new hash.Hash32 computing the CRC32C checksum.
// Its Sum method lays the value out in big-endian byte order.
//
// The returned hash also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler, so a partially hashed stream can be saved
// and resumed later.
func New() hash.Hash32 {
	return &digest{}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, magic...)
	return binary.BigEndian.AppendUint32(b, d.crc), nil
}

func (d *digest) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, marshaledSize))
}

func (d *digest) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errInvalidHashState
	}
	if len(b) != marshaledSize {
		return errHashStateSize
	}
	d.crc = binary.BigEndian.Uint32(b[len(magic):])
	return nil
}
