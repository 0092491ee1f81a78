// Package crc32c computes CRC-32 checksums with the Castagnoli polynomial.
//
// CRC32C is the checksum used by iSCSI, SCTP, ext4, Btrfs, LevelDB and
// RocksDB. It detects all single-bit, double-bit and odd-bit errors, plus
// burst errors up to 32 bits.
//
// # Implementations
//
// The package picks a kernel once per process:
//
//   - x86-64 with SSE4.2: the crc32 instruction, 32 bytes per iteration
//   - ARM64 with the CRC32 extension: the crc32c* instructions
//   - everything else: a slicing-by-8 table-driven kernel
//
// All kernels produce identical results. Set CRC32C_IMPL=generic to force
// the software kernel at runtime, or build with -tags noasm to drop the
// assembly entirely.
//
// # Usage
//
// One-shot:
//
//	sum := crc32c.Checksum(data)
//
// Data delivered in pieces:
//
//	crc := crc32c.Update(0, part1)
//	crc = crc32c.Update(crc, part2) // == crc32c.Checksum(append(part1, part2...))
//
// Streaming through the standard hash interface:
//
//	h := crc32c.New()
//	io.Copy(h, r)
//	sum := h.Sum32()
//
// Update and Checksum use the conventional inverted register, so results
// match hash/crc32, iSCSI and LevelDB. UpdateRaw exposes the bare register
// for formats that store it uninverted.
//
// CRCs that end up inside other checksummed data (record headers, block
// trailers) should be stored masked, see Mask and Unmask.
package crc32c
