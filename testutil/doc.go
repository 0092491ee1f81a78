// Package testutil provides testing utilities for crc32c.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded byte-buffer generators, misaligned copies of
// buffers, and the lengths at which the checksum kernels change chunk size.
//
// # Random Buffers
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.Bytes(4096)
//	rng.Fill(buf)
//
// # Alignment
//
//	for off := range testutil.MaxMisalignment {
//	    b := testutil.Misaligned(buf, off)
//	    // b has the same contents as buf, starting off bytes past an 8-byte boundary
//	}
package testutil
