package testutil

import (
	"math/rand"
	"sync"
	"unsafe"
)

// MaxMisalignment is the number of distinct start offsets Misaligned can
// produce relative to an 8-byte boundary.
const MaxMisalignment = 8

// BoundaryLengths covers every chunk-size transition of the hardware
// (32/8/2/1) and software (4-byte lead, 8-byte body) kernels.
var BoundaryLengths = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 39, 40, 41, 63, 64, 65, 255, 256, 257, 1024, 4099}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Fill fills dst with pseudo-random bytes.
// Locks only once per call.
func (r *RNG) Fill(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	out := make([]byte, n)
	r.Fill(out)
	return out
}

// Buffers returns num buffers with lengths drawn from [0, maxLen].
// Uses a single backing array for efficiency.
func (r *RNG) Buffers(num, maxLen int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	lens := make([]int, num)
	total := 0
	for i := range lens {
		lens[i] = r.rand.Intn(maxLen + 1)
		total += lens[i]
	}

	data := make([]byte, total)
	_, _ = r.rand.Read(data)

	out := make([][]byte, num)
	off := 0
	for i, n := range lens {
		out[i] = data[off : off+n : off+n]
		off += n
	}
	return out
}

// Misaligned returns a copy of data whose first byte sits offset bytes
// past an 8-byte boundary. offset is reduced modulo MaxMisalignment into
// [0, MaxMisalignment), so negative offsets count back from the next boundary.
func Misaligned(data []byte, offset int) []byte {
	offset = (offset%MaxMisalignment + MaxMisalignment) % MaxMisalignment
	backing := make([]byte, len(data)+2*MaxMisalignment)
	start := int(-uintptr(unsafe.Pointer(unsafe.SliceData(backing))) & (MaxMisalignment - 1))
	start += offset
	out := backing[start : start+len(data) : start+len(data)]
	copy(out, data)
	return out
}

// Alignment returns the address of b's first element modulo MaxMisalignment.
func Alignment(b []byte) int {
	return int(uintptr(unsafe.Pointer(unsafe.SliceData(b))) & (MaxMisalignment - 1))
}
