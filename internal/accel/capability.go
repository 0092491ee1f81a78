package accel

import (
	"os"
	"strings"
	"sync"
)

// EnvOverride names the environment variable that forces a specific
// implementation, e.g. CRC32C_IMPL=generic.
const EnvOverride = "CRC32C_IMPL"

// Impl identifies a CRC32C kernel.
type Impl uint8

const (
	// Generic is the portable slicing-by-8 implementation.
	Generic Impl = iota
	// SSE42 uses the x86-64 SSE4.2 crc32 instruction.
	SSE42
	// ARM64CRC uses the ARMv8 CRC32 extension (crc32c* instructions).
	ARM64CRC
)

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE42:
		return "sse42"
	case ARM64CRC:
		return "arm64crc"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "software", "noasm":
		return Generic, true
	case "sse42":
		return SSE42, true
	case "arm64crc", "crc32":
		return ARM64CRC, true
	default:
		return Generic, false
	}
}

type selection struct {
	impl       Impl
	overridden bool
}

// active is resolved on first use. Probing is side-effect free, so the
// only reason to cache it is to keep the probe off the hot path.
var active = sync.OnceValue(func() selection {
	return selectImpl(hasHardware, os.Getenv(EnvOverride))
})

// selectImpl picks the kernel for this process. An override is honoured
// only if it names an implementation that is actually available;
// otherwise auto-detection decides.
func selectImpl(probe func() bool, override string) selection {
	hw := probe()

	if override != "" {
		if impl, ok := ParseImpl(override); ok {
			switch {
			case impl == Generic:
				return selection{impl: Generic, overridden: true}
			case hw && impl == hardwareImpl:
				return selection{impl: impl, overridden: true}
			}
		}
	}

	if hw {
		return selection{impl: hardwareImpl}
	}
	return selection{impl: Generic}
}

// Active returns the implementation used by Update.
func Active() Impl {
	return active().impl
}

// IsOverridden returns true if CRC32C_IMPL selected the implementation.
func IsOverridden() bool {
	return active().overridden
}

// HasHardware returns true if this CPU exposes a CRC32C instruction
// and the package was built with assembly support.
func HasHardware() bool {
	return hasHardware()
}
