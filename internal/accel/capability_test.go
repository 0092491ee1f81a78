package accel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImplString(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "sse42", SSE42.String())
	assert.Equal(t, "arm64crc", ARM64CRC.String())
	assert.Equal(t, "unknown", Impl(42).String())
}

func TestParseImpl(t *testing.T) {
	tests := []struct {
		in   string
		want Impl
		ok   bool
	}{
		{"generic", Generic, true},
		{" Generic ", Generic, true},
		{"software", Generic, true},
		{"SSE42", SSE42, true},
		{"arm64crc", ARM64CRC, true},
		{"avx512", Generic, false},
		{"", Generic, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseImpl(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelectImpl(t *testing.T) {
	yes := func() bool { return true }
	no := func() bool { return false }

	tests := []struct {
		name       string
		probe      func() bool
		override   string
		want       Impl
		overridden bool
	}{
		{"auto with hardware", yes, "", hardwareImpl, false},
		{"auto without hardware", no, "", Generic, false},
		{"force generic with hardware", yes, "generic", Generic, true},
		{"force generic without hardware", no, "generic", Generic, true},
		{"unknown override ignored", yes, "bogus", hardwareImpl, false},
		{"unavailable override ignored", no, hardwareImpl.String(), Generic, hardwareImpl == Generic},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel := selectImpl(tc.probe, tc.override)
			assert.Equal(t, tc.want, sel.impl)
			assert.Equal(t, tc.overridden, sel.overridden)
		})
	}
}

func TestSelectImplHonoursAvailableHardwareOverride(t *testing.T) {
	if hardwareImpl == Generic {
		t.Skip("no hardware kernel in this build")
	}

	sel := selectImpl(func() bool { return true }, hardwareImpl.String())

	assert.Equal(t, hardwareImpl, sel.impl)
	assert.True(t, sel.overridden)
}

func TestActiveMatchesProbe(t *testing.T) {
	if IsOverridden() {
		t.Skip("implementation forced via " + EnvOverride)
	}
	if HasHardware() {
		assert.Equal(t, hardwareImpl, Active())
	} else {
		assert.Equal(t, Generic, Active())
	}
}
