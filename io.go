package crc32c

import "io"

// Writer wraps an io.Writer and keeps a running CRC32C of everything
// successfully written through it.
type Writer struct {
	w   io.Writer
	crc uint32
}

// NewWriter creates a new checksumming writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write implements io.Writer.
func (cw *Writer) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if n > 0 {
		cw.crc = Update(cw.crc, p[:n])
	}
	return n, err
}

// Sum32 returns the checksum of the bytes written so far.
func (cw *Writer) Sum32() uint32 {
	return cw.crc
}

// Reset resets the checksum to its initial state.
func (cw *Writer) Reset() {
	cw.crc = 0
}

// Reader wraps an io.Reader and keeps a running CRC32C of everything
// read through it.
type Reader struct {
	r       io.Reader
	crc     uint32
	metrics MetricsCollector
}

// NewReader creates a new checksumming reader.
// A configured MetricsCollector sees every failed Verify.
func NewReader(r io.Reader, optFns ...Option) *Reader {
	o := applyOptions(optFns)
	return &Reader{r: r, metrics: o.metricsCollector}
}

// Read implements io.Reader.
func (cr *Reader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.crc = Update(cr.crc, p[:n])
	}
	return n, err
}

// Sum32 returns the checksum of the bytes read so far.
func (cr *Reader) Sum32() uint32 {
	return cr.crc
}

// Reset resets the checksum to its initial state.
func (cr *Reader) Reset() {
	cr.crc = 0
}

// Verify checks the bytes read so far against expected.
func (cr *Reader) Verify(expected uint32) error {
	return verify(cr.metrics, expected, cr.crc)
}
