// Package rand supplies the byte streams NarrowWay tooling consumes: a
// deterministic SHAKE256 stream for reproducible test vectors and the
// operating system source for keys.
package rand

import (
	crand "crypto/rand"
	"crypto/sha3"
	"io"
)

// Stream is a deterministic byte stream read from SHAKE256 over a seed.
type Stream struct {
	h *sha3.SHAKE
}

// NewStream absorbs the inputs and returns a reader over the SHAKE256 output.
func NewStream(inputs ...[]byte) *Stream {
	h := sha3.NewSHAKE256()
	for _, input := range inputs {
		_, _ = h.Write(input)
	}
	return &Stream{h: h}
}

// Read fills p with the next bytes of the stream. It never fails.
func (s *Stream) Read(p []byte) (int, error) {
	return s.h.Read(p)
}

// Next returns the next n bytes of the stream.
func (s *Stream) Next(n int) []byte {
	b := make([]byte, n)
	_, _ = s.h.Read(b)
	return b
}

// SHAKE256 returns outputLength bytes of SHAKE256 over the concatenated inputs.
func SHAKE256(outputLength int, inputs ...[]byte) []byte {
	return NewStream(inputs...).Next(outputLength)
}

// SampleRandomBytes returns length bytes from the operating system source.
func SampleRandomBytes(length int) ([]byte, error) {
	value := make([]byte, length)
	if _, err := io.ReadFull(crand.Reader, value); err != nil {
		return nil, err
	}
	return value, nil
}
