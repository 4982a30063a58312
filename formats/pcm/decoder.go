// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dshemer/ttsbox/audio"
)

// Format describes the layout of a headerless PCM byte stream. Raw PCM
// carries no self-description, so every field must come from the caller
// (or from DefaultFormat when the producer's convention is known).
type Format struct {
	// SampleRate in Hz. Must be positive.
	SampleRate int
	// Channels is the interleaved channel count. Must be positive.
	Channels int
	// BitDepth is bits per sample: 16 (signed little-endian) or
	// 8 (unsigned, WAV convention).
	BitDepth int
}

// DefaultFormat matches the raw output convention of the speech provider
// this package was written against: 24 kHz, mono, 16-bit signed
// little-endian. It is a compatibility default, not a detected property;
// pass an explicit Format when the producer differs.
var DefaultFormat = Format{SampleRate: 24000, Channels: 1, BitDepth: 16}

// Valid reports whether the format can describe a PCM stream.
func (f Format) Valid() bool {
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return false
	}
	return f.BitDepth == 8 || f.BitDepth == 16
}

func (f Format) bytesPerSample() int { return f.BitDepth / 8 }

// source streams float32 samples out of a headerless PCM byte reader.
type source struct {
	r      io.Reader
	format Format
	buf    []byte
}

func (s *source) SampleRate() int { return s.format.SampleRate }
func (s *source) Channels() int   { return s.format.Channels }
func (s *source) BufSize() int    { return cap(s.buf) / s.format.bytesPerSample() }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	width := s.format.bytesPerSample()
	need := len(dst) * width
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / width
	if samples*width != n {
		// A dangling byte can never complete a sample
		return 0, ErrTruncatedSample
	}

	switch s.format.BitDepth {
	case 8:
		for i := range samples {
			dst[i] = (float32(s.buf[i]) - 128.0) / 128.0
		}
	default: // 16
		for i := range samples {
			v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
			dst[i] = float32(v) / 32768.0
		}
	}

	if samples == 0 {
		return 0, io.EOF
	}
	return samples, nil
}

// Decoder interprets a byte stream as headerless linear PCM in the given
// Format. A zero-value Decoder uses DefaultFormat.
type Decoder struct {
	Format Format
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	format := d.Format
	if format == (Format{}) {
		format = DefaultFormat
	}
	if !format.Valid() {
		return nil, ErrInvalidFormat
	}

	return &source{
		r:      r,
		format: format,
		buf:    make([]byte, 4096),
	}, nil
}
