// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Buffer is the canonical decoded audio representation: one float32 slice
// per channel, every slice exactly FrameCount() samples long, values
// nominally in [-1, 1]. A Buffer is created once by a decoder and consumed
// read-only afterwards; callers must not mutate it.
type Buffer struct {
	// Rate is the sample rate in Hz.
	Rate int
	// Channels holds the per-channel sample data in channel order.
	Channels [][]float32
}

// NewBuffer allocates a silent Buffer with the given geometry.
func NewBuffer(rate, channels, frames int) *Buffer {
	ch := make([][]float32, channels)
	for i := range ch {
		ch[i] = make([]float32, frames)
	}
	return &Buffer{Rate: rate, Channels: ch}
}

// FromInterleaved builds a Buffer from interleaved samples. A trailing
// partial frame is dropped.
func FromInterleaved(rate, channels int, samples []float32) *Buffer {
	if channels < 1 {
		channels = 1
	}
	frames := len(samples) / channels
	buf := NewBuffer(rate, channels, frames)
	for f := range frames {
		base := f * channels
		for c := range channels {
			buf.Channels[c][f] = samples[base+c]
		}
	}
	return buf
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.Channels) }

// FrameCount returns the number of samples per channel.
func (b *Buffer) FrameCount() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Duration returns the play time of the buffer at its sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.Rate <= 0 {
		return 0
	}
	return time.Duration(b.FrameCount()) * time.Second / time.Duration(b.Rate)
}

// Interleaved returns the samples re-interleaved in frame order, as
// encoders and playback engines consume them.
func (b *Buffer) Interleaved() []float32 {
	channels := b.NumChannels()
	frames := b.FrameCount()
	out := make([]float32, frames*channels)
	for f := range frames {
		base := f * channels
		for c := range channels {
			out[base+c] = b.Channels[c][f]
		}
	}
	return out
}

// Source returns a Source that streams the buffer's samples in
// interleaved order, for feeding a Buffer back into a processing
// pipeline such as the Resampler.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int // next frame to emit
}

func (s *bufferSource) SampleRate() int { return s.buf.Rate }
func (s *bufferSource) Channels() int   { return s.buf.NumChannels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.NumChannels()
	frames := s.buf.FrameCount()
	if s.pos >= frames || channels == 0 {
		return 0, io.EOF
	}

	maxFrames := len(dst) / channels
	n := 0
	for f := 0; f < maxFrames && s.pos < frames; f++ {
		for c := 0; c < channels; c++ {
			dst[n] = s.buf.Channels[c][s.pos]
			n++
		}
		s.pos++
	}

	if s.pos >= frames {
		return n, io.EOF
	}
	return n, nil
}

// ReadAll drains src and materializes it into a Buffer. The source is
// closed on return.
func ReadAll(src Source) (*Buffer, error) {
	defer src.Close()

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}

	var samples []float32
	buf := make([]float32, size)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return FromInterleaved(src.SampleRate(), src.Channels(), samples), nil
}
