// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
	"time"
)

func TestNewBuffer(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(44100, 2, 128)

	if buf.Rate != 44100 {
		t.Errorf("Rate = %d, want 44100", buf.Rate)
	}
	if buf.NumChannels() != 2 {
		t.Errorf("NumChannels() = %d, want 2", buf.NumChannels())
	}
	if buf.FrameCount() != 128 {
		t.Errorf("FrameCount() = %d, want 128", buf.FrameCount())
	}
	for c, ch := range buf.Channels {
		for i, v := range ch {
			if v != 0 {
				t.Fatalf("channel %d sample %d = %v, want 0 (silence)", c, i, v)
			}
		}
	}
}

func TestFromInterleaved(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		channels   int
		samples    []float32
		wantFrames int
		wantCh     [][]float32
	}{
		{
			name:       "mono",
			channels:   1,
			samples:    []float32{0.1, 0.2, 0.3},
			wantFrames: 3,
			wantCh:     [][]float32{{0.1, 0.2, 0.3}},
		},
		{
			name:       "stereo",
			channels:   2,
			samples:    []float32{0.1, -0.1, 0.2, -0.2},
			wantFrames: 2,
			wantCh:     [][]float32{{0.1, 0.2}, {-0.1, -0.2}},
		},
		{
			name:       "partial frame dropped",
			channels:   2,
			samples:    []float32{0.1, -0.1, 0.2},
			wantFrames: 1,
			wantCh:     [][]float32{{0.1}, {-0.1}},
		},
		{
			name:       "empty",
			channels:   1,
			samples:    nil,
			wantFrames: 0,
			wantCh:     [][]float32{{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := FromInterleaved(24000, tt.channels, tt.samples)

			if buf.FrameCount() != tt.wantFrames {
				t.Fatalf("FrameCount() = %d, want %d", buf.FrameCount(), tt.wantFrames)
			}
			for c, want := range tt.wantCh {
				for i, w := range want {
					if got := buf.Channels[c][i]; got != w {
						t.Errorf("channel %d sample %d = %v, want %v", c, i, got, w)
					}
				}
			}
		})
	}
}

func TestBuffer_Interleaved(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}
	buf := FromInterleaved(24000, 2, in)

	out := buf.Interleaved()
	if len(out) != len(in) {
		t.Fatalf("Interleaved() length = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("sample[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rate   int
		frames int
		want   time.Duration
	}{
		{"one second", 24000, 24000, time.Second},
		{"half second", 48000, 24000, 500 * time.Millisecond},
		{"empty", 24000, 0, 0},
		{"zero rate", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := NewBuffer(tt.rate, 1, tt.frames)
			if got := buf.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuffer_Source(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, -0.1, 0.2, -0.2}
	buf := FromInterleaved(22050, 2, in)

	src := buf.Source()
	defer src.Close()

	if src.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	for i := range in {
		if dst[i] != in[i] {
			t.Errorf("sample[%d] = %v, want %v", i, dst[i], in[i])
		}
	}

	if _, err := src.ReadSamples(dst); err != io.EOF {
		t.Errorf("ReadSamples() after drain error = %v, want io.EOF", err)
	}
}

func TestBuffer_SourcePartialReads(t *testing.T) {
	t.Parallel()

	buf := NewBuffer(8000, 2, 10)
	for i := range 10 {
		buf.Channels[0][i] = float32(i)
		buf.Channels[1][i] = -float32(i)
	}

	src := buf.Source()
	defer src.Close()

	// Odd destination length: only whole frames are emitted
	dst := make([]float32, 5)
	var got []float32
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != 20 {
		t.Fatalf("read %d samples, want 20", len(got))
	}
	want := buf.Interleaved()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	in := NewBuffer(16000, 2, 300)
	for i := range 300 {
		in.Channels[0][i] = float32(i) / 300.0
		in.Channels[1][i] = -float32(i) / 300.0
	}

	out, err := ReadAll(in.Source())
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if out.Rate != 16000 {
		t.Errorf("Rate = %d, want 16000", out.Rate)
	}
	if out.NumChannels() != 2 {
		t.Errorf("NumChannels() = %d, want 2", out.NumChannels())
	}
	if out.FrameCount() != 300 {
		t.Fatalf("FrameCount() = %d, want 300", out.FrameCount())
	}
	for c := range 2 {
		for i := range 300 {
			if out.Channels[c][i] != in.Channels[c][i] {
				t.Fatalf("channel %d sample %d = %v, want %v",
					c, i, out.Channels[c][i], in.Channels[c][i])
			}
		}
	}
}

func TestReadAll_PropagatesError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("device gone")
	src := &failingSource{err: readErr}

	if _, err := ReadAll(src); !errors.Is(err, readErr) {
		t.Errorf("ReadAll() error = %v, want wrapped %v", err, readErr)
	}
	if !src.closed {
		t.Error("ReadAll() did not close the source on error")
	}
}

type failingSource struct {
	err    error
	closed bool
}

func (s *failingSource) SampleRate() int                   { return 24000 }
func (s *failingSource) Channels() int                     { return 1 }
func (s *failingSource) BufSize() int                      { return 64 }
func (s *failingSource) ReadSamples([]float32) (int, error) { return 0, s.err }

func (s *failingSource) Close() error {
	s.closed = true
	return nil
}
