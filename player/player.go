// SPDX-License-Identifier: EPL-2.0

// Package player renders a decoded audio.Buffer to the platform audio
// output. Playback rate and detune combine into a single resample ratio;
// the buffer itself is never modified.
package player

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/dshemer/ttsbox/audio"
)

// DetuneRange bounds Options.DetuneCents to one octave in either direction.
const DetuneRange = 1200

// Options are the real-time playback parameters.
type Options struct {
	// Rate is the playback speed multiplier. Zero means 1.0 (normal
	// speed); negative values are rejected.
	Rate float64
	// DetuneCents shifts pitch in cents (1/100 semitone), within
	// [-DetuneRange, DetuneRange].
	DetuneCents int
}

// ratio folds rate and detune into one resample factor.
func (o Options) ratio() (float64, error) {
	rate := o.Rate
	if rate == 0 {
		rate = 1.0
	}
	if rate < 0 {
		return 0, ErrInvalidRate
	}
	if o.DetuneCents < -DetuneRange || o.DetuneCents > DetuneRange {
		return 0, ErrDetuneOutOfRange
	}

	return rate * math.Pow(2, float64(o.DetuneCents)/DetuneRange), nil
}

// Play renders buf through the system speaker and blocks until playback
// finishes. A zero-frame buffer returns immediately.
func Play(buf *audio.Buffer, opts Options) error {
	ratio, err := opts.ratio()
	if err != nil {
		return err
	}

	if buf.FrameCount() == 0 {
		return nil
	}
	if buf.Rate <= 0 {
		return ErrInvalidSampleRate
	}

	sr := beep.SampleRate(buf.Rate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("%w", err)
	}

	var streamer beep.Streamer = &bufferStreamer{buf: buf}
	if ratio != 1.0 {
		streamer = beep.ResampleRatio(4, ratio, streamer)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() { close(done) })))
	<-done

	return nil
}

// bufferStreamer adapts an audio.Buffer to beep's stereo float64 stream.
// Mono buffers play the same samples on both channels; channels past the
// second are ignored.
type bufferStreamer struct {
	buf *audio.Buffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	frames := s.buf.FrameCount()
	if s.pos >= frames {
		return 0, false
	}

	n := 0
	for i := range samples {
		if s.pos >= frames {
			break
		}
		left := float64(s.buf.Channels[0][s.pos])
		right := left
		if s.buf.NumChannels() > 1 {
			right = float64(s.buf.Channels[1][s.pos])
		}
		samples[i][0] = left
		samples[i][1] = right
		s.pos++
		n++
	}

	return n, true
}

func (s *bufferStreamer) Err() error { return nil }
