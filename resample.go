package ttsbox

import (
	"fmt"
	"io"

	"github.com/dshemer/ttsbox/audio"
	"github.com/dshemer/ttsbox/utils"
)

// ResampleToMono16 resamples src to targetRate, mixes it down to mono, and
// collects the result as 16-bit PCM.
//
// The pipeline is Resampler (cubic interpolation) -> MonoMixer -> int16
// quantization via utils.Float32ToInt16. bufferSize controls the read
// granularity; 4096 is a reasonable default. The returned rate always
// equals targetRate.
//
// For finer control over the pipeline, compose audio.NewResampler and
// audio.NewMonoMixer directly.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	pcm16, rate, err := ttsbox.ResampleToMono16(src, 8000, 4096)
//	if err != nil && err != io.EOF {
//	    panic(err)
//	}
//	// pcm16 now contains mono 16-bit PCM at 8kHz
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	resampler := audio.NewResampler(src, targetRate)
	mono := audio.NewMonoMixer(resampler)

	// Rough initial capacity; grows as needed
	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for i := range n {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}
