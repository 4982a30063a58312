// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 data.
// It is one of the container decoders the payload probe consults when a
// synthesis payload starts with an ID3 tag or a bare MPEG frame sync.
//
// # Decoding MP3 Data
//
// Use the Decoder to read MP3 streams:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0].
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (stereo)
//   - Sample rate: Depends on the MP3 data (typically 44.1kHz or 48kHz)
//
// To convert to mono or resample, use the audio package:
//
//	mp3Source, _ := decoder.Decode(file)
//	resampled := audio.NewResampler(mp3Source, 8000)
//	mono := audio.NewMonoMixer(resampled)
//
// # Limitations
//
// Note:
//   - MP3 writing is not supported (decoding only)
//   - Output is always stereo (use MonoMixer to convert)
//   - Requires reading entire frames for decoding
//
// Example converting MP3 to WAV:
//
//	mp3File, _ := os.Open("input.mp3")
//	mp3Decoder := mp3.Decoder{}
//	source, _ := mp3Decoder.Decode(mp3File)
//
//	// Resample and convert to mono
//	pcm16, rate, _ := ttsbox.ResampleToMono16(source, 8000, 4096)
//
//	// Write as WAV
//	wavFile, _ := os.Create("output.wav")
//	wav.WriteWAV16(wavFile, rate, pcm16)
package mp3
