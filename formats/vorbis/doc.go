// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// data. It is one of the container decoders the payload probe consults
// when a synthesis payload starts with the OggS capture pattern.
//
// # Decoding Vorbis Data
//
// Use the Decoder to read Ogg Vorbis streams:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
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
// Vorbis decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: Depends on the stream (mono or stereo typically)
//   - Sample rate: Depends on the stream (commonly 44.1kHz or 48kHz)
//
// # Channel Layout
//
// For stereo streams, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// To convert to mono:
//
//	vorbisSource, _ := decoder.Decode(file)
//	mono := audio.NewMonoMixer(vorbisSource)
//
// # Limitations
//
// Note:
//   - Vorbis encoding is not supported (decoding only)
//   - Reading is frame-based (decode entire frames)
//
// # Example: Vorbis to WAV Conversion
//
//	oggFile, _ := os.Open("input.ogg")
//	vorbisDecoder := vorbis.Decoder{}
//	source, _ := vorbisDecoder.Decode(oggFile)
//
//	// Resample and convert to mono
//	pcm16, rate, _ := ttsbox.ResampleToMono16(source, 16000, 4096)
//
//	// Write as WAV
//	wavFile, _ := os.Create("output.wav")
//	wav.WriteWAV16(wavFile, rate, pcm16)
package vorbis
