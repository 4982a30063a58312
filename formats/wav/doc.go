// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav and accepts signed integer
// PCM at 16, 24, or 32 bits, mono or multi-channel, at any sample rate.
// Encoding always produces the canonical 44-byte-header 16-bit PCM
// RIFF/WAVE layout; that fixed layout is the package's one byte-exact
// contract.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Encoding WAV Files
//
// Encode renders a whole audio.Buffer into one byte slice:
//
//	data := wav.Encode(buf)
//	// len(data) == 44 + buf.FrameCount()*buf.NumChannels()*2, always
//
// Samples are clamped to [-1, 1] and quantized asymmetrically: negative
// full scale maps to -32768, positive full scale to 32767. For producers
// that already hold int16 samples, WriteWAV16 streams the same layout to
// an io.Writer:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCMSupported: compressed or float WAV variants are rejected
//   - ErrUnsupportedBitDepth: bit depth outside 16/24/32
//   - ErrUnsupportedWavLayout: unsupported WAV file structure
//
// Encoding has no failure modes; Encode is a pure function of its input.
//
// # File Format
//
// Encoded files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk header (8 bytes) followed by interleaved samples
//
// All multi-byte header fields are little-endian.
package wav
