// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks shared by the decoders
// and processors:
//   - Buffer, the canonical materialized sample representation
//   - Source interface for streaming audio input
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Format registry for decoder registration
//
// # Buffer
//
// A Buffer holds per-channel float32 samples at a fixed sample rate. It
// is what the payload probe produces and what the WAV encoder and the
// player consume:
//
//	buf, err := audio.ReadAll(src)
//	frames := buf.FrameCount()
//	interleaved := buf.Interleaved()
//
// Buffers are created once and read-only afterwards. Buffer.Source turns
// a Buffer back into a Source for the streaming pipeline.
//
// # Source Interface
//
// The Source interface is the foundation of streaming processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface, allowing them to be
// chained together in processing pipelines.
//
// # Resampling
//
// The Resampler changes the sample rate of audio using cubic interpolation:
//
//	resampler := audio.NewResampler(source, 16000)
//	buf := make([]float32, 4096)
//	n, err := resampler.ReadSamples(buf)
//
// Resampling works for both upsampling and downsampling.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//
// # Format Registry
//
// The registry allows dynamic decoder registration by format key:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// The payload probe in the root package uses a registry keyed by sniffed
// magic bytes.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it easy to process audio without worrying
// about bit depths; clamping to the range happens at quantization time,
// not before.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available. Other
// errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
