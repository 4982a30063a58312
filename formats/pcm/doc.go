// SPDX-License-Identifier: EPL-2.0

// Package pcm decodes headerless raw PCM byte streams.
//
// Unlike the container formats (WAV, MP3, Ogg Vorbis, AIFF), raw PCM is
// not self-describing: the sample rate, channel count, and bit depth must
// be supplied by the caller through a Format value. The package exists as
// a compatibility shim for producers that emit bare sample data, most
// notably generative speech APIs that return 24 kHz mono 16-bit PCM
// without a header.
//
// # Usage
//
//	dec := pcm.Decoder{Format: pcm.DefaultFormat}
//	src, err := dec.Decode(bytes.NewReader(payload))
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadAll(src)
//
// DefaultFormat (24000 Hz, mono, 16-bit) reflects one vendor's current
// output convention. Treat it as a documented default, not a discovered
// property of the data; when the producer's format is known to differ,
// pass it explicitly.
//
// # Sample conversion
//
// 16-bit input is interpreted as signed little-endian and rescaled by
// 1/32768. 8-bit input follows the WAV convention of unsigned samples
// centered on 128. An empty stream decodes to zero frames without error;
// a stream that ends mid-sample fails with ErrTruncatedSample.
package pcm
