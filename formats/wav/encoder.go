// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"

	"github.com/dshemer/ttsbox/audio"
	"github.com/dshemer/ttsbox/utils"
)

// headerSize is the canonical RIFF/WAVE header length for integer PCM.
const headerSize = 44

// Encode renders buf as a complete 16-bit PCM RIFF/WAVE file, wholly
// materialized in memory. The output is always headerSize + frames*channels*2
// bytes; all multi-byte header fields are little-endian. Samples are clamped
// to [-1, 1] and quantized with utils.Float32ToInt16, so a full-scale
// negative sample encodes as -32768 and a full-scale positive as 32767.
//
// Encode never fails: a zero-frame buffer yields a header-only 44-byte file.
// The output bit depth is fixed at 16; wider artifacts are out of contract.
func Encode(buf *audio.Buffer) []byte {
	channels := buf.NumChannels()
	frames := buf.FrameCount()
	dataSize := frames * channels * 2
	total := headerSize + dataSize

	out := make([]byte, total)
	putHeader(out, buf.Rate, channels, dataSize)

	off := headerSize
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			v := utils.Float32ToInt16(buf.Channels[c][f])
			binary.LittleEndian.PutUint16(out[off:off+2], uint16(v))
			off += 2
		}
	}

	return out
}

// putHeader writes the canonical 44-byte RIFF/WAVE header for 16-bit
// integer PCM into dst. dst must be at least headerSize bytes.
func putHeader(dst []byte, sampleRate, channels, dataSize int) {
	// RIFF header
	copy(dst[0:4], "RIFF")
	binary.LittleEndian.PutUint32(dst[4:8], uint32(36+dataSize))
	copy(dst[8:12], "WAVE")

	// fmt chunk
	copy(dst[12:16], "fmt ")
	binary.LittleEndian.PutUint32(dst[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(dst[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(dst[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(sampleRate*channels*2)) // byte rate
	binary.LittleEndian.PutUint16(dst[32:34], uint16(channels*2))            // block align
	binary.LittleEndian.PutUint16(dst[34:36], 16)                            // bits per sample

	// data chunk header
	copy(dst[36:40], "data")
	binary.LittleEndian.PutUint32(dst[40:44], uint32(dataSize))
}
