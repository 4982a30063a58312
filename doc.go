// SPDX-License-Identifier: EPL-2.0

// Package ttsbox turns generative text-to-speech output into playable and
// storable audio.
//
// Speech providers return an opaque byte payload: sometimes a proper audio
// container (WAV, MP3, Ogg Vorbis, AIFF), sometimes bare headerless PCM,
// depending on model and version. This package resolves that ambiguity
// with a two-strategy probe and produces a canonical in-memory sample
// buffer, which can then be played or encoded into a standards-compliant
// WAV file.
//
// # Decoding a payload
//
// DecodePayload sniffs the payload's magic bytes and tries the matching
// container decoder first; if nothing matches or the container decode
// fails, the bytes are reinterpreted as raw PCM in the given fallback
// format:
//
//	payload, err := client.Synthesize(ctx, req)
//	if err != nil {
//	    return err
//	}
//	buf, err := ttsbox.DecodePayload(payload, pcm.DefaultFormat)
//	if err != nil {
//	    return err
//	}
//	// buf.Rate, buf.NumChannels(), buf.FrameCount(), buf.Channels
//
// The fallback format (24 kHz mono 16-bit by default) is an explicit
// parameter because raw PCM is not self-describing; see formats/pcm.
//
// # Encoding a WAV artifact
//
// wav.Encode renders a buffer as a complete 16-bit PCM RIFF/WAVE file,
// byte-exact for any given buffer:
//
//	data := wav.Encode(buf)
//	path, err := store.NewFileStore("audio").SaveWAV("greeting", data)
//
// # Supported container formats
//
//   - WAV (integer PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//   - Headerless raw PCM via formats/pcm
//
// All decoders return an audio.Source; audio.ReadAll materializes a
// Source into a Buffer.
//
// # Resampling
//
// ResampleToMono16 re-renders audio at a different rate as mono 16-bit
// PCM, using cubic interpolation:
//
//	pcm16, rate, err := ttsbox.ResampleToMono16(buf.Source(), 8000, 4096)
//
// # Playback
//
// The player package renders a Buffer to the system speaker, with
// playback-rate and detune-cents controls:
//
//	err := player.Play(buf, player.Options{Rate: 1.25, DetuneCents: -100})
//
// # Concurrency
//
// Decode and encode calls share no state; concurrent calls are safe as
// long as the caller does not mutate a payload slice while a decode is
// reading it.
package ttsbox
