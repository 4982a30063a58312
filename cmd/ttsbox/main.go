// SPDX-License-Identifier: EPL-2.0

// Command ttsbox synthesizes speech from text, decodes the provider's
// audio payload, and either plays it or saves it as a WAV artifact.
//
// Example:
//
//	ttsbox -text "hola mundo" -lang es -accent MX -style joyful -out greeting
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/dshemer/ttsbox"
	"github.com/dshemer/ttsbox/formats/pcm"
	"github.com/dshemer/ttsbox/formats/wav"
	"github.com/dshemer/ttsbox/internal/config"
	"github.com/dshemer/ttsbox/player"
	"github.com/dshemer/ttsbox/store"
	"github.com/dshemer/ttsbox/tts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("config: %v", err)
	}

	var (
		text     string
		lang     string
		accent   string
		style    string
		voice    string
		endpoint string
		out      string
		rate     int
		speed    float64
		detune   int
	)

	flag.StringVar(&text, "text", "", "text to synthesize (required)")
	flag.StringVar(&lang, "lang", cfg.Language, "target language: es|en")
	flag.StringVar(&accent, "accent", cfg.AccentRegion, "accent region, e.g. MX")
	flag.StringVar(&style, "style", cfg.Style, "speaking style: natural|joyful|sad|whisper|storyteller")
	flag.StringVar(&voice, "voice", cfg.Voice, "provider voice identifier")
	flag.StringVar(&endpoint, "endpoint", cfg.Endpoint, "synthesis endpoint URL")
	flag.StringVar(&out, "out", "", "artifact name; saved under the output dir as <name>.wav (empty = play instead)")
	flag.IntVar(&rate, "rate", 0, "resample saved WAV to this rate in Hz (0 = keep decoded rate)")
	flag.Float64Var(&speed, "speed", 1.0, "playback rate multiplier")
	flag.IntVar(&detune, "detune", 0, "playback detune in cents, -1200..1200")
	flag.Parse()

	var zl *zap.Logger
	if cfg.DebugMode {
		zl, _ = zap.NewDevelopment()
	} else {
		zl, _ = zap.NewProduction()
	}
	logger := zl.Sugar()
	defer zl.Sync() // flush

	if text == "" {
		logger.Error("no text given, use -text")
		os.Exit(2)
	}
	if endpoint == "" {
		logger.Error("no synthesis endpoint configured, use -endpoint or TTSBOX_ENDPOINT")
		os.Exit(2)
	}

	client := tts.NewClient(endpoint, cfg.APIKey, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	payload, err := client.Synthesize(ctx, tts.Request{
		Text:         text,
		Language:     tts.Language(lang),
		AccentRegion: accent,
		Style:        tts.Style(style),
		Voice:        voice,
	})
	if err != nil {
		logger.Errorw("synthesis failed", "error", err)
		os.Exit(1)
	}

	fallback := pcm.Format{
		SampleRate: cfg.FallbackSampleRate,
		Channels:   cfg.FallbackChannels,
		BitDepth:   cfg.FallbackBitDepth,
	}

	buf, err := ttsbox.DecodePayload(payload, fallback)
	if err != nil {
		logger.Errorw("payload decode failed", "error", err, "payloadBytes", len(payload))
		os.Exit(1)
	}

	logger.Infow("payload decoded",
		"sampleRate", buf.Rate,
		"channels", buf.NumChannels(),
		"frames", buf.FrameCount(),
		"duration", buf.Duration().String(),
	)

	if out == "" {
		err := player.Play(buf, player.Options{Rate: speed, DetuneCents: detune})
		if err != nil {
			logger.Errorw("playback failed", "error", err)
			os.Exit(1)
		}
		return
	}

	var data []byte
	if rate > 0 && rate != buf.Rate {
		pcm16, outRate, err := ttsbox.ResampleToMono16(buf.Source(), rate, 4096)
		if err != nil {
			logger.Errorw("resample failed", "error", err)
			os.Exit(1)
		}
		w := new(bytes.Buffer)
		if err := wav.WriteWAV16(w, outRate, pcm16); err != nil {
			logger.Errorw("wav encode failed", "error", err)
			os.Exit(1)
		}
		data = w.Bytes()
	} else {
		data = wav.Encode(buf)
	}

	fs := store.NewFileStore(cfg.OutputDir)
	path, err := fs.SaveWAV(out, data)
	if err != nil {
		logger.Errorw("saving artifact failed", "error", err)
		os.Exit(1)
	}

	logger.Infow("artifact saved", "path", path, "bytes", len(data), "mime", store.MIMEType)
}

// fatalf is for failures before the logger exists.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ttsbox: "+format+"\n", args...)
	os.Exit(1)
}
