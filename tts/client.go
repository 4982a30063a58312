// SPDX-License-Identifier: EPL-2.0

package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxResponseBytes bounds how much of a provider response is read:
// errors are truncated to a few KB, JSON bodies to a few MB of base64.
const (
	maxErrorBytes    = 4096
	maxResponseBytes = 16 << 20
)

// Client talks to a generative text-to-speech HTTP endpoint. The wire
// contract is a JSON POST returning {"audioContent": "<base64>"}; the
// decoded bytes are handed back as-is.
type Client struct {
	http     *http.Client
	endpoint string
	apiKey   string
	logger   *zap.SugaredLogger
}

// NewClient creates a Client for the given endpoint. apiKey is sent as a
// bearer token. logger may be nil.
func NewClient(endpoint, apiKey string, logger *zap.SugaredLogger) *Client {
	return &Client{
		http:     &http.Client{Timeout: 60 * time.Second},
		endpoint: endpoint,
		apiKey:   apiKey,
		logger:   logger,
	}
}

// requestPayload mirrors the provider's synthesis request shape.
type requestPayload struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		Name         string `json:"name,omitempty"`
		LanguageCode string `json:"languageCode,omitempty"`
		Style        string `json:"style,omitempty"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding,omitempty"`
	} `json:"audioConfig"`
}

type jsonAudioResponse struct {
	AudioContent string `json:"audioContent"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Synthesize sends text plus voice parameters to the provider and returns
// the raw audio payload. Provider failures come back as *UpstreamError;
// they are never retried here.
func (c *Client) Synthesize(ctx context.Context, req Request) ([]byte, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}
	if !req.Language.Valid() {
		return nil, ErrInvalidLanguage
	}
	style := req.Style
	if style == "" {
		style = StyleNatural
	}
	if !style.Valid() {
		return nil, ErrInvalidStyle
	}

	var rp requestPayload
	rp.Input.Text = req.Text
	rp.Voice.Name = req.Voice
	rp.Voice.LanguageCode = req.LanguageCode()
	rp.Voice.Style = string(style)
	rp.AudioConfig.AudioEncoding = "LINEAR16"

	body, err := json.Marshal(&rp)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.Infow("synthesis request completed",
			"status", resp.StatusCode,
			"took", time.Since(started).String(),
			"textLen", len(req.Text),
		)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = resp.Status
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	var jr jsonAudioResponse
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	if err := dec.Decode(&jr); err != nil {
		return nil, fmt.Errorf("decoding synthesis response: %w", err)
	}

	if strings.TrimSpace(jr.AudioContent) == "" {
		msg := jr.Error.Message
		if msg == "" {
			msg = "no audio content in response"
		}
		return nil, &UpstreamError{Message: msg}
	}

	data, err := base64.StdEncoding.DecodeString(jr.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decoding audio content: %w", err)
	}

	return data, nil
}
