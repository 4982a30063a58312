package ttsbox

import "errors"

var (
	// ErrUndecodablePayload indicates both the container probe and the raw
	// PCM fallback rejected the payload
	ErrUndecodablePayload = errors.New("payload is not decodable audio")
)
