package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported = errors.New("only integer PCM supported")
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)
