package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/audanim/audio"
)

var (
	ErrNotWavFile            = fmt.Errorf("not a WAV file: %w", audio.ErrUnsupportedFormat)
	ErrUnsupportedWavLayout  = fmt.Errorf("unsupported WAV layout: %w", audio.ErrUnsupportedFormat)
	ErrOnlyPCM16bitSupported = fmt.Errorf("only PCM 16-bit supported: %w", audio.ErrUnsupportedFormat)
	ErrUnsupportedWavChunks  = fmt.Errorf("unsupported WAV chunks: %w", audio.ErrUnsupportedFormat)
	ErrInvalidChannels       = errors.New("channel count must be between 1 and 65535")
)
