package aiff

import (
	"fmt"

	"github.com/ik5/audanim/audio"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = fmt.Errorf("not an AIFF file: %w", audio.ErrUnsupportedFormat)

	// ErrOnlyPCM16bitSupported indicates only 16-bit PCM is supported
	ErrOnlyPCM16bitSupported = fmt.Errorf("only 16-bit PCM AIFF is supported: %w", audio.ErrUnsupportedFormat)

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = fmt.Errorf("unsupported AIFF layout: %w", audio.ErrUnsupportedFormat)
)
