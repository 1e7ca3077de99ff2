// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Buffer holds decoded 16-bit PCM, interleaved by channel.
// A Buffer is treated as immutable once decoded.
type Buffer struct {
    // Samples are interleaved: frame f, channel c is Samples[f*Channels+c].
    Samples []int16
    // Channels count (e.g., 1=mono, 2=stereo).
    Channels int
    // SampleRate of the PCM stream in Hz.
    SampleRate int
}

// Frames returns the number of complete frames in the buffer.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the length in whole seconds, truncated.
func (b *Buffer) Duration() int {
	if b.SampleRate <= 0 {
		return 0
	}
	return b.Frames() / b.SampleRate
}

// Channel de-interleaves a single channel out of the buffer.
func (b *Buffer) Channel(index int) ([]int16, error) {
	return ExtractChannel(b.Samples, index, b.Channels)
}

// Decoder constructs a Buffer from an input reader.
type Decoder interface {
    Decode(r io.Reader) (*Buffer, error)
}

// Registry for decoders by format key (e.g., "wav", "aiff").
type Registry struct {
    codecs map[string]Decoder

    mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx: &sync.Mutex{},
    }
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

    d, ok := r.codecs[format]
    return d, ok
}

// ForPath picks a decoder from the file extension of path.
// The lookup is case-insensitive and ignores the leading dot.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return nil, ErrUnsupportedFormat
	}

	d, ok := r.Get(ext)
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return d, nil
}
