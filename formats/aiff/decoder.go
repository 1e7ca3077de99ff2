// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audanim/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct {
	// BufSize is the number of samples pulled from the file per read.
	// Zero means 4096.
	BufSize int
}

func (d Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// If not a ReadSeeker, we need to read all data into memory
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return d.decode(dec, int(dec.BitDepth))
}

func (d Decoder) decode(dec aiffReader, bitDepth int) (*audio.Buffer, error) {
	if bitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	samples, err := audio.ReadPCM16(dec, format, d.BufSize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &audio.Buffer{
		Samples:    samples,
		Channels:   format.NumChannels,
		SampleRate: format.SampleRate,
	}, nil
}
