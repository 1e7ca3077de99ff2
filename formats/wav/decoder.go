// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audanim/audio"
)

const wavFormatPCM = 1

type Decoder struct {
	// BufSize is the number of samples pulled from the file per read.
	// Zero means 4096.
	BufSize int
}

func (d Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != wavFormatPCM || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedWavLayout
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
