// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// PCMReader is the subset of the go-audio decoders used to pull samples.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// ReadPCM16 drains r into a slice of 16-bit samples, reading bufSize
// samples at a time. The source must already be 16-bit.
func ReadPCM16(r PCMReader, format *goaudio.Format, bufSize int) ([]int16, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}

	intBuf := &goaudio.IntBuffer{
		Data:           make([]int, bufSize),
		Format:         format,
		SourceBitDepth: 16,
	}

	var out []int16
	for {
		n, err := r.PCMBuffer(intBuf)
		for i := range n {
			out = append(out, int16(intBuf.Data[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading pcm data: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if out == nil {
		out = []int16{}
	}
	return out, nil
}
