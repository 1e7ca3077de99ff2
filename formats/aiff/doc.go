// SPDX-License-Identifier: EPL-2.0

// Package aiff loads 16-bit PCM AIFF files into audio buffers.
//
// This package uses github.com/go-audio/aiff to parse the IFF chunks.
// AIFF stores samples big-endian; the go-audio decoder takes care of the
// byte order so the resulting buffer is plain interleaved int16.
//
// # Supported Formats
//
//   - AIFF with 16-bit PCM samples
//   - Any channel count and sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("speakers.aif")
//	buf, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// When the reader is not an io.ReadSeeker the whole stream is read into
// memory first, since go-audio needs to seek between chunks.
//
// # Errors
//
// All decode errors wrap audio.ErrUnsupportedFormat:
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyPCM16bitSupported: the samples are not 16-bit
//   - ErrUnsupportedAiffLayout: the COMM chunk could not be read
package aiff
