// SPDX-License-Identifier: EPL-2.0

// Package wav loads 16-bit PCM WAV files into audio buffers.
//
// Decoding is done with github.com/go-audio/wav, which walks the RIFF
// chunks, so files carrying LIST or other chunks before "data" are fine.
//
// # Supported Formats
//
// Only uncompressed linear PCM with 16-bit samples is accepted. Any
// channel count and sample rate is read; deciding which channel counts
// can be animated is left to the animator.
//
// # Decoding
//
//	file, _ := os.Open("speakers.wav")
//	buf, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, audio.ErrUnsupportedFormat) {
//	    // not a 16-bit PCM WAV
//	}
//	fmt.Println(buf.Channels, buf.SampleRate, buf.Frames())
//
// # Writing
//
// WriteWAV16 writes interleaved samples with a canonical 44-byte header.
// It is mainly used to build fixtures:
//
//	wav.WriteWAV16(w, 8000, 2, []int16{100, -100, 200, -200})
//
// # Errors
//
// Every decode error wraps audio.ErrUnsupportedFormat:
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrOnlyPCM16bitSupported: compressed, float or non 16-bit data
//   - ErrUnsupportedWavChunks: no data chunk was found
//   - ErrUnsupportedWavLayout: the fmt chunk has no channels
package wav
