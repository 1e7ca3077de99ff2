// SPDX-License-Identifier: EPL-2.0

package audanim

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/ik5/audanim/animator"
	"github.com/ik5/audanim/audio"
	"github.com/ik5/audanim/curve"
	"github.com/ik5/audanim/formats/aiff"
	"github.com/ik5/audanim/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder:
// "wav", "aif" and "aiff".
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// Decode reads r with the decoder registered for format, e.g. "wav".
func Decode(r io.Reader, format string) (*audio.Buffer, error) {
	dec, ok := DefaultRegistry().Get(strings.ToLower(format))
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, audio.ErrUnsupportedFormat)
	}

	buf, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return buf, nil
}

// DecodeFile opens path and decodes it based on its extension.
// A leading "~" is expanded to the home directory.
func DecodeFile(path string) (*audio.Buffer, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", path, err)
	}

	dec, err := DefaultRegistry().ForPath(expanded)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	buf, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return buf, nil
}

// Animate decodes r and writes its keyframes into store.
//
// It is a shortcut for Decode, animator.New and Animator.Run. The result
// is nil only when decoding or configuration fails.
func Animate(r io.Reader, format string, cfg animator.Config, store curve.Store, opts ...animator.Option) (*animator.Result, error) {
	buf, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return run(buf, cfg, store, opts...)
}

// AnimateFile is Animate for a file on disk.
func AnimateFile(path string, cfg animator.Config, store curve.Store, opts ...animator.Option) (*animator.Result, error) {
	buf, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return run(buf, cfg, store, opts...)
}

func run(buf *audio.Buffer, cfg animator.Config, store curve.Store, opts ...animator.Option) (*animator.Result, error) {
	a, err := animator.New(cfg, store, opts...)
	if err != nil {
		return nil, err
	}
	return a.Run(buf)
}
