// SPDX-License-Identifier: EPL-2.0

// Package formats wires the container decoders into an audio.Registry.
package formats

import (
	"fmt"
	"os"

	"github.com/ik5/iqtone/audio"
	"github.com/ik5/iqtone/formats/aiff"
	"github.com/ik5/iqtone/formats/mp3"
	"github.com/ik5/iqtone/formats/vorbis"
	"github.com/ik5/iqtone/formats/wav"
)

// NewRegistry returns a registry holding every supported container, keyed
// by file extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// fileSource closes the file it decodes from.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("%w", cerr)
	}
	return err
}

// Open decodes path with the decoder registered for its extension. ok is
// false, and nothing is opened, when no decoder matches. Closing the
// returned source closes the file.
func Open(reg *audio.Registry, path string) (src audio.Source, ok bool, err error) {
	dec, ok := reg.ForPath(path)
	if !ok {
		return nil, false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, true, fmt.Errorf("opening %s: %w", path, err)
	}

	s, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, true, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &fileSource{Source: s, f: f}, true, nil
}
