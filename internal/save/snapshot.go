package save

import (
	"fmt"
	"slices"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
)

// Snapshot is the serializable state of a save image.
type Snapshot struct {
	File     []byte            `json:"file"`
	Extra    []byte            `json:"extra,omitempty"`
	Options  platform.Options  `json:"options"`
	Platform platform.Platform `json:"platform"`
}

// Snapshot updates the canonical buffer with the given write options and returns a
// copy of the image state.
func (img *SaveImage) Snapshot(writeShort, writeLong bool) Snapshot {
	img.Update(writeShort, writeLong)

	return Snapshot{
		File:     slices.Clone(img.file),
		Extra:    slices.Clone(img.extra),
		Options:  img.Options,
		Platform: img.Platform,
	}
}

// FromSnapshot restores a save image from a snapshot. A snapshot without a platform is
// treated as a console save.
func FromSnapshot(s Snapshot) (*SaveImage, error) {
	if len(s.File) != section.CanonicalSize {
		return nil, fmt.Errorf("%w: buffer has %d bytes, expected %d",
			ErrInvalidSnapshot, len(s.File), section.CanonicalSize)
	}

	p := s.Platform
	if p == "" {
		p = platform.Console
	}
	opts := s.Options
	if opts.DataSize == "" {
		opts = platform.DefaultOptions()
	}

	img := &SaveImage{
		Platform: p,
		Options:  opts,
		file:     slices.Clone(s.File),
		extra:    slices.Clone(s.Extra),
	}
	if err := img.parse(); err != nil {
		return nil, err
	}
	return img, nil
}
