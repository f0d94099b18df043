// Package save implements the editable save image: decoding a platform file into the
// canonical buffer, validating its redundant sections and encoding it back.
package save

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/checksum"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/codec"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/detector"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
)

// SaveImage is a decoded save file. It owns the canonical buffer and the working copy
// of each section. It is not safe for concurrent use.
type SaveImage struct {
	Platform platform.Platform
	Options  platform.Options

	file  []byte
	extra []byte

	// working copies, nil when no valid copy was found
	sections [section.Count][]byte
}

// Decode detects the platform of a raw save file and decodes it.
func Decode(buf []byte) (*SaveImage, error) {
	sig, err := detector.Identify(buf)
	if err != nil {
		return nil, err
	}
	return DecodeWith(buf, sig)
}

// DecodeWith decodes a raw save file using a known platform signature.
func DecodeWith(buf []byte, sig detector.Signature) (*SaveImage, error) {
	c, err := codec.For(sig.Platform, sig.Options)
	if err != nil {
		return nil, err
	}

	dec, err := c.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding %s save file: %w", sig.Platform, err)
	}

	img := &SaveImage{
		Platform: sig.Platform,
		Options:  sig.Options,
		file:     dec.File,
		extra:    dec.Extra,
	}
	if err := img.parse(); err != nil {
		return nil, err
	}
	return img, nil
}

// parse selects the working copy of every section: the primary copy if its checksum is
// valid, otherwise the backup copy, otherwise none.
func (img *SaveImage) parse() error {
	valid := false
	for _, kind := range section.Kinds {
		img.sections[kind] = nil

		l := section.LayoutOf(kind)
		for _, start := range l.Starts() {
			data := section.Extract(img.file, kind, start)
			if checksum.Valid(data) {
				img.sections[kind] = data
				valid = true
				break
			}
		}
	}

	if !valid {
		return ErrNoValidData
	}
	return nil
}

// HasSection returns whether the image holds valid data for the section kind.
func (img *SaveImage) HasSection(kind section.Kind) bool {
	return img.sections[kind] != nil
}

// Section returns a copy of the working copy of a section, nil if it is empty.
func (img *SaveImage) Section(kind section.Kind) []byte {
	return slices.Clone(img.sections[kind])
}

// File returns a copy of the canonical buffer.
func (img *SaveImage) File() []byte {
	return slices.Clone(img.file)
}

// Extra returns the opaque platform data that is carried along unchanged.
func (img *SaveImage) Extra() []byte {
	return slices.Clone(img.extra)
}

// Update stamps the checksum of every section and copies it to both of its offsets in the
// canonical buffer. The regions of a campaign that is not written are overwritten with
// the filler byte instead. The competition section is always written.
func (img *SaveImage) Update(writeShort, writeLong bool) {
	write := writeFlags(writeShort, writeLong)
	for _, kind := range section.Kinds {
		l := section.LayoutOf(kind)
		data := img.sections[kind]

		if !write[kind] {
			// blanked over the full layout even if the section held no valid data
			blank := bytes.Repeat([]byte{img.Options.FillerByte}, l.Length)
			for _, start := range l.Starts() {
				copy(img.file[start:start+l.Length], blank)
			}
			continue
		}
		if data == nil {
			continue
		}

		checksum.Stamp(data)
		for _, start := range l.Starts() {
			copy(img.file[start:start+l.Length], data)
		}
	}
}

// Encode updates the canonical buffer and converts it to the file layout of the image
// platform. At least one campaign has to be written, platforms that only know the long
// campaign require it to be written.
func (img *SaveImage) Encode(writeShort, writeLong bool) ([]byte, error) {
	if !writeShort && !writeLong {
		return nil, ErrNoWritableCampaign
	}
	if !writeLong && img.Platform.RequiresLongForm() {
		return nil, fmt.Errorf("%w: %s", ErrLongFormRequiredForPlatform, img.Platform)
	}

	c, err := codec.For(img.Platform, img.Options)
	if err != nil {
		return nil, err
	}

	img.Update(writeShort, writeLong)

	in := codec.Image{
		File:  slices.Clone(img.file),
		Extra: slices.Clone(img.extra),
	}
	write := writeFlags(writeShort, writeLong)
	for _, kind := range section.Kinds {
		if write[kind] && img.sections[kind] != nil {
			in.Sections[kind] = slices.Clone(img.sections[kind])
		}
	}

	return c.Encode(in), nil
}

func writeFlags(writeShort, writeLong bool) [section.Count]bool {
	return [section.Count]bool{
		section.ShortForm:   writeShort,
		section.LongForm:    writeLong,
		section.Competition: true,
	}
}
