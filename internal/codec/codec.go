// Package codec converts between the platform specific save file layouts and the
// canonical byte granular big-endian save buffer.
package codec

import (
	"errors"
	"fmt"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/checksum"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
)

// Errors returned by the decoders.
var (
	ErrTruncated          = errors.New("save file is truncated")
	ErrMalformedContainer = errors.New("malformed save file container")
)

// File sizes of the platform layouts.
const (
	WordSize      = 2 * section.CanonicalSize
	EverdriveSize = 65536
	PCSize        = 1024
	SteamSize     = 163888
)

// Decoded is the result of decoding a platform file.
type Decoded struct {
	File  []byte // canonical buffer
	Extra []byte // opaque platform data that has no canonical location
}

// Image is the input of an encoder.
type Image struct {
	File []byte // canonical buffer with all sections merged
	// Sections holds the section contents to write with stamped checksums,
	// nil for sections that are absent or not written.
	Sections [section.Count][]byte
	Extra    []byte
}

// Codec converts one platform layout.
type Codec interface {
	Decode(raw []byte) (Decoded, error)
	Encode(img Image) []byte
}

// For returns the codec for the given platform and storage options.
func For(p platform.Platform, opts platform.Options) (Codec, error) {
	switch p {
	case platform.Console:
		if opts.DataSize == platform.Byte {
			return consoleByte{}, nil
		}
		return consoleWord{littleEndian: opts.ByteOrder == platform.LittleEndian, filler: opts.FillerByte}, nil
	case platform.Everdrive:
		return everdrive{}, nil
	case platform.PC:
		return pc{}, nil
	case platform.Steam:
		return steam{}, nil
	case platform.AIR:
		return air{}, nil
	default:
		return nil, fmt.Errorf("unsupported platform '%s'", p)
	}
}

func checkSize(raw []byte, minimum int) error {
	if len(raw) < minimum {
		return fmt.Errorf("%w: %d bytes, expected at least %d", ErrTruncated, len(raw), minimum)
	}
	return nil
}

// assemble builds a canonical buffer from single section copies. Every present section
// gets a fresh checksum and is written to both of its offsets, absent sections stay zero.
func assemble(sections [section.Count][]byte) []byte {
	file := make([]byte, section.CanonicalSize)
	for _, kind := range section.Kinds {
		data := sections[kind]
		if data == nil {
			continue
		}
		checksum.Stamp(data)
		for _, start := range section.LayoutOf(kind).Starts() {
			copy(file[start:], data)
		}
	}
	return file
}
