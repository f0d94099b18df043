// Package verification verifies that converted save files hold the same data as their
// source.
package verification

import (
	"errors"
	"fmt"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/retroenv/retrogolib/log"
)

// ErrMismatch is returned when a verified buffer differs from the expected one.
var ErrMismatch = errors.New("verification mismatch")

// RoundTrip decodes a save file, encodes it again in its own format with both campaigns
// enabled and compares the result with the input. Sections without valid data are left
// as they were read.
func RoundTrip(logger *log.Logger, input []byte) error {
	img, err := save.Decode(input)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	output, err := img.Encode(true, true)
	if err != nil {
		return fmt.Errorf("encoding %s save: %w", img.Platform, err)
	}

	if err := checkBufferEqual(logger, input, output); err != nil {
		return fmt.Errorf("%s round trip: %w", img.Platform, err)
	}
	return nil
}

// Output decodes a converted save file and checks that it is detected as the platform
// of the image and that every written section matches the image.
func Output(logger *log.Logger, output []byte, img *save.SaveImage, writeShort, writeLong bool) error {
	decoded, err := save.Decode(output)
	if err != nil {
		return fmt.Errorf("decoding output: %w", err)
	}
	if decoded.Platform != img.Platform {
		return fmt.Errorf("%w: output detected as %s, expected %s",
			ErrMismatch, decoded.Platform, img.Platform)
	}

	written := map[section.Kind]bool{
		section.ShortForm:   writeShort,
		section.LongForm:    writeLong,
		section.Competition: true,
	}
	for _, kind := range section.Kinds {
		if !written[kind] || !img.HasSection(kind) {
			continue
		}
		if err := checkBufferEqual(logger, img.Section(kind), decoded.Section(kind)); err != nil {
			return fmt.Errorf("section %s: %w", kind, err)
		}
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: mismatched lengths, %d != %d", ErrMismatch, len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d offset mismatches", ErrMismatch, diffs)
}
