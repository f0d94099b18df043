// Package detector handles save file platform detection.
package detector

import (
	"bytes"
	"errors"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/retroenv/retrogolib/log"
)

// ErrUnrecognizedFormat is returned when no platform signature matches.
var ErrUnrecognizedFormat = errors.New("unrecognized save file format")

// AIRIdentifier starts every Sonic 3 A.I.R. persistent data file.
var AIRIdentifier = []byte("OXY.PDATA\x00\x01")

// Signature is the result of a detection.
type Signature struct {
	Platform platform.Platform
	Options  platform.Options
}

// Detector handles platform detection of raw save files.
type Detector struct {
	logger *log.Logger
}

// New creates a new platform detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the platform and storage options of a raw save file.
func (d *Detector) Detect(buf []byte) (Signature, error) {
	sig, err := Identify(buf)
	if err != nil {
		d.logger.Debug("No platform signature matched", log.Int("size", len(buf)))
		return sig, err
	}

	d.logger.Debug("Detected platform",
		log.Stringer("platform", sig.Platform),
		log.String("dataSize", string(sig.Options.DataSize)),
		log.String("byteOrder", string(sig.Options.ByteOrder)),
		log.Hex("filler", sig.Options.FillerByte))
	return sig, nil
}

// Identify inspects the marker bytes of the competition section tag, which sits at a
// different offset for every storage variant. The first matching signature wins.
func Identify(buf []byte) (Signature, error) {
	sig := Signature{Options: platform.DefaultOptions()}

	switch {
	case marker(buf, 0x50, 0x51, 'D', 'L'):
		sig.Platform = platform.PC
		sig.Options.DataSize = platform.Byte
		sig.Options.ByteOrder = platform.LittleEndian

	case marker(buf, 0x58, 0x59, 'L', 'D'):
		sig.Platform = platform.Console
		sig.Options.DataSize = platform.Byte
		sig.Options.ByteOrder = platform.BigEndian

	case marker(buf, 0xb4, 0xb6, 'L', 'D'):
		sig.Platform = platform.Steam

	case marker(buf, 0xb0, 0xb2, 'L', 'D'):
		sig.Options.ByteOrder = platform.LittleEndian
		if marker(buf, 0xb1, 0xb3, 'L', 'D') {
			sig.Platform = platform.Everdrive
		} else {
			sig.Platform = platform.Console
			sig.Options.FillerByte = buf[0xb1]
		}

	case marker(buf, 0xb1, 0xb3, 'L', 'D'):
		sig.Platform = platform.Console
		sig.Options.FillerByte = buf[0xb2]

	case bytes.HasPrefix(buf, AIRIdentifier):
		sig.Platform = platform.AIR
		sig.Options.DataSize = platform.Byte
		sig.Options.ByteOrder = platform.LittleEndian

	default:
		return Signature{}, ErrUnrecognizedFormat
	}

	return sig, nil
}

func marker(buf []byte, offset1, offset2 int, b1, b2 byte) bool {
	if offset2 >= len(buf) {
		return false
	}
	return buf[offset1] == b1 && buf[offset2] == b2
}
