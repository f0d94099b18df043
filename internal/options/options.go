// Package options contains the program options.
package options

import (
	"fmt"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
)

// Toggle is a boolean option that can be left unset, in which case a default that
// depends on the loaded file applies.
type Toggle int8

// Toggle states.
const (
	Unset Toggle = iota
	Off
	On
)

// ToggleOf converts a boolean to a set toggle.
func ToggleOf(b bool) Toggle {
	if b {
		return On
	}
	return Off
}

// Resolve returns the toggle value or def if it is unset.
func (t Toggle) Resolve(def bool) bool {
	if t == Unset {
		return def
	}
	return t == On
}

// Parameters contains file path options.
type Parameters struct {
	Input  string // save file to read
	Output string // file to write, derived from the platform if empty
	Config string // ini configuration file
	Batch  string // glob pattern of files to convert
	Dir    string // base directory of relative save file names
	Stash  string // editing session file
}

// Storage contains the target format options. Empty values keep the format of the
// loaded file.
type Storage struct {
	Platform  string
	DataSize  string
	ByteOrder string
	Filler    int // -1 keeps the filler byte
}

// Flags contains behavior options.
type Flags struct {
	WriteShort Toggle
	WriteLong  Toggle
	Verify     bool
	Debug      bool
	Quiet      bool
}

// Program options of the save editor.
type Program struct {
	Parameters
	Storage
	Flags
}

// New returns program options with all values unset.
func New() Program {
	return Program{
		Storage: Storage{Filler: -1},
	}
}

// Target returns the platform and storage options to write a save with. Changing the
// platform starts from the default storage options, explicitly set options apply last.
func (s Storage) Target(current platform.Platform, opts platform.Options) (platform.Platform, platform.Options, error) {
	p := current
	if s.Platform != "" {
		parsed, err := platform.Parse(s.Platform)
		if err != nil {
			return "", platform.Options{}, err
		}
		if parsed != current {
			opts = platform.DefaultOptions()
		}
		p = parsed
	}

	if s.DataSize != "" {
		size, err := platform.ParseDataSize(s.DataSize)
		if err != nil {
			return "", platform.Options{}, err
		}
		opts.DataSize = size
	}
	if s.ByteOrder != "" {
		order, err := platform.ParseByteOrder(s.ByteOrder)
		if err != nil {
			return "", platform.Options{}, err
		}
		opts.ByteOrder = order
	}
	if s.Filler >= 0 {
		if s.Filler > 0xff {
			return "", platform.Options{}, fmt.Errorf("filler byte 0x%x out of range", s.Filler)
		}
		opts.FillerByte = byte(s.Filler)
	}

	return p, opts, nil
}

// Campaigns returns which campaigns to write to a platform. Unset toggles default to
// the campaigns that held data in the loaded file, platforms that only store the long
// campaign default to writing just that one.
func (f Flags) Campaigns(p platform.Platform, hadShort, hadLong bool) (writeShort, writeLong bool) {
	if p.RequiresLongForm() {
		return f.WriteShort.Resolve(false), f.WriteLong.Resolve(true)
	}
	return f.WriteShort.Resolve(hadShort), f.WriteLong.Resolve(hadLong)
}
