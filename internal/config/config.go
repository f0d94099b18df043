// Package config handles application configuration and setup
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/options"
	"github.com/retroenv/retrogolib/log"
	"gopkg.in/ini.v1"
)

// DefaultFile is the configuration file read from the working directory when no
// file is given.
const DefaultFile = "s3save.ini"

// Settings are the values read from a configuration file.
type Settings struct {
	Dir        string
	Platform   string
	Filler     int // -1 if not set
	WriteShort options.Toggle
	WriteLong  options.Toggle
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Load reads the default section of an ini configuration file. A missing default file
// is not an error, a missing explicitly named file is.
func Load(path string) (Settings, error) {
	settings := Settings{Filler: -1}

	if path == "" {
		path = DefaultFile
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return settings, fmt.Errorf("loading config file '%s': %w", path, err)
	}

	sec := cfg.Section("")
	settings.Dir = sec.Key("dir").String()
	settings.Platform = sec.Key("platform").String()

	if sec.HasKey("filler") {
		n, err := strconv.ParseUint(sec.Key("filler").String(), 0, 8)
		if err != nil {
			return settings, fmt.Errorf("config file '%s': invalid filler byte: %w", path, err)
		}
		settings.Filler = int(n)
	}

	for key, toggle := range map[string]*options.Toggle{
		"write_short": &settings.WriteShort,
		"write_long":  &settings.WriteLong,
	} {
		if !sec.HasKey(key) {
			continue
		}
		b, err := sec.Key(key).Bool()
		if err != nil {
			return settings, fmt.Errorf("config file '%s': invalid %s: %w", path, key, err)
		}
		*toggle = options.ToggleOf(b)
	}

	return settings, nil
}

// Apply fills program options that were not set on the command line.
func (s Settings) Apply(opts *options.Program) {
	if opts.Dir == "" {
		opts.Dir = s.Dir
	}
	if opts.Platform == "" {
		opts.Platform = s.Platform
	}
	if opts.Filler < 0 {
		opts.Filler = s.Filler
	}
	if opts.WriteShort == options.Unset {
		opts.WriteShort = s.WriteShort
	}
	if opts.WriteLong == options.Unset {
		opts.WriteLong = s.WriteLong
	}
}

// ResolvePath joins a relative save file name with the configured directory.
func ResolvePath(dir, name string) string {
	if dir == "" || name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
