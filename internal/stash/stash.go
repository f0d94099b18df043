// Package stash persists an editing session between command invocations. A session is
// created by loading a save file, modified by setting fields and ended by saving.
package stash

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
)

// DefaultFile is the session file used when no other file is configured.
const DefaultFile = "s3save.tmp"

// ErrNoSession is returned when no session file exists.
var ErrNoSession = errors.New("no save file loaded")

// Session is the persisted editing state.
type Session struct {
	Source     string        `json:"source"`
	WriteShort bool          `json:"writeShort"`
	WriteLong  bool          `json:"writeLong"`
	Snapshot   save.Snapshot `json:"snapshot"`
}

// Store writes a session for the image. The snapshot holds the image state with both
// campaigns written so that no edits are lost, the write options of the session apply
// when the session is saved.
func Store(path, source string, img *save.SaveImage, writeShort, writeLong bool) error {
	s := Session{
		Source:     source,
		WriteShort: writeShort,
		WriteLong:  writeLong,
		Snapshot:   img.Snapshot(true, true),
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}

// Retrieve reads a session and restores its image.
func Retrieve(path string) (Session, *save.SaveImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, nil, ErrNoSession
		}
		return Session{}, nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, nil, fmt.Errorf("decoding session file %s: %w", path, err)
	}

	img, err := save.FromSnapshot(s.Snapshot)
	if err != nil {
		return Session{}, nil, fmt.Errorf("restoring session: %w", err)
	}
	img.FillDefaults()
	return s, img, nil
}

// Remove deletes the session file.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file %s: %w", path, err)
	}
	return nil
}
