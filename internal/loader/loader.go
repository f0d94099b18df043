// Package loader handles save file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/detector"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading save files from disk.
type Loader struct {
	logger   *log.Logger
	detector *detector.Detector
}

// New creates a new save file loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger:   logger,
		detector: detector.New(logger),
	}
}

// Load reads a save file, detects its platform and decodes it.
func (l *Loader) Load(path string) (*save.SaveImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return l.LoadFromBytes(path, data)
}

// LoadFromBytes decodes a save file that is already in memory. The name is only used
// for logging and error messages.
func (l *Loader) LoadFromBytes(name string, data []byte) (*save.SaveImage, error) {
	sig, err := l.detector.Detect(data)
	if err != nil {
		return nil, fmt.Errorf("detecting format of %s: %w", name, err)
	}

	img, err := save.DecodeWith(data, sig)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}

	for _, kind := range section.Kinds {
		if !img.HasSection(kind) {
			l.logger.Warn("Section has no valid data",
				log.String("file", name),
				log.Stringer("section", kind))
		}
	}

	l.logger.Debug("Loaded save file",
		log.String("file", name),
		log.Stringer("platform", img.Platform),
		log.Int("size", len(data)))
	return img, nil
}
