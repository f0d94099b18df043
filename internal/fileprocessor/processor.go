// Package fileprocessor handles save file conversion and writing operations
package fileprocessor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/loader"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/options"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/verification"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// BackupSuffix is appended to the name of a file that is about to be overwritten.
const BackupSuffix = ".old"

// Processor converts save files between platforms.
type Processor struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new file processor.
func New(logger *log.Logger) *Processor {
	return &Processor{
		logger: logger,
		loader: loader.New(logger),
	}
}

// ProcessFile converts the input file of the options to the target platform and writes
// the output file. It returns the name of the written file.
func (p *Processor) ProcessFile(opts options.Program) (string, error) {
	img, err := p.loader.Load(opts.Input)
	if err != nil {
		return "", err
	}

	hadShort, hadLong := img.FillDefaults()

	target, targetOpts, err := opts.Target(img.Platform, img.Options)
	if err != nil {
		return "", err
	}
	img.Platform = target
	img.Options = targetOpts

	writeShort, writeLong := opts.Campaigns(target, hadShort, hadLong)

	data, err := img.Encode(writeShort, writeLong)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", opts.Input, err)
	}

	if opts.Verify {
		if err := verification.Output(p.logger, data, img, writeShort, writeLong); err != nil {
			return "", fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful", log.String("file", opts.Input))
	}

	output := opts.Output
	if output == "" {
		output = GenerateOutputFilename(opts.Input, target, writeLong)
	}
	if err := WriteFile(p.logger, output, data); err != nil {
		return "", err
	}

	p.logger.Info("Converted save file",
		log.String("input", opts.Input),
		log.String("output", output),
		log.Stringer("platform", target),
		log.String("campaigns", campaigns(writeShort, writeLong)))
	return output, nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename returns the file name the target platform expects, placed next
// to the input file. An input that already has that name gets the platform name added
// so that it is not overwritten.
func GenerateOutputFilename(inputFile string, p platform.Platform, writeLong bool) string {
	name := platform.DefaultFilename(p, writeLong)
	output := filepath.Join(filepath.Dir(inputFile), name)
	if filepath.Clean(inputFile) != filepath.Clean(output) {
		return output
	}

	ext := filepath.Ext(name)
	return filepath.Join(filepath.Dir(inputFile), strings.TrimSuffix(name, ext)+"."+string(p)+ext)
}

// WriteFile writes a save file. An existing file is renamed by appending the backup
// suffix first, replacing an older backup.
func WriteFile(logger *log.Logger, path string, data []byte) error {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		backup := path + BackupSuffix
		if err := os.Rename(path, backup); err != nil {
			return fmt.Errorf("backing up %s: %w", path, err)
		}
		logger.Info("Backed up existing file", log.String("file", path), log.String("backup", backup))

	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// Encode converts an image with the given write options and writes it to path.
func Encode(logger *log.Logger, img *save.SaveImage, path string, writeShort, writeLong bool) error {
	data, err := img.Encode(writeShort, writeLong)
	if err != nil {
		return err
	}
	if err := WriteFile(logger, path, data); err != nil {
		return err
	}

	logger.Info("Save file written",
		log.String("file", path),
		log.Stringer("platform", img.Platform),
		log.Int("size", len(data)))
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("s3save", log.String("version", buildinfo.Version(version, commit, date)))
}

func campaigns(writeShort, writeLong bool) string {
	var names []string
	if writeShort {
		names = append(names, section.ShortForm.String())
	}
	if writeLong {
		names = append(names, section.LongForm.String())
	}
	return strings.Join(names, "+")
}
