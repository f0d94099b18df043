package fileprocessor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/options"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/slot"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeSave(t *testing.T, dir, name string, p platform.Platform, writeShort bool) string {
	t.Helper()

	img := save.New(p, platform.DefaultOptions())
	assert.NoError(t, img.SetLongSlot(0, slot.Long{Character: slot.Knuckles, Zone: 0x07, Lives: 5}))

	raw, err := img.Encode(writeShort, true)
	assert.NoError(t, err)

	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestProcessFile(t *testing.T) {
	tests := []struct {
		name      string
		source    platform.Platform
		target    string
		wantFile  string
		wantShort bool
	}{
		{name: "console to steam", source: platform.Console, target: "steam", wantFile: "bs.sav"},
		{name: "console to pc", source: platform.Console, target: "pc", wantFile: "sonic3k.bin", wantShort: true},
		{name: "pc to air", source: platform.PC, target: "air", wantFile: "persistentdata.bin"},
		{name: "steam to console", source: platform.Steam, target: "console", wantFile: "s3&k.srm"},
		{name: "air to everdrive", source: platform.AIR, target: "everdrive", wantFile: "s3&k.srm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := writeSave(t, dir, "input.bin", tt.source, !tt.source.RequiresLongForm())

			opts := options.New()
			opts.Input = input
			opts.Platform = tt.target
			opts.Verify = true

			p := New(log.NewTestLogger(t))
			output, err := p.ProcessFile(opts)
			assert.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantFile), output)

			data, err := os.ReadFile(output)
			assert.NoError(t, err)
			img, err := save.Decode(data)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantShort, img.HasSection(section.ShortForm))

			s, err := img.LongSlot(0)
			assert.NoError(t, err)
			assert.Equal(t, slot.Knuckles, s.Character)
			assert.Equal(t, uint8(5), s.Lives)
		})
	}
}

func TestProcessFileErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeSave(t, dir, "input.srm", platform.Console, true)

	p := New(log.NewTestLogger(t))

	tests := []struct {
		name       string
		writeShort options.Toggle
		wantErr    error
	}{
		{name: "short only", writeShort: options.On, wantErr: save.ErrLongFormRequiredForPlatform},
		{name: "nothing", writeShort: options.Unset, wantErr: save.ErrNoWritableCampaign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.New()
			opts.Input = input
			opts.Platform = "steam"
			opts.WriteShort = tt.writeShort
			opts.WriteLong = options.Off
			_, err := p.ProcessFile(opts)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), err.Error())
		})
	}

	opts := options.New()
	opts.Input = filepath.Join(dir, "missing.srm")
	_, err := p.ProcessFile(opts)
	assert.Error(t, err)
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, filepath.Join("saves", "bs.sav"),
		GenerateOutputFilename(filepath.Join("saves", "sonic3k.bin"), platform.Steam, true))
	assert.Equal(t, "sonic3.srm", GenerateOutputFilename("save.bin", platform.Console, false))
	assert.Equal(t, filepath.Join("saves", "s3&k.console.srm"),
		GenerateOutputFilename(filepath.Join("saves", "s3&k.srm"), platform.Console, true))
}

func TestWriteFileBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sonic3.srm")
	logger := log.NewTestLogger(t)

	assert.NoError(t, WriteFile(logger, path, []byte{1}))
	_, err := os.Stat(path + BackupSuffix)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, WriteFile(logger, path, []byte{2}))
	assert.NoError(t, WriteFile(logger, path, []byte{3}))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte{3}, data)

	backup, err := os.ReadFile(path + BackupSuffix)
	assert.NoError(t, err)
	assert.Equal(t, []byte{2}, backup)
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.srm", "b.srm", "c.sav"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	opts := options.New()
	opts.Batch = filepath.Join(dir, "*.srm")
	files, err := GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	opts = options.New()
	opts.Input = "single.srm"
	files, err = GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"single.srm"}, files)
}
