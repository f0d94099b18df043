package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/slot"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/stash"
	"github.com/retroenv/retrogolib/assert"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(Build{Version: "1.2.3"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "-q"))

	err := cmd.Execute()
	return out.String(), err
}

func decodeFile(t *testing.T, path string) *save.SaveImage {
	t.Helper()

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	img, err := save.Decode(data)
	assert.NoError(t, err)
	return img
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "s3save "), out)
	assert.True(t, strings.Contains(out, "1.2.3"), out)
}

func TestNewAndInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sonic3k.bin")

	_, err := execute(t, "new", "-p", "pc", "-o", path)
	assert.NoError(t, err)
	assert.Equal(t, platform.PC, decodeFile(t, path).Platform)

	out, err := execute(t, "info", path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(out, "platform:   PC"), out)
	assert.True(t, strings.Contains(out, "long.8.lives"), out)
}

func TestNewDefaultFilename(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "new", "--dir", dir, "-p", "air")
	assert.NoError(t, err)

	img := decodeFile(t, filepath.Join(dir, "persistentdata.bin"))
	assert.Equal(t, platform.AIR, img.Platform)
	assert.False(t, img.HasSection(section.ShortForm))
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sonic3.srm")

	_, err := execute(t, "new", "-o", input, "--short", "--long=false")
	assert.NoError(t, err)
	assert.False(t, decodeFile(t, input).HasSection(section.LongForm))

	_, err = execute(t, "convert", input, "-p", "console", "--data-size", "byte", "--verify",
		"-o", filepath.Join(dir, "byte.srm"))
	assert.NoError(t, err)

	img := decodeFile(t, filepath.Join(dir, "byte.srm"))
	assert.Equal(t, platform.Byte, img.Options.DataSize)
	assert.True(t, img.HasSection(section.ShortForm))
	assert.False(t, img.HasSection(section.LongForm))

	_, err = execute(t, "convert", input, "-p", "steam")
	assert.NoError(t, err)
	img = decodeFile(t, filepath.Join(dir, "bs.sav"))
	assert.Equal(t, platform.Steam, img.Platform)
	assert.True(t, img.HasSection(section.LongForm))

	_, err = execute(t, "convert", input, "-p", "everdrive", "--long")
	assert.NoError(t, err)
	assert.Equal(t, platform.Everdrive, decodeFile(t, filepath.Join(dir, "s3&k.srm")).Platform)
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b"} {
		sub := filepath.Join(dir, name)
		assert.NoError(t, os.Mkdir(sub, 0o755))
		_, err := execute(t, "new", "-o", filepath.Join(sub, "save.srm"))
		assert.NoError(t, err)
	}

	_, err := execute(t, "convert", "--batch", filepath.Join(dir, "*", "save.srm"), "-p", "pc")
	assert.NoError(t, err)

	for _, name := range []string{"a", "b"} {
		assert.Equal(t, platform.PC, decodeFile(t, filepath.Join(dir, name, "sonic3k.bin")).Platform)
	}

	_, err = execute(t, "convert", "--batch", filepath.Join(dir, "*.none"))
	assert.ErrorContains(t, err, "no files match")
}

func TestEditSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s3&k.srm")
	session := filepath.Join(dir, "session.tmp")

	_, err := execute(t, "new", "-o", path)
	assert.NoError(t, err)

	_, err = execute(t, "load", path, "--stash", session)
	assert.NoError(t, err)

	out, err := execute(t, "set", "long.1.character", "knuckles", "--stash", session)
	assert.NoError(t, err)
	assert.Equal(t, "long.1.character set to Knuckles\n", out)

	_, err = execute(t, "set", "long.1.zone", "hydro", "--stash", session)
	assert.NoError(t, err)

	out, err = execute(t, "get", "long.1.zone", "--stash", session)
	assert.NoError(t, err)
	assert.Equal(t, "Hydrocity\n", out)

	out, err = execute(t, "dump", "--stash", session)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(out, "long.1.character"), out)

	_, err = execute(t, "save", "--stash", session)
	assert.NoError(t, err)

	s, err := decodeFile(t, path).LongSlot(0)
	assert.NoError(t, err)
	assert.Equal(t, slot.Knuckles, s.Character)
	assert.Equal(t, uint8(1), s.Zone)

	_, err = os.Stat(path + ".old")
	assert.NoError(t, err)

	_, err = execute(t, "get", "long.1.zone", "--stash", session)
	assert.True(t, errors.Is(err, stash.ErrNoSession))
}

func TestSaveToOtherPlatform(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sonic3.srm")
	session := filepath.Join(dir, "session.tmp")

	_, err := execute(t, "new", "-o", path)
	assert.NoError(t, err)
	_, err = execute(t, "load", path, "--stash", session)
	assert.NoError(t, err)

	output := filepath.Join(dir, "bs.sav")
	_, err = execute(t, "save", "--stash", session, "-p", "steam", "-o", output)
	assert.NoError(t, err)

	img := decodeFile(t, output)
	assert.Equal(t, platform.Steam, img.Platform)
	assert.True(t, img.HasSection(section.LongForm))
}

func TestVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bs.sav")
	_, err := execute(t, "new", "-p", "steam", "-o", path)
	assert.NoError(t, err)

	out, err := execute(t, "verify", path)
	assert.NoError(t, err)
	assert.Equal(t, path+": ok\n", out)

	_, err = execute(t, "verify", path, filepath.Join(filepath.Dir(path), "missing.sav"))
	assert.ErrorContains(t, err, "missing.sav")
}

func TestHex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sonic3.srm")
	_, err := execute(t, "new", "-o", path, "--data-size", "byte")
	assert.NoError(t, err)

	out, err := execute(t, "hex", path, "--canonical")
	assert.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), section.CanonicalSize/16)

	out, err = execute(t, "hex", path, "-p", "pc")
	assert.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 1024/16)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "get without field", args: []string{"get"}},
		{name: "set without value", args: []string{"set", "long.1.lives"}},
		{name: "info without file", args: []string{"info"}},
		{name: "convert without input", args: []string{"convert"}},
		{name: "verify without file", args: []string{"verify"}},
		{name: "new with argument", args: []string{"new", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}
