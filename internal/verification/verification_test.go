package verification

import (
	"errors"
	"testing"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/slot"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testImage(t *testing.T, p platform.Platform) *save.SaveImage {
	t.Helper()

	img := save.New(p, platform.DefaultOptions())
	assert.NoError(t, img.SetLongSlot(1, slot.Long{
		Character: slot.Tails,
		Zone:      0x05,
		Lives:     4,
	}))
	return img
}

// mismatchLogger prints mismatches without failing the test like the test logger does
// for error records.
func mismatchLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ErrorLevel
	return log.NewWithConfig(cfg)
}

func TestRoundTrip(t *testing.T) {
	for _, p := range platform.All {
		t.Run(p.String(), func(t *testing.T) {
			raw, err := testImage(t, p).Encode(!p.RequiresLongForm(), true)
			assert.NoError(t, err)
			assert.NoError(t, RoundTrip(log.NewTestLogger(t), raw))
		})
	}
}

func TestRoundTripMismatch(t *testing.T) {
	raw, err := testImage(t, platform.Console).Encode(true, true)
	assert.NoError(t, err)

	// corrupts the primary long campaign copy, the backup copy is written in its place
	raw[2*0x140+1] ^= 0xff

	err = RoundTrip(mismatchLogger(), raw)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))
}

func TestRoundTripKeepsInvalidSections(t *testing.T) {
	opts := platform.Options{DataSize: platform.Byte, ByteOrder: platform.BigEndian}
	img := save.New(platform.Console, opts)
	raw, err := img.Encode(true, true)
	assert.NoError(t, err)

	short := section.LayoutOf(section.ShortForm)
	for _, start := range short.Starts() {
		for i := range short.Length {
			raw[start+i] = 0x5a
		}
	}

	decoded, err := save.Decode(raw)
	assert.NoError(t, err)
	assert.False(t, decoded.HasSection(section.ShortForm))

	assert.NoError(t, RoundTrip(log.NewTestLogger(t), raw))
}

func TestOutput(t *testing.T) {
	img := testImage(t, platform.Console)

	img.Platform = platform.Steam
	raw, err := img.Encode(false, true)
	assert.NoError(t, err)
	assert.NoError(t, Output(log.NewTestLogger(t), raw, img, false, true))

	other := testImage(t, platform.PC)
	raw, err = other.Encode(true, true)
	assert.NoError(t, err)

	err = Output(log.NewTestLogger(t), raw, img, false, true)
	assert.True(t, errors.Is(err, ErrMismatch))
}

func TestCheckBufferEqual(t *testing.T) {
	logger := mismatchLogger()

	assert.NoError(t, checkBufferEqual(logger, []byte{1, 2, 3}, []byte{1, 2, 3}))
	assert.ErrorContains(t, checkBufferEqual(logger, []byte{1, 2}, []byte{1, 2, 3}), "mismatched lengths")
	assert.ErrorContains(t, checkBufferEqual(logger, []byte{1, 2, 3}, []byte{1, 0, 0}), "2 offset mismatches")
}
