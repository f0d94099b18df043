package section

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLayoutsFitCanonicalBuffer(t *testing.T) {
	for _, kind := range Kinds {
		l := LayoutOf(kind)
		for _, start := range l.Starts() {
			assert.True(t, start+l.Length <= CanonicalSize, kind.String())
		}
		assert.True(t, l.Slots*l.SlotLength <= l.TagOffset(), kind.String())
	}
}

func TestLayoutsDoNotOverlap(t *testing.T) {
	used := make([]bool, CanonicalSize)
	for _, kind := range Kinds {
		l := LayoutOf(kind)
		for _, start := range l.Starts() {
			for i := start; i < start+l.Length; i++ {
				assert.False(t, used[i], kind.String())
				used[i] = true
			}
		}
	}
}

func TestCompetitionMarkerOffset(t *testing.T) {
	// the console byte signature looks for the competition tag at 0x58
	l := LayoutOf(Competition)
	assert.Equal(t, 0x58, l.Start1+l.TagOffset())
}

func TestBlank(t *testing.T) {
	short := Blank(ShortForm)
	assert.Len(t, short, 52)
	assert.Equal(t, byte(NewMarker), short[0])
	assert.Equal(t, byte(NewMarker), short[40])
	assert.Equal(t, byte(0), short[1])
	assert.Equal(t, byte('B'), short[48])
	assert.Equal(t, byte('D'), short[49])

	cp := Blank(Competition)
	assert.Equal(t, byte(NewMarker), cp[0])
	assert.Equal(t, byte(NewMarker), cp[4])
	assert.Equal(t, byte(0), cp[12])
	assert.Equal(t, byte(1), cp[13])
	assert.Equal(t, byte(2), cp[14])
	assert.Equal(t, byte(NewMarker), cp[StageLength])
	assert.Equal(t, byte('L'), cp[80])
	assert.Equal(t, byte('D'), cp[81])
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "short", want: ShortForm},
		{input: "s3k", want: LongForm},
		{input: "competition", want: Competition},
		{input: "bonus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZoneName(t *testing.T) {
	assert.Equal(t, "Flying Battery", ZoneName(ShortForm, 4))
	assert.Equal(t, "IceCap", ZoneName(LongForm, 4))
	assert.Equal(t, "Doomsday", ZoneName(LongForm, SonicLastZone))
	assert.Equal(t, "Zone 7", ZoneName(ShortForm, 7))
}

func TestZoneNames(t *testing.T) {
	assert.Len(t, ZoneNames(ShortForm), ShortLastZone+1)
	assert.Len(t, ZoneNames(LongForm), SonicLastZone+1)
	assert.Nil(t, ZoneNames(Competition))

	names := ZoneNames(LongForm)
	names[0] = "changed"
	assert.Equal(t, "Angel Island", ZoneName(LongForm, 0))
}
