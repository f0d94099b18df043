package platform

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr string
	}{
		{input: "pc", want: PC},
		{input: "STEAM", want: Steam},
		{input: "Sonic 3 A.I.R.", want: AIR},
		{input: "air", want: AIR},
		{input: "ever", want: Everdrive},
		{input: "mega", want: Console},
		{input: "s", wantErr: "ambiguous"},
		{input: "xbox", wantErr: "unknown platform"},
		{input: "", wantErr: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchPrefersExact(t *testing.T) {
	candidates := map[string]int{
		"Knuckles":         3,
		"Knuckles & Tails": 4,
	}
	got, err := Match("knuckles", candidates)
	assert.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = Match("knucklesand", candidates)
	assert.Error(t, err)
	assert.Equal(t, 0, got)

	got, err = Match("knuckles tails", candidates)
	assert.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestParseOptions(t *testing.T) {
	size, err := ParseDataSize("Word")
	assert.NoError(t, err)
	assert.Equal(t, Word, size)
	_, err = ParseDataSize("nibble")
	assert.Error(t, err)

	order, err := ParseByteOrder("le")
	assert.NoError(t, err)
	assert.Equal(t, LittleEndian, order)
	_, err = ParseByteOrder("middle")
	assert.Error(t, err)
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "sonic3.srm", DefaultFilename(Console, false))
	assert.Equal(t, "s3&k.srm", DefaultFilename(Console, true))
	assert.Equal(t, "s3&k.srm", DefaultFilename(Everdrive, false))
	assert.Equal(t, "sonic3k.bin", DefaultFilename(PC, true))
	assert.Equal(t, "bs.sav", DefaultFilename(Steam, true))
	assert.Equal(t, "persistentdata.bin", DefaultFilename(AIR, true))
}

func TestRequiresLongForm(t *testing.T) {
	assert.True(t, Steam.RequiresLongForm())
	assert.True(t, AIR.RequiresLongForm())
	assert.False(t, PC.RequiresLongForm())
	assert.False(t, Console.RequiresLongForm())
}
