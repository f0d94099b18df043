package checksum

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// reference is a direct transcription of the algorithm using a wider accumulator.
func reference(data []byte) uint16 {
	sum := uint32(0)
	for i := 0; i < len(data)-2; i += 2 {
		sum ^= uint32(data[i])<<8 | uint32(data[i+1])
		lsb := sum & 1
		sum >>= 1
		if lsb == 1 {
			sum ^= 0x8810
		}
	}
	return uint16(sum)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{
			name: "only checksum bytes",
			data: []byte{0x12, 0x34},
			want: 0,
		},
		{
			name: "single even word",
			data: []byte{0x00, 0x02, 0x00, 0x00},
			want: 0x0001,
		},
		{
			name: "single odd word triggers feedback",
			data: []byte{0x00, 0x01, 0x00, 0x00},
			want: 0x8810,
		},
		{
			name: "checksum bytes are ignored",
			data: []byte{0x00, 0x01, 0xff, 0xff},
			want: 0x8810,
		},
		{
			name: "two words",
			data: []byte{0x00, 0x01, 0x00, 0x01, 0x00, 0x00},
			want: 0xcc18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.data))
		})
	}
}

func TestComputeMatchesReference(t *testing.T) {
	data := make([]byte, 84)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	assert.Equal(t, reference(data), Compute(data))

	data[0] = 0x80
	data[40] = 0x4c
	assert.Equal(t, reference(data), Compute(data))
}

func TestStampAndValid(t *testing.T) {
	data := make([]byte, 52)
	data[0] = 0x80
	data[48] = 'B'
	data[49] = 'D'

	assert.False(t, Valid(data))

	Stamp(data)
	assert.True(t, Valid(data))
	assert.Equal(t, Compute(data), Stored(data))

	data[3] ^= 0x01
	assert.False(t, Valid(data))
}

func TestValidRejectsZero(t *testing.T) {
	// all-zero data computes a zero checksum, which must not count as valid
	data := make([]byte, 84)
	assert.Equal(t, uint16(0), Compute(data))
	assert.False(t, Valid(data))
}

func TestShortInput(t *testing.T) {
	assert.False(t, Valid(nil))
	assert.False(t, Valid([]byte{0x01}))
	assert.Equal(t, uint16(0), Stored([]byte{0x01}))
	Stamp([]byte{0x01})
}
