package codec

import "github.com/jcfieldsdev/sonic3-save-editor/internal/section"

// consoleByte is a plain SRAM dump, already in canonical layout.
type consoleByte struct{}

func (consoleByte) Decode(raw []byte) (Decoded, error) {
	if err := checkSize(raw, section.CanonicalSize); err != nil {
		return Decoded{}, err
	}
	file := make([]byte, section.CanonicalSize)
	copy(file, raw)
	return Decoded{File: file}, nil
}

func (consoleByte) Encode(img Image) []byte {
	out := make([]byte, section.CanonicalSize)
	copy(out, img.File)
	return out
}

// consoleWord is an SRAM dump that pairs every data byte with a filler byte. Little
// endian files store the data byte first.
type consoleWord struct {
	littleEndian bool
	filler       byte
}

func (c consoleWord) dataOffset() int {
	if c.littleEndian {
		return 0
	}
	return 1
}

func (c consoleWord) Decode(raw []byte) (Decoded, error) {
	if err := checkSize(raw, WordSize); err != nil {
		return Decoded{}, err
	}
	return Decoded{File: fromWords(raw[:WordSize], c.dataOffset())}, nil
}

func (c consoleWord) Encode(img Image) []byte {
	out := make([]byte, WordSize)
	offset := c.dataOffset()
	for n, b := range img.File[:section.CanonicalSize] {
		out[2*n+offset] = b
		out[2*n+1-offset] = c.filler
	}
	return out
}

// fromWords returns every second byte of the buffer, starting at offset.
func fromWords(raw []byte, offset int) []byte {
	out := make([]byte, 0, len(raw)/2)
	for i := offset; i < len(raw); i += 2 {
		out = append(out, raw[i])
	}
	return out
}
