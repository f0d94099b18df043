package codec

import "github.com/jcfieldsdev/sonic3-save-editor/internal/section"

var steamHeader = []byte{0x2c, 0x80, 0x02}

// Offset of the first data byte in a Steam file.
const steamDataStart = 4

// steam is the Sega Genesis Classics layout: a short header followed by big endian words
// with a zero filler byte, padded to the emulator state size.
type steam struct{}

func (steam) Decode(raw []byte) (Decoded, error) {
	if err := checkSize(raw, WordSize); err != nil {
		return Decoded{}, err
	}
	file := fromWords(raw[steamDataStart:WordSize], 0)

	var sections [section.Count][]byte
	for _, kind := range section.Kinds {
		l := section.LayoutOf(kind)
		sections[kind] = section.Extract(file, kind, l.Start1)
	}

	return Decoded{File: assemble(sections)}, nil
}

func (steam) Encode(img Image) []byte {
	out := make([]byte, SteamSize)
	copy(out, steamHeader)
	for i, n := steamDataStart, 0; i < WordSize; i, n = i+2, n+1 {
		out[i] = img.File[n]
	}
	return out
}
