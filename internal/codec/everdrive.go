package codec

import "github.com/jcfieldsdev/sonic3-save-editor/internal/section"

// Byte pair that fills sections the Everdrive never wrote.
const (
	everdriveEmpty1 = 0x71
	everdriveEmpty2 = 0xb1
)

// everdrive stores every canonical byte twice in a row, padded to 64 KiB.
type everdrive struct{}

func (everdrive) Decode(raw []byte) (Decoded, error) {
	if err := checkSize(raw, WordSize); err != nil {
		return Decoded{}, err
	}

	var sections [section.Count][]byte
	for _, kind := range section.Kinds {
		l := section.LayoutOf(kind)
		words := raw[2*l.Start1 : 2*(l.Start1+l.Length)]
		if everdriveUnwritten(words) {
			continue
		}
		sections[kind] = fromWords(words, 0)
	}

	return Decoded{File: assemble(sections)}, nil
}

func (everdrive) Encode(img Image) []byte {
	out := make([]byte, EverdriveSize)
	for n, b := range img.File[:section.CanonicalSize] {
		out[2*n] = b
		out[2*n+1] = b
	}
	return out
}

func everdriveUnwritten(words []byte) bool {
	for i := 0; i+1 < len(words); i += 2 {
		if words[i] != everdriveEmpty1 || words[i+1] != everdriveEmpty2 {
			return false
		}
	}
	return true
}
