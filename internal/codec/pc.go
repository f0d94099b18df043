package codec

import (
	"slices"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
)

// Offset of the two emerald state bytes inside a long campaign slot.
const emeraldsOffset = 6

// pc is the Sonic & Knuckles Collection layout: one copy of each section at its own
// offset, little endian multi byte fields and no checksums.
type pc struct{}

func (pc) Decode(raw []byte) (Decoded, error) {
	if err := checkSize(raw, PCSize); err != nil {
		return Decoded{}, err
	}

	var sections [section.Count][]byte
	for _, kind := range section.Kinds {
		l := section.LayoutOf(kind)
		data := make([]byte, l.Length)
		copy(data, raw[l.StartPC:l.StartPC+l.Length])
		swapPCFields(kind, data)
		sections[kind] = data
	}

	return Decoded{File: assemble(sections)}, nil
}

func (pc) Encode(img Image) []byte {
	out := make([]byte, PCSize)
	for _, kind := range section.Kinds {
		src := img.Sections[kind]
		if src == nil {
			continue
		}
		l := section.LayoutOf(kind)
		data := slices.Clone(src)
		swapPCFields(kind, data)
		data[l.Length-2] = 0
		data[l.Length-1] = 0
		copy(out[l.StartPC:], data)
	}
	return out
}

// swapPCFields converts between the canonical and the PC byte order of a section. The
// conversion is its own inverse.
func swapPCFields(kind section.Kind, data []byte) {
	l := section.LayoutOf(kind)

	switch kind {
	case section.LongForm:
		for i := range l.Slots {
			pos := i*l.SlotLength + emeraldsOffset
			data[pos], data[pos+1] = data[pos+1], data[pos]
		}

	case section.Competition:
		for stage := range section.Stages {
			for row := range section.RankingsPerStage {
				pos := stage*section.StageLength + row*section.RowLength
				slices.Reverse(data[pos : pos+section.RowLength])
			}
		}
	}

	tag := l.TagOffset()
	data[tag], data[tag+1] = data[tag+1], data[tag]
}
