package slot

import (
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
)

// Short is a save slot of the short campaign.
//
// Byte layout: 0 flag (0x80 for a new game), 1 always zero, 2 character, 3 zone,
// 4 special stage (zero based), 5 emerald count, 6 emerald bitmask, 7 giant ring bitmask.
type Short struct {
	IsNew        bool
	IsClear      bool
	Character    Character
	Zone         uint8
	SpecialStage uint8 // next special stage, one based
	NumEmeralds  uint8
	Emeralds     uint8 // one bit per chaos emerald
	GiantRings   uint8
}

// ReadShort decodes slot index of a short campaign section.
func ReadShort(data []byte, index int) (Short, error) {
	if err := checkIndex(data, section.ShortForm, index); err != nil {
		return Short{}, err
	}
	b := data[index*section.LayoutOf(section.ShortForm).SlotLength:]

	if b[0] == section.NewMarker {
		return Short{IsNew: true}, nil
	}

	return Short{
		IsClear:      b[3] > section.ShortLastZone,
		Character:    Character(b[2]),
		Zone:         b[3],
		SpecialStage: b[4] + 1,
		NumEmeralds:  b[5],
		Emeralds:     b[6],
		GiantRings:   b[7],
	}, nil
}

// WriteShort encodes a slot into slot index of a short campaign section.
// A cleared slot stores the zone after the last zone.
func WriteShort(data []byte, index int, s Short) error {
	if err := checkIndex(data, section.ShortForm, index); err != nil {
		return err
	}
	length := section.LayoutOf(section.ShortForm).SlotLength
	b := data[index*length : (index+1)*length]
	clearBytes(b)

	if s.IsNew {
		b[0] = section.NewMarker
		return nil
	}

	zone := s.Zone
	if s.IsClear {
		zone = section.ShortLastZone + 1
	}
	specialStage := s.SpecialStage
	if specialStage > 0 {
		specialStage--
	}

	b[2] = byte(s.Character)
	b[3] = zone
	b[4] = specialStage
	b[5] = s.NumEmeralds
	b[6] = s.Emeralds
	b[7] = s.GiantRings
	return nil
}

// HasEmerald returns whether chaos emerald i has been collected.
func (s Short) HasEmerald(i int) bool {
	return s.Emeralds&(1<<i) != 0
}

// SetEmerald marks chaos emerald i as collected or missing and updates the emerald count.
func (s *Short) SetEmerald(i int, collected bool) {
	if collected {
		s.Emeralds |= 1 << i
	} else {
		s.Emeralds &^= 1 << i
	}

	s.NumEmeralds = 0
	for e := range Emeralds {
		if s.HasEmerald(e) {
			s.NumEmeralds++
		}
	}
}
