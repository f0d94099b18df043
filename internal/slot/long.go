package slot

import (
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
)

// EmeraldState is the two bit state of one emerald in a long campaign slot.
type EmeraldState uint8

// Emerald states, bit 0 is set for a collected chaos emerald and bit 1 for an emerald
// that was brought to Hidden Palace.
const (
	EmeraldEmpty  EmeraldState = 0
	EmeraldChaos  EmeraldState = 1
	EmeraldPalace EmeraldState = 2
	EmeraldSuper  EmeraldState = 3
)

// Long is a save slot of the long campaign.
//
// Byte layout: 0 clear tier (0x80 for a new game), 1 always zero, 2 character in the
// high nibble and emerald count in the low nibble, 3 zone, 4 giant ring bitmask,
// 5 always zero, 6-7 emerald states, 8 lives, 9 continues.
type Long struct {
	IsNew       bool
	Clear       ClearTier
	Character   Character
	NumEmeralds uint8 // wraps to 0 once all emeralds are collected
	Zone        uint8
	GiantRings  uint8
	Emeralds1   uint8
	Emeralds2   uint8
	Lives       uint8
	Continues   uint8
}

// ReadLong decodes slot index of a long campaign section.
func ReadLong(data []byte, index int) (Long, error) {
	if err := checkIndex(data, section.LongForm, index); err != nil {
		return Long{}, err
	}
	b := data[index*section.LayoutOf(section.LongForm).SlotLength:]

	if b[0] == section.NewMarker {
		return Long{IsNew: true}, nil
	}

	clear := ClearTier(b[0])
	if clear > SuperClear {
		clear = NotCleared
	}

	return Long{
		Clear:       clear,
		Character:   Character(b[2] >> 4),
		NumEmeralds: b[2] & 0x0f,
		Zone:        b[3],
		GiantRings:  b[4],
		Emeralds1:   b[6],
		Emeralds2:   b[7],
		Lives:       b[8],
		Continues:   b[9],
	}, nil
}

// WriteLong encodes a slot into slot index of a long campaign section.
// A cleared slot stores the zone after the last zone of its character and clear tier.
func WriteLong(data []byte, index int, s Long) error {
	if err := checkIndex(data, section.LongForm, index); err != nil {
		return err
	}
	length := section.LayoutOf(section.LongForm).SlotLength
	b := data[index*length : (index+1)*length]
	clearBytes(b)

	if s.IsNew {
		b[0] = section.NewMarker
		return nil
	}

	numEmeralds := s.NumEmeralds
	if numEmeralds >= Emeralds {
		numEmeralds = 0
	}

	zone := s.Zone
	if s.Clear != NotCleared {
		zone = clearedZone(s.Character, s.Clear) + 1
	}

	b[0] = byte(s.Clear)
	b[2] = byte(s.Character)<<4 | numEmeralds&0x0f
	b[3] = zone
	b[4] = s.GiantRings
	b[6] = s.Emeralds1
	b[7] = s.Emeralds2
	b[8] = s.Lives
	b[9] = s.Continues
	return nil
}

func clearedZone(character Character, tier ClearTier) uint8 {
	switch character {
	case Tails:
		return section.TailsLastZone
	case Knuckles, KnucklesTails:
		return section.KnucklesLastZone
	default:
		if tier == ChaosClear || tier == SuperClear {
			return section.SonicLastZone
		}
		return section.SonicLastZone - 1
	}
}

// Emerald returns the state of emerald i, 0 to 6.
func (s Long) Emerald(i int) EmeraldState {
	v := uint16(s.Emeralds1)<<8 | uint16(s.Emeralds2)
	shift := 14 - 2*i
	return EmeraldState(v >> shift & 0x03)
}

// SetEmerald sets the state of emerald i, 0 to 6.
func (s *Long) SetEmerald(i int, state EmeraldState) {
	v := uint16(s.Emeralds1)<<8 | uint16(s.Emeralds2)
	shift := 14 - 2*i
	v &^= 0x03 << shift
	v |= uint16(state&0x03) << shift
	s.Emeralds1 = uint8(v >> 8)
	s.Emeralds2 = uint8(v)
}

// EmeraldCounts returns the number of collected emeralds in any state and the number
// of super emeralds.
func (s Long) EmeraldCounts() (collected, super int) {
	for i := range Emeralds {
		switch s.Emerald(i) {
		case EmeraldEmpty:
		case EmeraldSuper:
			collected++
			super++
		default:
			collected++
		}
	}
	return collected, super
}
