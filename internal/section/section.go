// Package section describes the three save regions inside the canonical save buffer.
package section

import "fmt"

// CanonicalSize is the size of the canonical byte-granular big-endian save buffer.
const CanonicalSize = 512

// Kind identifies one of the three save regions.
type Kind int

// Save region kinds.
const (
	ShortForm   Kind = iota // single player progress of the short campaign (Sonic 3 alone)
	LongForm                // single player progress of the long campaign (Sonic 3 & Knuckles)
	Competition             // competition mode time rankings
)

// Count is the number of section kinds.
const Count = 3

// Kinds lists all section kinds in buffer processing order.
var Kinds = [Count]Kind{ShortForm, LongForm, Competition}

// TrailerSize is the size of the marker tag plus checksum at the end of each section.
const TrailerSize = 4

// Competition section geometry.
const (
	Stages           = 5
	RankingsPerStage = 3
	RowLength        = 4
	StageLength      = RowLength * (RankingsPerStage + 1)
)

// Layout is the static description of a section kind.
type Layout struct {
	Name       string
	Start1     int // offset of the primary copy
	Start2     int // offset of the backup copy
	Length     int // section length including tag and checksum
	SlotLength int
	Slots      int
	StartPC    int     // offset of the only copy in the PC file
	Tag        [2]byte // marker preceding the checksum
	AIRName    string  // record name in the AIR container, empty if not stored
}

var layouts = [Count]Layout{
	ShortForm: {
		Name:       "short",
		Start1:     0x0b4,
		Start2:     0x0fa,
		Length:     52,
		SlotLength: 8,
		Slots:      6,
		StartPC:    0x0c0,
		Tag:        [2]byte{'B', 'D'},
	},
	LongForm: {
		Name:       "long",
		Start1:     0x140,
		Start2:     0x196,
		Length:     84,
		SlotLength: 10,
		Slots:      8,
		StartPC:    0x180,
		Tag:        [2]byte{'B', 'D'},
		AIRName:    "SRAM_Saveslots",
	},
	Competition: {
		Name:       "competition",
		Start1:     0x008,
		Start2:     0x05e,
		Length:     84,
		SlotLength: RowLength,
		Slots:      Stages * RankingsPerStage,
		StartPC:    0x000,
		Tag:        [2]byte{'L', 'D'},
		AIRName:    "SRAM_CompetitionRecords",
	},
}

// LayoutOf returns the layout of the given section kind.
func LayoutOf(kind Kind) Layout {
	return layouts[kind]
}

// Starts returns the offsets of both redundant copies.
func (l Layout) Starts() [2]int {
	return [2]int{l.Start1, l.Start2}
}

// TagOffset returns the offset of the marker tag inside the section.
func (l Layout) TagOffset() int {
	return l.Length - TrailerSize
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= Count {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return layouts[k].Name
}

// ParseKind returns the section kind for the given name.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "short", "s3", "sonic3":
		return ShortForm, nil
	case "long", "s3k", "s3&k":
		return LongForm, nil
	case "competition", "cp":
		return Competition, nil
	default:
		return 0, fmt.Errorf("unknown section '%s'", s)
	}
}

// Extract returns a copy of the section at the given offset of the canonical buffer.
func Extract(file []byte, kind Kind, start int) []byte {
	l := layouts[kind]
	out := make([]byte, l.Length)
	copy(out, file[start:start+l.Length])
	return out
}

// Blank returns a section of the given kind with every slot unused, the marker tag set
// and a zero checksum.
func Blank(kind Kind) []byte {
	l := layouts[kind]
	data := make([]byte, l.Length)

	switch kind {
	case ShortForm, LongForm:
		for i := range l.Slots {
			data[i*l.SlotLength] = NewMarker
		}

	case Competition:
		for stage := range Stages {
			start := stage * StageLength
			for row := range RankingsPerStage {
				data[start+row*RowLength] = NewMarker
				data[start+RowLength*RankingsPerStage+row] = byte(row)
			}
		}
	}

	copy(data[l.TagOffset():], l.Tag[:])
	return data
}

// NewMarker flags an unused save slot or an empty competition ranking.
const NewMarker = 0x80
