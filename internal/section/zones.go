package section

import (
	"fmt"
	"slices"
)

// Last zone indexes per campaign and character.
const (
	ShortLastZone    = 0x06
	SonicLastZone    = 0x0d // Doomsday, only reachable with all emeralds
	TailsLastZone    = 0x0c
	KnucklesLastZone = 0x0b
)

var shortZones = []string{
	"Angel Island",
	"Hydrocity",
	"Marble Garden",
	"Carnival Night",
	"Flying Battery",
	"IceCap",
	"Launch Base",
}

var longZones = []string{
	"Angel Island",
	"Hydrocity",
	"Marble Garden",
	"Carnival Night",
	"IceCap",
	"Launch Base",
	"Mushroom Hill",
	"Flying Battery",
	"Sandopolis",
	"Lava Reef",
	"Hidden Palace",
	"Sky Sanctuary",
	"Death Egg",
	"Doomsday",
}

// ZoneNames returns the zone names of a campaign in zone index order.
func ZoneNames(kind Kind) []string {
	switch kind {
	case ShortForm:
		return slices.Clone(shortZones)
	case LongForm:
		return slices.Clone(longZones)
	default:
		return nil
	}
}

// ZoneName returns a display name for a zone index of the given campaign.
func ZoneName(kind Kind, zone uint8) string {
	names := ZoneNames(kind)
	if int(zone) < len(names) {
		return names[zone]
	}
	return fmt.Sprintf("Zone %d", zone)
}
