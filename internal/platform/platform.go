// Package platform defines the save file platforms and their storage options.
package platform

import (
	"fmt"
	"sort"
	"strings"
)

// Platform is the game release a save file was written by.
type Platform string

// Supported platforms.
const (
	Console   Platform = "console"   // cartridge SRAM dumps from emulators
	Everdrive Platform = "everdrive" // flash cartridge save files
	PC        Platform = "pc"        // Sonic & Knuckles Collection
	Steam     Platform = "steam"     // Sega Genesis Classics
	AIR       Platform = "air"       // Sonic 3 A.I.R.
)

// All lists the platforms in display order.
var All = []Platform{Console, Everdrive, PC, Steam, AIR}

var platformNames = map[Platform]string{
	Console:   "Console",
	Everdrive: "Everdrive",
	PC:        "PC",
	Steam:     "Steam",
	AIR:       "Sonic 3 A.I.R.",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return string(p)
}

// RequiresLongForm returns whether the platform can only store the long campaign.
func (p Platform) RequiresLongForm() bool {
	return p == Steam || p == AIR
}

// DataSize is the storage granularity of the save data.
type DataSize string

// Data sizes.
const (
	Byte DataSize = "byte"
	Word DataSize = "word" // every data byte is paired with a filler byte
)

// ByteOrder is the position of the data byte inside a stored word.
type ByteOrder string

// Byte orders.
const (
	BigEndian    ByteOrder = "big"
	LittleEndian ByteOrder = "little"
)

// Options are the storage options of a save file.
type Options struct {
	DataSize   DataSize  `json:"dataSize"`
	ByteOrder  ByteOrder `json:"byteOrder"`
	FillerByte byte      `json:"fillerByte"`
}

// DefaultOptions returns the options used when a signature does not set them.
func DefaultOptions() Options {
	return Options{
		DataSize:   Word,
		ByteOrder:  BigEndian,
		FillerByte: 0x00,
	}
}

// Parse returns the platform matching the given name. Exact, case insensitive and
// punctuation insensitive matches win over unique prefixes.
func Parse(name string) (Platform, error) {
	candidates := make(map[string]Platform, len(platformNames)*2)
	for p, display := range platformNames {
		candidates[string(p)] = p
		candidates[display] = p
	}
	candidates["genesis"] = Console
	candidates["megadrive"] = Console
	candidates["sram"] = Console
	candidates["collection"] = PC

	p, err := Match(name, candidates)
	if err != nil {
		return "", fmt.Errorf("unknown platform '%s': %w", name, err)
	}
	return p, nil
}

// ParseDataSize returns the data size for the given name.
func ParseDataSize(s string) (DataSize, error) {
	switch DataSize(strings.ToLower(s)) {
	case Byte:
		return Byte, nil
	case Word:
		return Word, nil
	default:
		return "", fmt.Errorf("unknown data size '%s'", s)
	}
}

// ParseByteOrder returns the byte order for the given name.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(s) {
	case "big", "be", "bigendian":
		return BigEndian, nil
	case "little", "le", "littleendian":
		return LittleEndian, nil
	default:
		return "", fmt.Errorf("unknown byte order '%s'", s)
	}
}

// DefaultFilename returns the file name the platform uses for its save file.
func DefaultFilename(p Platform, writeLong bool) string {
	switch p {
	case Everdrive:
		return "s3&k.srm"
	case PC:
		return "sonic3k.bin"
	case Steam:
		return "bs.sav"
	case AIR:
		return "persistentdata.bin"
	default:
		if writeLong {
			return "s3&k.srm"
		}
		return "sonic3.srm"
	}
}

// Match looks up a value by name. Names are compared exactly, then case and
// punctuation insensitive, then by unique prefix and finally by unique substring.
func Match[T comparable](name string, candidates map[string]T) (T, error) {
	var zero T
	if v, ok := candidates[name]; ok {
		return v, nil
	}

	key := normalize(name)
	if key == "" {
		return zero, fmt.Errorf("empty name")
	}

	matchers := []func(candidate string) bool{
		func(c string) bool { return c == key },
		func(c string) bool { return strings.HasPrefix(c, key) },
		func(c string) bool { return strings.Contains(c, key) },
	}

	for _, matches := range matchers {
		found := map[T][]string{}
		for n, v := range candidates {
			if matches(normalize(n)) {
				found[v] = append(found[v], n)
			}
		}

		switch len(found) {
		case 0:
			continue
		case 1:
			for v := range found {
				return v, nil
			}
		default:
			var names []string
			for _, n := range found {
				names = append(names, n[0])
			}
			sort.Strings(names)
			return zero, fmt.Errorf("ambiguous name, could be %s", strings.Join(names, ", "))
		}
	}

	return zero, fmt.Errorf("no match")
}

func normalize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
