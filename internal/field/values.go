package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/slot"
)

// Competition time limits as shown by the game.
const (
	maxMinutes = 9
	maxSeconds = 59
	maxTicks   = 99
)

var imageFields = []field[*save.SaveImage]{
	{
		name: "platform",
		get:  func(img *save.SaveImage) string { return string(img.Platform) },
		set: func(img **save.SaveImage, v string) error {
			p, err := platform.Parse(v)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
			(*img).Platform = p
			return nil
		},
	},
	{
		name: "datasize",
		get:  func(img *save.SaveImage) string { return string(img.Options.DataSize) },
		set: func(img **save.SaveImage, v string) error {
			size, err := platform.ParseDataSize(v)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
			(*img).Options.DataSize = size
			return nil
		},
	},
	{
		name: "byteorder",
		get:  func(img *save.SaveImage) string { return string(img.Options.ByteOrder) },
		set: func(img **save.SaveImage, v string) error {
			order, err := platform.ParseByteOrder(v)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidValue, err)
			}
			(*img).Options.ByteOrder = order
			return nil
		},
	},
	{
		name: "filler",
		get:  func(img *save.SaveImage) string { return formatHex(img.Options.FillerByte) },
		set: func(img **save.SaveImage, v string) error {
			b, err := parseByte(v)
			if err != nil {
				return err
			}
			(*img).Options.FillerByte = b
			return nil
		},
	},
}

var shortFields = []field[slot.Short]{
	{
		name: "new",
		get:  func(s slot.Short) string { return formatBool(s.IsNew) },
		set:  func(s *slot.Short, v string) (err error) { s.IsNew, err = parseBool(v); return err },
	},
	{
		name: "clear",
		get:  func(s slot.Short) string { return formatBool(s.IsClear) },
		set:  func(s *slot.Short, v string) (err error) { s.IsClear, err = parseBool(v); return err },
	},
	{
		name: "character",
		get:  func(s slot.Short) string { return s.Character.String() },
		set:  func(s *slot.Short, v string) (err error) { s.Character, err = parseCharacter(v); return err },
	},
	{
		name: "zone",
		get:  func(s slot.Short) string { return section.ZoneName(section.ShortForm, s.Zone) },
		set: func(s *slot.Short, v string) error {
			zone, err := parseZone(section.ShortForm, v)
			if err != nil {
				return err
			}
			last := slot.LastZone(section.ShortForm, s.Character, int(s.NumEmeralds))
			s.Zone = slot.ClampZone(zone, last)
			return nil
		},
	},
	{
		name: "special",
		get:  func(s slot.Short) string { return strconv.Itoa(int(s.SpecialStage)) },
		set: func(s *slot.Short, v string) (err error) {
			s.SpecialStage, err = parseNumber(v, 1, slot.Emeralds)
			return err
		},
	},
	{
		name: "emeralds",
		get: func(s slot.Short) string {
			var collected []string
			for i := range slot.Emeralds {
				if s.HasEmerald(i) {
					collected = append(collected, strconv.Itoa(i+1))
				}
			}
			if len(collected) == 0 {
				return "none"
			}
			return strings.Join(collected, ",")
		},
		set: func(s *slot.Short, v string) error {
			collected, err := parseEmeraldSet(v)
			if err != nil {
				return err
			}
			for i := range slot.Emeralds {
				s.SetEmerald(i, collected[i])
			}
			return nil
		},
	},
	{
		name: "rings",
		get:  func(s slot.Short) string { return formatHex(s.GiantRings) },
		set:  func(s *slot.Short, v string) (err error) { s.GiantRings, err = parseByte(v); return err },
	},
}

var longFields = []field[slot.Long]{
	{
		name: "new",
		get:  func(s slot.Long) string { return formatBool(s.IsNew) },
		set:  func(s *slot.Long, v string) (err error) { s.IsNew, err = parseBool(v); return err },
	},
	{
		name: "clear",
		get:  func(s slot.Long) string { return s.Clear.String() },
		set: func(s *slot.Long, v string) error {
			tier, err := parseClearTier(v)
			if err != nil {
				return err
			}
			if tier == slot.Clear {
				// the tier follows the emeralds collected
				tier = slot.ClearFor(s.EmeraldCounts())
			}
			s.Clear = tier
			return nil
		},
	},
	{
		name: "character",
		get:  func(s slot.Long) string { return s.Character.String() },
		set:  func(s *slot.Long, v string) (err error) { s.Character, err = parseCharacter(v); return err },
	},
	{
		name: "zone",
		get:  func(s slot.Long) string { return section.ZoneName(section.LongForm, s.Zone) },
		set: func(s *slot.Long, v string) error {
			zone, err := parseZone(section.LongForm, v)
			if err != nil {
				return err
			}
			collected, _ := s.EmeraldCounts()
			s.Zone = slot.ClampZone(zone, slot.LastZone(section.LongForm, s.Character, collected))
			return nil
		},
	},
	{
		name: "emeralds",
		get: func(s slot.Long) string {
			states := make([]string, slot.Emeralds)
			for i := range slot.Emeralds {
				states[i] = emeraldStateNames[s.Emerald(i)]
			}
			return strings.Join(states, ",")
		},
		set: func(s *slot.Long, v string) error {
			states, err := parseEmeraldStates(v)
			if err != nil {
				return err
			}
			for i, st := range states {
				s.SetEmerald(i, st)
			}
			collected, _ := s.EmeraldCounts()
			s.NumEmeralds = uint8(collected)
			return nil
		},
	},
	{
		name: "lives",
		get:  func(s slot.Long) string { return strconv.Itoa(int(s.Lives)) },
		set:  func(s *slot.Long, v string) (err error) { s.Lives, err = parseNumber(v, 0, 0xff); return err },
	},
	{
		name: "continues",
		get:  func(s slot.Long) string { return strconv.Itoa(int(s.Continues)) },
		set:  func(s *slot.Long, v string) (err error) { s.Continues, err = parseNumber(v, 0, 0xff); return err },
	},
	{
		name: "rings",
		get:  func(s slot.Long) string { return formatHex(s.GiantRings) },
		set:  func(s *slot.Long, v string) (err error) { s.GiantRings, err = parseByte(v); return err },
	},
}

var rankingFields = []field[slot.Ranking]{
	{
		name: "new",
		get:  func(r slot.Ranking) string { return formatBool(r.IsNew) },
		set:  func(r *slot.Ranking, v string) (err error) { r.IsNew, err = parseBool(v); return err },
	},
	{
		name: "time",
		get: func(r slot.Ranking) string {
			if r.IsNew {
				return "-'--\"--"
			}
			return fmt.Sprintf("%d'%02d\"%02d", r.Minutes, r.Seconds, r.Ticks)
		},
		set: setTime,
	},
	{
		name: "character",
		get:  func(r slot.Ranking) string { return r.Character.String() },
		set:  func(r *slot.Ranking, v string) (err error) { r.Character, err = parseCharacter(v); return err },
	},
}

var emeraldStateNames = map[slot.EmeraldState]string{
	slot.EmeraldEmpty:  "empty",
	slot.EmeraldChaos:  "chaos",
	slot.EmeraldPalace: "palace",
	slot.EmeraldSuper:  "super",
}

// setTime accepts m'ss"tt as well as m:ss.tt and m:ss:tt. Values above the limits of
// the in-game display are clamped.
func setTime(r *slot.Ranking, v string) error {
	parts := strings.FieldsFunc(v, func(c rune) bool {
		return c == '\'' || c == '"' || c == ':' || c == '.'
	})
	if len(parts) != 3 {
		return fmt.Errorf("%w: time '%s', expected m'ss\"tt", ErrInvalidValue, v)
	}

	var values [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: time '%s'", ErrInvalidValue, v)
		}
		values[i] = n
	}

	r.Minutes = uint8(min(values[0], maxMinutes))
	r.Seconds = uint8(min(values[1], maxSeconds))
	r.Ticks = uint8(min(values[2], maxTicks))
	return nil
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: '%s' is not a boolean", ErrInvalidValue, v)
	}
	return b, nil
}

func formatHex(b uint8) string {
	return fmt.Sprintf("0x%02x", b)
}

func parseByte(v string) (uint8, error) {
	n, err := strconv.ParseUint(v, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: '%s' is not a byte value", ErrInvalidValue, v)
	}
	return uint8(n), nil
}

func parseNumber(v string, lo, hi int) (uint8, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("%w: '%s' out of range %d-%d", ErrInvalidValue, v, lo, hi)
	}
	return uint8(n), nil
}

func parseCharacter(v string) (slot.Character, error) {
	candidates := map[string]slot.Character{}
	for c, name := range slot.CharacterNames() {
		candidates[name] = c
	}
	c, err := platform.Match(v, candidates)
	if err != nil {
		return 0, fmt.Errorf("%w: character '%s': %w", ErrInvalidValue, v, err)
	}
	return c, nil
}

func parseClearTier(v string) (slot.ClearTier, error) {
	candidates := map[string]slot.ClearTier{
		"no":    slot.NotCleared,
		"yes":   slot.Clear,
		"chaos": slot.ChaosClear,
		"super": slot.SuperClear,
	}
	for _, tier := range []slot.ClearTier{slot.NotCleared, slot.Clear, slot.ChaosClear, slot.SuperClear} {
		candidates[tier.String()] = tier
	}
	tier, err := platform.Match(v, candidates)
	if err != nil {
		return 0, fmt.Errorf("%w: clear '%s': %w", ErrInvalidValue, v, err)
	}
	return tier, nil
}

// parseZone accepts a zero based zone index or a zone name.
func parseZone(kind section.Kind, v string) (uint8, error) {
	if n, err := strconv.ParseUint(v, 0, 8); err == nil {
		return uint8(n), nil
	}

	candidates := map[string]uint8{}
	for i, name := range section.ZoneNames(kind) {
		candidates[name] = uint8(i)
	}
	zone, err := platform.Match(v, candidates)
	if err != nil {
		return 0, fmt.Errorf("%w: zone '%s': %w", ErrInvalidValue, v, err)
	}
	return zone, nil
}

// parseEmeraldSet parses a comma separated list of one based emerald numbers, "none"
// or "all".
func parseEmeraldSet(v string) ([slot.Emeralds]bool, error) {
	var collected [slot.Emeralds]bool

	switch strings.ToLower(strings.TrimSpace(v)) {
	case "none", "":
		return collected, nil
	case "all":
		for i := range collected {
			collected[i] = true
		}
		return collected, nil
	}

	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > slot.Emeralds {
			return collected, fmt.Errorf("%w: emerald '%s', expected 1-%d", ErrInvalidValue, part, slot.Emeralds)
		}
		collected[n-1] = true
	}
	return collected, nil
}

// parseEmeraldStates parses one state name per emerald, a single name applies to all.
func parseEmeraldStates(v string) ([slot.Emeralds]slot.EmeraldState, error) {
	var states [slot.Emeralds]slot.EmeraldState

	candidates := map[string]slot.EmeraldState{"none": slot.EmeraldEmpty}
	for st, name := range emeraldStateNames {
		candidates[name] = st
	}

	parts := strings.Split(v, ",")
	if len(parts) != 1 && len(parts) != slot.Emeralds {
		return states, fmt.Errorf("%w: expected 1 or %d emerald states, got %d",
			ErrInvalidValue, slot.Emeralds, len(parts))
	}

	for i := range states {
		part := parts[0]
		if len(parts) > 1 {
			part = parts[i]
		}
		st, err := platform.Match(strings.TrimSpace(part), candidates)
		if err != nil {
			return states, fmt.Errorf("%w: emerald state '%s': %w", ErrInvalidValue, part, err)
		}
		states[i] = st
	}
	return states, nil
}
