// Package field addresses single values of a save image by a dotted path.
//
// Paths have the forms "platform", "short.<slot>.<field>", "long.<slot>.<field>" and
// "competition.<stage>.<rank>.<field>". Slot, stage and rank numbers are one based,
// stages can also be given by name. Field names and value names are matched fuzzily.
package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/save"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/slot"
)

var (
	ErrUnknownPath  = errors.New("unknown field path")
	ErrInvalidValue = errors.New("invalid value")
)

// Entry is a field path with its current display value.
type Entry struct {
	Path  string
	Value string
}

type field[T any] struct {
	name string
	get  func(v T) string
	set  func(v *T, value string) error
}

// target is the parsed form of a path.
type target struct {
	kind  section.Kind
	index int // slot or stage
	rank  int
	name  string
	image bool // path addresses a storage option of the image itself
}

// Get returns the display value of the field addressed by path.
func Get(img *save.SaveImage, path string) (string, error) {
	t, err := parsePath(path)
	if err != nil {
		return "", err
	}

	if t.image {
		f, err := lookup(imageFields, t.name)
		if err != nil {
			return "", err
		}
		return f.get(img), nil
	}

	switch t.kind {
	case section.ShortForm:
		f, err := lookup(shortFields, t.name)
		if err != nil {
			return "", err
		}
		s, err := img.ShortSlot(t.index)
		if err != nil {
			return "", err
		}
		return f.get(s), nil

	case section.LongForm:
		f, err := lookup(longFields, t.name)
		if err != nil {
			return "", err
		}
		s, err := img.LongSlot(t.index)
		if err != nil {
			return "", err
		}
		return f.get(s), nil

	default:
		f, err := lookup(rankingFields, t.name)
		if err != nil {
			return "", err
		}
		rows, err := img.StageRows(t.index)
		if err != nil {
			return "", err
		}
		return f.get(rows[t.rank]), nil
	}
}

// Set assigns a value to the field addressed by path and returns the value as stored,
// which can differ from the given one when it was matched fuzzily or clamped. Setting
// any field other than "new" marks the slot or ranking as played.
func Set(img *save.SaveImage, path, value string) (string, error) {
	t, err := parsePath(path)
	if err != nil {
		return "", err
	}

	if t.image {
		f, err := lookup(imageFields, t.name)
		if err != nil {
			return "", err
		}
		if err := f.set(&img, value); err != nil {
			return "", err
		}
		return f.get(img), nil
	}

	switch t.kind {
	case section.ShortForm:
		f, err := lookup(shortFields, t.name)
		if err != nil {
			return "", err
		}
		s, err := img.ShortSlot(t.index)
		if err != nil {
			return "", err
		}
		if err := f.set(&s, value); err != nil {
			return "", err
		}
		if f.name != "new" {
			s.IsNew = false
		}
		if err := img.SetShortSlot(t.index, s); err != nil {
			return "", err
		}
		if s, err = img.ShortSlot(t.index); err != nil {
			return "", err
		}
		return f.get(s), nil

	case section.LongForm:
		f, err := lookup(longFields, t.name)
		if err != nil {
			return "", err
		}
		s, err := img.LongSlot(t.index)
		if err != nil {
			return "", err
		}
		if err := f.set(&s, value); err != nil {
			return "", err
		}
		if f.name != "new" {
			s.IsNew = false
		}
		if err := img.SetLongSlot(t.index, s); err != nil {
			return "", err
		}
		if s, err = img.LongSlot(t.index); err != nil {
			return "", err
		}
		return f.get(s), nil

	default:
		f, err := lookup(rankingFields, t.name)
		if err != nil {
			return "", err
		}
		rows, err := img.StageRows(t.index)
		if err != nil {
			return "", err
		}
		r := &rows[t.rank]
		if err := f.set(r, value); err != nil {
			return "", err
		}
		if f.name != "new" {
			r.IsNew = false
		}
		if err := img.SetStageRows(t.index, rows); err != nil {
			return "", err
		}
		if rows, err = img.StageRows(t.index); err != nil {
			return "", err
		}
		return f.get(rows[t.rank]), nil
	}
}

// Dump returns every field of the image, skipping sections without valid data.
func Dump(img *save.SaveImage) ([]Entry, error) {
	var entries []Entry
	for _, f := range imageFields {
		entries = append(entries, Entry{Path: f.name, Value: f.get(img)})
	}

	for _, kind := range section.Kinds {
		if !img.HasSection(kind) {
			continue
		}

		var names []string
		switch kind {
		case section.ShortForm:
			names = fieldNames(shortFields)
		case section.LongForm:
			names = fieldNames(longFields)
		default:
			names = fieldNames(rankingFields)
		}

		for _, prefix := range prefixes(kind) {
			for _, name := range names {
				path := prefix + "." + name
				value, err := Get(img, path)
				if err != nil {
					return nil, err
				}
				entries = append(entries, Entry{Path: path, Value: value})
			}
		}
	}
	return entries, nil
}

// Paths returns a description of the addressable fields, used for help texts.
func Paths() []string {
	paths := fieldNames(imageFields)
	for _, name := range fieldNames(shortFields) {
		paths = append(paths, "short.<1-6>."+name)
	}
	for _, name := range fieldNames(longFields) {
		paths = append(paths, "long.<1-8>."+name)
	}
	for _, name := range fieldNames(rankingFields) {
		paths = append(paths, "competition.<stage>.<1-3>."+name)
	}
	return paths
}

func prefixes(kind section.Kind) []string {
	var out []string
	if kind == section.Competition {
		for stage := range section.Stages {
			for rank := range section.RankingsPerStage {
				out = append(out, fmt.Sprintf("%s.%d.%d", kind, stage+1, rank+1))
			}
		}
		return out
	}

	for i := range section.LayoutOf(kind).Slots {
		out = append(out, fmt.Sprintf("%s.%d", kind, i+1))
	}
	return out
}

func parsePath(path string) (target, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(path)), ".")
	if len(parts) == 1 {
		return target{name: parts[0], image: true}, nil
	}

	kind, err := section.ParseKind(parts[0])
	if err != nil {
		return target{}, fmt.Errorf("%w '%s': %w", ErrUnknownPath, path, err)
	}

	if kind != section.Competition {
		if len(parts) != 3 {
			return target{}, fmt.Errorf("%w '%s': expected %s.<slot>.<field>", ErrUnknownPath, path, kind)
		}
		index, err := parseOrdinal(parts[1], section.LayoutOf(kind).Slots)
		if err != nil {
			return target{}, fmt.Errorf("%w '%s': slot %w", ErrUnknownPath, path, err)
		}
		return target{kind: kind, index: index, name: parts[2]}, nil
	}

	if len(parts) != 4 {
		return target{}, fmt.Errorf("%w '%s': expected %s.<stage>.<rank>.<field>", ErrUnknownPath, path, kind)
	}
	stage, err := parseStage(parts[1])
	if err != nil {
		return target{}, fmt.Errorf("%w '%s': stage %w", ErrUnknownPath, path, err)
	}
	rank, err := parseOrdinal(parts[2], section.RankingsPerStage)
	if err != nil {
		return target{}, fmt.Errorf("%w '%s': rank %w", ErrUnknownPath, path, err)
	}
	return target{kind: kind, index: stage, rank: rank, name: parts[3]}, nil
}

// parseOrdinal converts a one based number to an index below count.
func parseOrdinal(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("'%s' out of range 1-%d", s, count)
	}
	return n - 1, nil
}

func parseStage(s string) (int, error) {
	if _, err := strconv.Atoi(s); err == nil {
		return parseOrdinal(s, section.Stages)
	}

	candidates := make(map[string]int, section.Stages)
	for i, name := range slot.StageNames {
		candidates[name] = i
	}
	return platform.Match(s, candidates)
}

func lookup[T any](fields []field[T], name string) (field[T], error) {
	candidates := make(map[string]int, len(fields))
	for i, f := range fields {
		candidates[f.name] = i
	}

	i, err := platform.Match(name, candidates)
	if err != nil {
		return field[T]{}, fmt.Errorf("%w: field '%s': %w", ErrUnknownPath, name, err)
	}
	return fields[i], nil
}

func fieldNames[T any](fields []field[T]) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.name)
	}
	return names
}
