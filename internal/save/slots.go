package save

import (
	"fmt"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/checksum"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/slot"
)

// sectionFor returns the working copy of a section after checking that index is a valid
// slot or stage index for it.
func (img *SaveImage) sectionFor(kind section.Kind, index int) ([]byte, error) {
	count := section.LayoutOf(kind).Slots
	if kind == section.Competition {
		count = section.Stages
	}
	if index < 0 || index >= count {
		return nil, fmt.Errorf("%w: %s index %d, expected 0-%d", ErrIndexOutOfRange, kind, index, count-1)
	}

	data := img.sections[kind]
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrSectionEmpty, kind)
	}
	return data, nil
}

// ShortSlot returns a save slot of the short campaign.
func (img *SaveImage) ShortSlot(index int) (slot.Short, error) {
	data, err := img.sectionFor(section.ShortForm, index)
	if err != nil {
		return slot.Short{}, err
	}
	return slot.ReadShort(data, index)
}

// SetShortSlot replaces a save slot of the short campaign.
func (img *SaveImage) SetShortSlot(index int, s slot.Short) error {
	data, err := img.sectionFor(section.ShortForm, index)
	if err != nil {
		return err
	}
	if err := slot.WriteShort(data, index, s); err != nil {
		return err
	}
	checksum.Stamp(data)
	return nil
}

// LongSlot returns a save slot of the long campaign.
func (img *SaveImage) LongSlot(index int) (slot.Long, error) {
	data, err := img.sectionFor(section.LongForm, index)
	if err != nil {
		return slot.Long{}, err
	}
	return slot.ReadLong(data, index)
}

// SetLongSlot replaces a save slot of the long campaign.
func (img *SaveImage) SetLongSlot(index int, s slot.Long) error {
	data, err := img.sectionFor(section.LongForm, index)
	if err != nil {
		return err
	}
	if err := slot.WriteLong(data, index, s); err != nil {
		return err
	}
	checksum.Stamp(data)
	return nil
}

// StageRows returns the rankings of a competition stage.
func (img *SaveImage) StageRows(stage int) (slot.Stage, error) {
	data, err := img.sectionFor(section.Competition, stage)
	if err != nil {
		return slot.Stage{}, err
	}
	return slot.ReadStage(data, stage)
}

// SetStageRows replaces the rankings of a competition stage.
func (img *SaveImage) SetStageRows(stage int, rows slot.Stage) error {
	data, err := img.sectionFor(section.Competition, stage)
	if err != nil {
		return err
	}
	if err := slot.WriteStage(data, stage, rows); err != nil {
		return err
	}
	checksum.Stamp(data)
	return nil
}

// SlotCharacters returns the character of every slot of a campaign, slot.Nobody for
// slots that have not been played.
func (img *SaveImage) SlotCharacters(kind section.Kind) ([]slot.Character, error) {
	if kind == section.Competition {
		return nil, fmt.Errorf("%w: %s has no save slots", ErrIndexOutOfRange, kind)
	}

	l := section.LayoutOf(kind)
	characters := make([]slot.Character, 0, l.Slots)
	for i := range l.Slots {
		var (
			isNew     bool
			character slot.Character
		)

		switch kind {
		case section.ShortForm:
			s, err := img.ShortSlot(i)
			if err != nil {
				return nil, err
			}
			isNew, character = s.IsNew, s.Character
		default:
			s, err := img.LongSlot(i)
			if err != nil {
				return nil, err
			}
			isNew, character = s.IsNew, s.Character
		}

		if isNew {
			character = slot.Nobody
		}
		characters = append(characters, character)
	}
	return characters, nil
}
