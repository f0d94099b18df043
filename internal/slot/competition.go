package slot

import (
	"fmt"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
)

// Ranking is one of the three best times of a competition stage.
type Ranking struct {
	IsNew     bool
	Minutes   uint8
	Seconds   uint8
	Ticks     uint8
	Character Character
}

// Stage holds the rankings of a competition stage, best time first.
type Stage [section.RankingsPerStage]Ranking

// StageNames lists the competition stages in storage order.
var StageNames = [section.Stages]string{
	"Azure Lake",
	"Balloon Park",
	"Chrome Gadget",
	"Desert Palace",
	"Endless Mine",
}

func checkStage(data []byte, stage int) error {
	if stage < 0 || stage >= section.Stages {
		return fmt.Errorf("competition stage %d out of range 0-%d", stage, section.Stages-1)
	}
	if l := section.LayoutOf(section.Competition).Length; len(data) != l {
		return fmt.Errorf("competition section has %d bytes, expected %d", len(data), l)
	}
	return nil
}

// ReadStage decodes the rankings of a competition stage. Each stage block holds three
// rows of time bytes followed by one character byte per row.
func ReadStage(data []byte, stage int) (Stage, error) {
	var st Stage
	if err := checkStage(data, stage); err != nil {
		return st, err
	}

	start := stage * section.StageLength
	characters := start + section.RowLength*section.RankingsPerStage

	for i := range st {
		b := data[start+i*section.RowLength:]
		if b[0] == section.NewMarker {
			st[i] = Ranking{IsNew: true}
			continue
		}
		st[i] = Ranking{
			Minutes:   b[1],
			Seconds:   b[2],
			Ticks:     b[3],
			Character: Character(data[characters+i]),
		}
	}
	return st, nil
}

// WriteStage encodes the rankings of a competition stage. An empty ranking stores its
// row index as character.
func WriteStage(data []byte, stage int, st Stage) error {
	if err := checkStage(data, stage); err != nil {
		return err
	}

	start := stage * section.StageLength
	characters := start + section.RowLength*section.RankingsPerStage

	for i, r := range st {
		b := data[start+i*section.RowLength : start+(i+1)*section.RowLength]
		clearBytes(b)

		if r.IsNew {
			b[0] = section.NewMarker
			data[characters+i] = byte(i)
			continue
		}

		b[1] = r.Minutes
		b[2] = r.Seconds
		b[3] = r.Ticks
		data[characters+i] = byte(r.Character)
	}
	return nil
}

// String formats a ranking time as the game displays it.
func (r Ranking) String() string {
	if r.IsNew {
		return "-'--\"--"
	}
	return fmt.Sprintf("%d'%02d\"%02d %s", r.Minutes, r.Seconds, r.Ticks, r.Character)
}
