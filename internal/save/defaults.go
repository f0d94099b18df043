package save

import (
	"github.com/jcfieldsdev/sonic3-save-editor/internal/checksum"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/platform"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
)

// New returns an image for the given platform in which every slot is unused and
// every competition ranking is empty.
func New(p platform.Platform, opts platform.Options) *SaveImage {
	img := &SaveImage{
		Platform: p,
		Options:  opts,
		file:     make([]byte, section.CanonicalSize),
	}
	for _, kind := range section.Kinds {
		img.sections[kind] = blankSection(kind)
	}
	img.Update(true, true)
	return img
}

// FillDefaults replaces empty sections with blank ones so that every accessor works. It
// returns which campaigns held data before, callers use this to default the write
// options to the campaigns present in the file.
func (img *SaveImage) FillDefaults() (hadShort, hadLong bool) {
	hadShort = img.HasSection(section.ShortForm)
	hadLong = img.HasSection(section.LongForm)

	for _, kind := range section.Kinds {
		if img.sections[kind] == nil {
			img.sections[kind] = blankSection(kind)
		}
	}
	return hadShort, hadLong
}

func blankSection(kind section.Kind) []byte {
	data := section.Blank(kind)
	checksum.Stamp(data)
	return data
}
