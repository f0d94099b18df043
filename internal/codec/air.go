package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/detector"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/section"
)

// AIRExtraName is the record that holds the AIR specific slot data.
const AIRExtraName = "SRAM_SaveslotsExt"

// Start of the first record, after the identifier and the record count.
var airStart = len(detector.AIRIdentifier) + 4

// air is the Sonic 3 A.I.R. persistent data container, a list of named records. Records
// store sections without their marker tag and checksum.
type air struct{}

func (air) Decode(raw []byte) (Decoded, error) {
	if !bytes.HasPrefix(raw, detector.AIRIdentifier) {
		return Decoded{}, fmt.Errorf("%w: missing identifier", ErrMalformedContainer)
	}
	if err := checkSize(raw, airStart); err != nil {
		return Decoded{}, err
	}

	records, err := readAIRRecords(raw[airStart:])
	if err != nil {
		return Decoded{}, err
	}

	var sections [section.Count][]byte
	for _, kind := range section.Kinds {
		l := section.LayoutOf(kind)
		if l.AIRName == "" {
			continue
		}
		payload, ok := records[l.AIRName]
		if !ok || len(payload) == 0 {
			continue
		}
		if len(payload) != l.Length-section.TrailerSize {
			return Decoded{}, fmt.Errorf("%w: record '%s' has %d bytes, expected %d",
				ErrMalformedContainer, l.AIRName, len(payload), l.Length-section.TrailerSize)
		}

		data := make([]byte, 0, l.Length)
		data = append(data, payload...)
		data = append(data, l.Tag[0], l.Tag[1], 0, 0)
		sections[kind] = data
	}

	return Decoded{
		File:  assemble(sections),
		Extra: records[AIRExtraName],
	}, nil
}

func readAIRRecords(buf []byte) (map[string][]byte, error) {
	records := map[string][]byte{}
	pos := 0

	readLength := func() (int, error) {
		if pos+4 > len(buf) {
			return 0, fmt.Errorf("%w: record length at %d runs past the end", ErrMalformedContainer, airStart+pos)
		}
		n := int(binary.LittleEndian.Uint32(buf[pos:]))
		pos += 4
		if n > len(buf)-pos {
			return 0, fmt.Errorf("%w: record at %d runs past the end", ErrMalformedContainer, airStart+pos)
		}
		return n, nil
	}

	for pos < len(buf) {
		nameLength, err := readLength()
		if err != nil {
			return nil, err
		}
		if nameLength == 0 {
			break
		}
		name := string(buf[pos : pos+nameLength])
		pos += nameLength

		size, err := readLength()
		if err != nil {
			return nil, err
		}
		records[name] = bytes.Clone(buf[pos : pos+size])
		pos += size
	}

	return records, nil
}

func (air) Encode(img Image) []byte {
	type record struct {
		name string
		data []byte
	}
	var records []record

	for _, kind := range []section.Kind{section.LongForm, section.Competition} {
		data := img.Sections[kind]
		if len(data) <= section.TrailerSize {
			continue
		}
		records = append(records, record{
			name: section.LayoutOf(kind).AIRName,
			data: data[:len(data)-section.TrailerSize],
		})
	}
	if len(img.Extra) > 0 {
		records = append(records, record{name: AIRExtraName, data: img.Extra})
	}

	var buf bytes.Buffer
	buf.Write(detector.AIRIdentifier)
	buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(records))))
	for _, r := range records {
		buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(r.name))))
		buf.WriteString(r.name)
		buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(r.data))))
		buf.Write(r.data)
	}
	return buf.Bytes()
}
