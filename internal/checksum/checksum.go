// Package checksum implements the 16-bit running checksum that guards every save section.
package checksum

// Size is the number of trailing bytes of a section that hold the checksum.
const Size = 2

const feedback = 0x8810

// Compute returns the checksum of a section. The trailing checksum word is not included,
// the remaining bytes are processed as big-endian 16-bit words.
func Compute(section []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(section)-Size; i += 2 {
		sum ^= uint16(section[i])<<8 | uint16(section[i+1])

		carry := sum & 1
		sum >>= 1
		if carry != 0 {
			sum ^= feedback
		}
	}
	return sum
}

// Stored returns the checksum saved in the last two bytes of the section.
func Stored(section []byte) uint16 {
	if len(section) < Size {
		return 0
	}
	n := len(section)
	return uint16(section[n-2])<<8 | uint16(section[n-1])
}

// Valid returns whether the stored checksum matches the section contents.
// A stored value of zero is never valid, it marks a section that was never written.
func Valid(section []byte) bool {
	if len(section) < Size {
		return false
	}
	stored := Stored(section)
	return stored != 0 && stored == Compute(section)
}

// Stamp recomputes the checksum and writes it to the last two bytes of the section.
func Stamp(section []byte) {
	if len(section) < Size {
		return
	}
	sum := Compute(section)
	n := len(section)
	section[n-2] = byte(sum >> 8)
	section[n-1] = byte(sum)
}
