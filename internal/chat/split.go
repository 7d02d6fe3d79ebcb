package chat

import "unicode/utf16"

// MaxMessageLength is the Telegram limit for one text message, in UTF-16
// code units.
const MaxMessageLength = 4096

// Length counts text in UTF-16 code units, the way Telegram measures
// messages. Runes outside the Basic Multilingual Plane, most emoji among
// them, count twice.
func Length(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Split cuts text into chunks of at most limit UTF-16 units. Long text is
// halved near its middle, preferring a line break, then a space, and each
// half is split again until it fits. The chunks concatenate back to text.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}
	if Length(text) <= limit {
		return []string{text}
	}
	runes := []rune(text)
	if len(runes) < 2 {
		return []string{text}
	}
	cut := boundary(runes)
	return append(Split(string(runes[:cut]), limit), Split(string(runes[cut:]), limit)...)
}

// boundary picks the cut position for runes, longer than one rune. The
// separator stays with the first half.
func boundary(runes []rune) int {
	mid := len(runes) / 2
	window := len(runes) / 4
	for _, sep := range []rune{'\n', ' '} {
		for d := 0; d <= window; d++ {
			if i := mid - d; i > 0 && runes[i-1] == sep {
				return i
			}
			if i := mid + d; i < len(runes) && runes[i-1] == sep {
				return i
			}
		}
	}
	return mid
}
