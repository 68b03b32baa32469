package format

import "golang.org/x/text/language"

// DecodeLanguage unpacks the 16-bit language field of an mdhd box into a
// 3-letter ISO-639-2/T code. The value holds three 5-bit groups (bits 14-10,
// 9-5 and 4-0; bit 15 is padding), each an offset from 0x60 ('a'-1).
func DecodeLanguage(b [2]byte) string {
	v := uint16(b[0])<<8 | uint16(b[1])
	return string([]byte{
		byte(v>>10&0x1F) + 0x60,
		byte(v>>5&0x1F) + 0x60,
		byte(v&0x1F) + 0x60,
	})
}

// NormalizeLanguage resolves a decoded 3-letter code to its canonical base
// language tag. Returns false for codes no language registry knows.
func NormalizeLanguage(code string) (language.Base, bool) {
	base, err := language.ParseBase(code)
	if err != nil {
		return language.Base{}, false
	}
	return base, true
}
