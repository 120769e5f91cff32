package service

import "unicode/utf8"

// encodeASCII encodes s as single-byte ASCII.
// Every rune above 0x7F and every invalid UTF-8 byte is replaced with '?'.
func encodeASCII(s string) []byte {
	out := make([]byte, 0, len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r >= utf8.RuneSelf {
			out = append(out, '?')
		} else {
			out = append(out, byte(r))
		}
		s = s[size:]
	}
	return out
}
