package bytestr

import "bytes"

// Equal reports whether s and other hold identical content. Both sides are
// normalized first; equality means the used lengths match and every byte
// through the terminator matches exactly.
func (s *String) Equal(other *String) bool {
	s.fixLength()
	other.fixLength()
	return s.used == other.used && bytes.Equal(s.data[:s.used], other.data[:other.used])
}

// EqualBytes reports whether the content equals raw. A nil raw is treated as
// an empty buffer: it matches only a String with no content bytes.
func (s *String) EqualBytes(raw []byte) bool {
	s.fixLength()
	if raw == nil {
		return s.used <= 1
	}
	return s.used == len(raw)+1 && bytes.Equal(s.data[:s.used-1], raw)
}

// EqualString reports whether the content equals str.
func (s *String) EqualString(str string) bool {
	s.fixLength()
	return s.used == len(str)+1 && string(s.data[:s.used-1]) == str
}
