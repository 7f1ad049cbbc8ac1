package syntax

import "unicode/utf8"

// source is an in-memory source buffer with a forward-only read cursor
// and line/column tracking.
type source struct {
	// Input
	buf []byte // source buffer (entire file read into memory)

	// Position tracking
	filename string // source file name
	offs     int    // current byte offset in buf
	line     uint32 // current line number (1-based)
	col      uint32 // current column number (1-based, byte offset)
}

// newSource creates a source positioned at the first byte of buf.
func newSource(filename string, buf []byte) source {
	return source{
		buf:      buf,
		filename: filename,
		line:     1,
		col:      1,
	}
}

// pos returns the position of the read cursor.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.offs, s.line, s.col)
}

// posAt returns the position of byte offset offs, which must not lie
// behind the read cursor.
func (s *source) posAt(offs int) Pos {
	line, col := s.line, s.col
	for _, b := range s.buf[s.offs:offs] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return NewPos(s.filename, offs, line, col)
}

// skipTo moves the read cursor forward to offs, updating the position.
func (s *source) skipTo(offs int) {
	p := s.posAt(offs)
	s.offs, s.line, s.col = p.offset, p.line, p.col
}

// atEOF reports whether the read cursor reached the end of the buffer.
func (s *source) atEOF() bool {
	return s.offs >= len(s.buf)
}

// Character classification helpers. Classification is byte-based and
// ASCII-only; non-ASCII bytes end up in unknown tokens.

// isSpace reports whether b is one of space, tab, newline, vertical tab,
// form feed, or carriage return.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isLetter reports whether b is an ASCII letter (a-z, A-Z).
func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

// isDigit reports whether b is a decimal digit (0-9).
func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isIdentChar reports whether b may continue an identifier.
// Hyphens are allowed so that font-size and data-x are single identifiers.
func isIdentChar(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '-'
}

// isQuote reports whether b opens a string literal.
func isQuote(b byte) bool {
	return b == '"' || b == '\''
}

// runeWidth returns the byte width of the character starting buf, at least 1.
func runeWidth(buf []byte) int {
	_, width := utf8.DecodeRune(buf)
	if width < 1 {
		return 1
	}
	return width
}
