package syntax

// Stream is a token cursor over a Scanner with one token of lookahead.
// The parser reads the current token, and advances past it once it is
// consumed. Whitespace tokens are kept in the stream; SkipWhitespace
// steps over them and reports whether there were any.
type Stream struct {
	scanner *Scanner

	tok  Token // current token, not yet consumed
	prev Token // last consumed token other than whitespace
}

// NewStream creates a Stream over src and primes it with the first token.
func NewStream(filename string, src []byte) (*Stream, error) {
	s := &Stream{scanner: NewScanner(filename, src)}
	s.prev = Token{Kind: _EOF, Pos: NewPos(filename, 0, 1, 1)}
	tok, err := s.scanner.Next()
	s.tok = tok
	return s, err
}

// Current returns the current token without consuming it.
func (s *Stream) Current() Token {
	return s.tok
}

// Advance consumes the current token and scans the next one.
func (s *Stream) Advance() error {
	if s.tok.Kind != _Whitespace {
		s.prev = s.tok
	}
	tok, err := s.scanner.Next()
	s.tok = tok
	return err
}

// Expect consumes and returns the current token if it has the given kind.
// Otherwise it fails without consuming anything.
func (s *Stream) Expect(kind Kind) (Token, error) {
	tok := s.tok
	if tok.Kind != kind {
		return tok, s.unexpected(kind)
	}
	return tok, s.Advance()
}

// Got consumes the current token and reports true if it has the given kind.
func (s *Stream) Got(kind Kind) (bool, error) {
	if s.tok.Kind != kind {
		return false, nil
	}
	return true, s.Advance()
}

// SkipWhitespace advances past any whitespace tokens and reports whether
// at least one was skipped.
func (s *Stream) SkipWhitespace() (bool, error) {
	skipped := false
	for s.tok.Kind == _Whitespace {
		skipped = true
		if err := s.Advance(); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}

// PrevEnd returns the position immediately after the last consumed token
// that was not whitespace.
func (s *Stream) PrevEnd() Pos {
	p := s.prev.Pos
	line, col := p.line, p.col
	for i := 0; i < len(s.prev.Text); i++ {
		if s.prev.Text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return NewPos(p.filename, s.prev.End(), line, col)
}

// unexpected builds the error for a current token that does not have the
// wanted kind. Unknown characters are reported as such.
func (s *Stream) unexpected(want Kind) error {
	if s.tok.Kind == _Unknown {
		return &Error{
			Kind:     UnknownCharacter,
			Pos:      s.tok.Pos,
			Expected: want,
			Actual:   _Unknown,
			Char:     s.tok.Text,
		}
	}
	return &Error{
		Kind:     UnexpectedToken,
		Pos:      s.tok.Pos,
		Expected: want,
		Actual:   s.tok.Kind,
	}
}
