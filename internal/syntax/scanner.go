package syntax

// Lex scans the single token that starts at byte offset offs of buf and
// returns its kind together with the offset immediately following it.
// At the end of buf it returns EOF with end == offs.
//
// Classification order, first match wins: whitespace run, quoted string,
// identifier, number, longest punctuation match, unknown character.
// The only failure is a string literal missing its closing quote; the
// returned error then carries the offset of the opening quote.
func Lex(buf []byte, offs int) (Kind, int, error) {
	if offs >= len(buf) {
		return _EOF, offs, nil
	}

	switch b := buf[offs]; {
	case isSpace(b):
		end := offs + 1
		for end < len(buf) && isSpace(buf[end]) {
			end++
		}
		return _Whitespace, end, nil

	case isQuote(b):
		for end := offs + 1; end < len(buf); end++ {
			if buf[end] == b {
				return _String, end + 1, nil
			}
		}
		return _String, len(buf), &Error{
			Kind:   UnterminatedString,
			Pos:    NewPos("", offs, 0, 0),
			Actual: _String,
		}

	case isLetter(b):
		end := offs + 1
		for end < len(buf) && isIdentChar(buf[end]) {
			end++
		}
		return _Ident, end, nil

	case isDigit(b):
		end := offs + 1
		for end < len(buf) && isDigit(buf[end]) {
			end++
		}
		return _Number, end, nil
	}

	if kind, n, ok := lookupPunct(buf[offs:]); ok {
		return kind, offs + n, nil
	}
	return _Unknown, offs + runeWidth(buf[offs:]), nil
}

// Scanner turns a source buffer into a lazy, single-pass token sequence.
type Scanner struct {
	source // embedded source buffer and cursor

	tok Token // most recently produced token
	err error // sticky lexing error
}

// NewScanner creates a new Scanner for the given source buffer.
func NewScanner(filename string, src []byte) *Scanner {
	return &Scanner{source: newSource(filename, src)}
}

// Next scans and returns the next token. Each call consumes at least one
// byte, except at end of input, where every call returns the EOF token.
// Once a lexing error occurred, Next keeps returning it.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return s.tok, s.err
	}

	start := s.pos()
	kind, end, err := Lex(s.buf, s.offs)
	if err != nil {
		lerr := err.(*Error)
		lerr.Pos = start
		s.err = lerr
		s.tok = Token{Kind: kind, Text: string(s.buf[s.offs:end]), Pos: start}
		tracer().Debugf("%s: %s", start, lerr.Kind)
		return s.tok, s.err
	}

	s.tok = Token{Kind: kind, Text: string(s.buf[s.offs:end]), Pos: start}
	s.skipTo(end)
	return s.tok, nil
}

// Token returns the most recently scanned token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Tokenize scans src completely and returns every token, including the
// trailing EOF token. Concatenating the token texts yields src.
func Tokenize(filename string, src []byte) ([]Token, error) {
	s := NewScanner(filename, src)
	var toks []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == _EOF {
			return toks, nil
		}
	}
}
