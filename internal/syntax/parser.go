package syntax

// Parser performs syntax analysis on GCSS source.
//
// The grammar needs one token of lookahead plus the knowledge whether
// whitespace preceded the current token, so there is no backtracking.
// The first error aborts the parse; no partial tree is returned.
type Parser struct {
	s *Stream
}

// NewParser creates a new Parser for the given source buffer.
func NewParser(filename string, src []byte) (*Parser, error) {
	s, err := NewStream(filename, src)
	if err != nil {
		return nil, err
	}
	return &Parser{s: s}, nil
}

// ----------------------------------------------------------------------------
// Entry points

// Parse parses a complete source buffer into a Stylesheet.
func Parse(filename string, src []byte) (*Stylesheet, error) {
	p, err := NewParser(filename, src)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// ParseRuleset parses a buffer holding exactly one ruleset.
func ParseRuleset(filename string, src []byte) (*Ruleset, error) {
	return parseAll(filename, src, (*Parser).ruleset)
}

// ParseSelectorList parses a buffer holding exactly one selector list.
func ParseSelectorList(filename string, src []byte) (*SelectorList, error) {
	return parseAll(filename, src, (*Parser).selectorList)
}

// ParseDeclarationList parses a buffer holding exactly one { ... } block.
func ParseDeclarationList(filename string, src []byte) (*DeclList, error) {
	return parseAll(filename, src, (*Parser).declList)
}

// ParseExpr parses a buffer holding exactly one declaration value.
func ParseExpr(filename string, src []byte) (Expr, error) {
	return parseAll(filename, src, (*Parser).expr)
}

// parseAll runs production on src, allowing surrounding whitespace,
// and requires that it consumes the whole buffer.
func parseAll[T any](filename string, src []byte, production func(*Parser) (T, error)) (T, error) {
	var zero T
	p, err := NewParser(filename, src)
	if err != nil {
		return zero, err
	}
	if _, err := p.skip(); err != nil {
		return zero, err
	}
	n, err := production(p)
	if err != nil {
		return zero, err
	}
	if _, err := p.skip(); err != nil {
		return zero, err
	}
	if _, err := p.s.Expect(_EOF); err != nil {
		return zero, err
	}
	return n, nil
}

// Parse parses the rulesets of the source buffer up to EOF.
func (p *Parser) Parse() (*Stylesheet, error) {
	sheet := &Stylesheet{}
	sheet.pos = p.s.Current().Pos

	if _, err := p.skip(); err != nil {
		return nil, err
	}
	for p.tok() != _EOF {
		r, err := p.ruleset()
		if err != nil {
			tracer().Debugf("parse aborted: %v", err)
			return nil, err
		}
		sheet.Rules = append(sheet.Rules, r)
		if _, err := p.skip(); err != nil {
			return nil, err
		}
	}

	tracer().Debugf("parsed %d rulesets", len(sheet.Rules))
	return sheet, nil
}

// ----------------------------------------------------------------------------
// Token navigation

// tok returns the kind of the current token.
func (p *Parser) tok() Kind {
	return p.s.Current().Kind
}

// pos returns the position of the current token.
func (p *Parser) pos() Pos {
	return p.s.Current().Pos
}

// next consumes the current token.
func (p *Parser) next() error {
	return p.s.Advance()
}

// got consumes the current token if it has kind k.
func (p *Parser) got(k Kind) (bool, error) {
	return p.s.Got(k)
}

// want consumes the current token, which must have kind k.
func (p *Parser) want(k Kind) error {
	_, err := p.s.Expect(k)
	return err
}

// skip consumes whitespace and reports whether there was any.
func (p *Parser) skip() (bool, error) {
	return p.s.SkipWhitespace()
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() (*Name, error) {
	tok, err := p.s.Expect(_Ident)
	if err != nil {
		return nil, err
	}
	n := &Name{Value: tok.Text}
	n.pos = tok.Pos
	return n, nil
}

// ----------------------------------------------------------------------------
// Rulesets

// ruleset parses: selector_list declaration_list
func (p *Parser) ruleset() (*Ruleset, error) {
	r := &Ruleset{}
	r.pos = p.pos()
	tracer().Debugf("%s: ruleset", r.pos)

	var err error
	if r.Selectors, err = p.selectorList(); err != nil {
		return nil, err
	}
	if _, err = p.skip(); err != nil {
		return nil, err
	}
	if r.Decls, err = p.declList(); err != nil {
		return nil, err
	}
	return r, nil
}
