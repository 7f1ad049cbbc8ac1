package syntax

// selectorList parses: selector (',' selector)*
func (p *Parser) selectorList() (*SelectorList, error) {
	l := &SelectorList{}
	l.pos = p.pos()

	for {
		sel, err := p.selector()
		if err != nil {
			return nil, err
		}
		l.Selectors = append(l.Selectors, sel)

		if _, err := p.skip(); err != nil {
			return nil, err
		}
		ok, err := p.got(_Comma)
		if err != nil {
			return nil, err
		}
		if !ok {
			return l, nil
		}
		if _, err := p.skip(); err != nil {
			return nil, err
		}
	}
}

// selector parses: simple_selector (combinator selector)?
//
// Whitespace after a simple selector acts as the descendant combinator when
// no explicit > or + follows and the next token can start a selector.
func (p *Parser) selector() (*Selector, error) {
	sel := &Selector{}
	sel.pos = p.pos()

	simple, ws, err := p.simpleSelector()
	if err != nil {
		return nil, err
	}
	sel.Simple = simple

	skipped, err := p.skip()
	if err != nil {
		return nil, err
	}
	ws = ws || skipped

	switch p.tok() {
	case _Gtr, _Add:
		sel.Combinator = Child
		if p.tok() == _Add {
			sel.Combinator = Adjacent
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.skip(); err != nil {
			return nil, err
		}
	default:
		if !ws || !startsSelector(p.tok()) {
			return sel, nil
		}
		sel.Combinator = Descendant
	}

	tracer().Debugf("%s: %s combinator", p.pos(), sel.Combinator)
	if sel.Next, err = p.selector(); err != nil {
		return nil, err
	}
	return sel, nil
}

// startsSelector reports whether a token of kind k can begin a selector.
func startsSelector(k Kind) bool {
	switch k {
	case _Ident, _Mul, _Dot, _Hash, _Colon, _Lbrack:
		return true
	}
	return false
}

// simpleSelector parses: element_name? modifier*
//
// It also reports whether whitespace preceded the token that ended the
// modifier loop. Whitespace before ., # or [ does not end the loop, but
// whitespace before : does: "a :hover" starts a new selector, while
// "a:hover" attaches the pseudo-class to a.
func (p *Parser) simpleSelector() (*SimpleSelector, bool, error) {
	ss := &SimpleSelector{}
	ss.pos = p.pos()

	switch p.tok() {
	case _Ident:
		n, err := p.name()
		if err != nil {
			return nil, false, err
		}
		ss.Element = n
	case _Mul:
		n := &Name{Value: "*"}
		n.pos = p.pos()
		if err := p.next(); err != nil {
			return nil, false, err
		}
		ss.Element = n
	}

	for {
		ws, err := p.skip()
		if err != nil {
			return nil, false, err
		}

		var m Modifier
		switch p.tok() {
		case _Dot:
			m, err = p.classSelector()
		case _Hash:
			m, err = p.idSelector()
		case _Colon:
			if ws {
				return p.checkSimple(ss, ws)
			}
			m, err = p.pseudoSelector()
		case _Lbrack:
			m, err = p.attrSelector()
		default:
			return p.checkSimple(ss, ws)
		}
		if err != nil {
			return nil, false, err
		}
		ss.Modifiers = append(ss.Modifiers, m)
	}
}

// checkSimple rejects a simple selector with neither element nor modifiers.
func (p *Parser) checkSimple(ss *SimpleSelector, ws bool) (*SimpleSelector, bool, error) {
	if ss.Element == nil && len(ss.Modifiers) == 0 {
		return nil, false, p.s.unexpected(_Ident)
	}
	return ss, ws, nil
}

// classSelector parses: '.' IDENT
func (p *Parser) classSelector() (*ClassSelector, error) {
	c := &ClassSelector{}
	c.pos = p.pos()
	if err := p.next(); err != nil {
		return nil, err
	}
	var err error
	if c.Name, err = p.name(); err != nil {
		return nil, err
	}
	return c, nil
}

// idSelector parses: '#' IDENT
func (p *Parser) idSelector() (*IDSelector, error) {
	s := &IDSelector{}
	s.pos = p.pos()
	if err := p.next(); err != nil {
		return nil, err
	}
	var err error
	if s.Name, err = p.name(); err != nil {
		return nil, err
	}
	return s, nil
}

// pseudoSelector parses: ':' IDENT
func (p *Parser) pseudoSelector() (*PseudoSelector, error) {
	s := &PseudoSelector{}
	s.pos = p.pos()
	if err := p.next(); err != nil {
		return nil, err
	}
	var err error
	if s.Name, err = p.name(); err != nil {
		return nil, err
	}
	return s, nil
}

// attrSelector parses: '[' IDENT (attr_op (IDENT|STRING))? ']'
// Whitespace is allowed around the parts inside the brackets. The bracket
// counts as missing only if the block, a declaration end or EOF follows;
// any other stray token is unexpected.
func (p *Parser) attrSelector() (*AttrSelector, error) {
	a := &AttrSelector{Op: _EOF}
	a.pos = p.pos()

	if err := p.next(); err != nil {
		return nil, err
	}
	if _, err := p.skip(); err != nil {
		return nil, err
	}
	var err error
	if a.Name, err = p.name(); err != nil {
		return nil, err
	}
	if _, err := p.skip(); err != nil {
		return nil, err
	}

	if p.tok().IsAttrOp() {
		a.Op = p.tok()
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.skip(); err != nil {
			return nil, err
		}
		switch p.tok() {
		case _Ident:
			a.Value, err = p.name()
		case _String:
			a.Value, err = p.basicLit(StringLit)
		default:
			err = p.s.unexpected(_Ident)
		}
		if err != nil {
			return nil, err
		}
		if _, err := p.skip(); err != nil {
			return nil, err
		}
	}

	switch p.tok() {
	case _Rbrack:
		if err := p.next(); err != nil {
			return nil, err
		}
		return a, nil
	case _EOF, _Lbrace, _Rbrace, _Semi:
		return nil, &Error{
			Kind:     MissingClosingBracket,
			Pos:      p.s.PrevEnd(),
			Expected: _Rbrack,
			Actual:   p.tok(),
		}
	}
	return nil, p.s.unexpected(_Rbrack)
}
