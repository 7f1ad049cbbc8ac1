package syntax

// declList parses: '{' declaration* '}'
func (p *Parser) declList() (*DeclList, error) {
	l := &DeclList{}
	l.pos = p.pos()

	if err := p.want(_Lbrace); err != nil {
		return nil, err
	}
	for {
		if _, err := p.skip(); err != nil {
			return nil, err
		}
		if p.tok() == _Rbrace || p.tok() == _EOF {
			break
		}
		d, err := p.decl()
		if err != nil {
			return nil, err
		}
		l.Decls = append(l.Decls, d)
	}

	l.Rbrace = p.pos()
	if err := p.want(_Rbrace); err != nil {
		return nil, err
	}
	return l, nil
}

// decl parses: IDENT ':' expression '!important'? ';'?
func (p *Parser) decl() (*Decl, error) {
	d := &Decl{}
	d.pos = p.pos()

	var err error
	if d.Property, err = p.name(); err != nil {
		return nil, err
	}
	tracer().Debugf("%s: declaration %s", d.pos, d.Property.Value)
	if _, err := p.skip(); err != nil {
		return nil, err
	}
	if err := p.want(_Colon); err != nil {
		return nil, err
	}
	if _, err := p.skip(); err != nil {
		return nil, err
	}
	if d.Value, err = p.expr(); err != nil {
		return nil, err
	}

	if d.Important, err = p.got(_Important); err != nil {
		return nil, err
	}
	if d.Important {
		if _, err := p.skip(); err != nil {
			return nil, err
		}
	}
	if _, err := p.got(_Semi); err != nil {
		return nil, err
	}
	return d, nil
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses a declaration value. Trailing whitespace is consumed.
func (p *Parser) expr() (Expr, error) {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Implements precedence climbing; operators of equal precedence
// associate to the left. Nothing is evaluated.
func (p *Parser) binaryExpr(prec int) (Expr, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		if _, err := p.skip(); err != nil {
			return nil, err
		}

		// Check if current token is a binary operator with sufficient precedence
		oprec := p.tok().Precedence()
		if oprec <= prec {
			return x, nil
		}

		// Binary expression position starts at the left operand.
		op := &Operation{Op: p.tok(), X: x}
		op.pos = x.Pos()

		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.skip(); err != nil {
			return nil, err
		}

		// Parse right operand with higher precedence (left associative)
		if op.Y, err = p.binaryExpr(oprec); err != nil {
			return nil, err
		}
		x = op
	}
}

// term parses: IDENT | STRING | NUMBER IDENT? | function_call
func (p *Parser) term() (Expr, error) {
	switch p.tok() {
	case _Ident:
		n, err := p.name()
		if err != nil {
			return nil, err
		}
		if p.tok() == _Lparen {
			return p.callExpr(n)
		}
		return n, nil

	case _String:
		return p.basicLit(StringLit)

	case _Number:
		lit, err := p.basicLit(NumberLit)
		if err != nil {
			return nil, err
		}
		// A unit must follow the digits immediately: 10px, not 10 px.
		if p.tok() == _Ident {
			lit.Unit = p.s.Current().Text
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		return lit, nil
	}
	return nil, p.s.unexpected(_Ident)
}

// basicLit consumes the current token as a literal of the given kind.
func (p *Parser) basicLit(kind LitKind) (*BasicLit, error) {
	tok := p.s.Current()
	lit := &BasicLit{Value: tok.Text, Kind: kind}
	lit.pos = tok.Pos
	if err := p.next(); err != nil {
		return nil, err
	}
	return lit, nil
}

// callExpr parses: IDENT '(' (expression (',' expression)*)? ')'
// The parenthesis counts as missing only before a declaration end, a brace
// or EOF; any other token is unexpected.
func (p *Parser) callExpr(fun *Name) (*CallExpr, error) {
	call := &CallExpr{Fun: fun}
	call.pos = fun.Pos()

	if err := p.want(_Lparen); err != nil {
		return nil, err
	}
	if _, err := p.skip(); err != nil {
		return nil, err
	}

	if p.tok() != _Rparen {
		for {
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)

			ok, err := p.got(_Comma)
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
			if _, err := p.skip(); err != nil {
				return nil, err
			}
		}
	}

	switch p.tok() {
	case _Rparen:
		if err := p.next(); err != nil {
			return nil, err
		}
		return call, nil
	case _EOF, _Lbrace, _Rbrace, _Semi:
		return nil, &Error{
			Kind:     MissingClosingParen,
			Pos:      p.pos(),
			Expected: _Rparen,
			Actual:   p.tok(),
		}
	}
	return nil, p.s.unexpected(_Rparen)
}
