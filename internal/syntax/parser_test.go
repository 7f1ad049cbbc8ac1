package syntax

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// Test helpers

func parseSheet(t *testing.T, src string) *Stylesheet {
	t.Helper()
	sheet, err := Parse("test.gcss", []byte(src))
	require.NoError(t, err)
	require.NotNil(t, sheet)
	return sheet
}

func parseError(t *testing.T, src string) *Error {
	t.Helper()
	sheet, err := Parse("test.gcss", []byte(src))
	require.Error(t, err)
	assert.Nil(t, sheet, "no partial tree on error")
	var serr *Error
	require.True(t, errors.As(err, &serr), "got %T: %v", err, err)
	return serr
}

func parseSelectors(t *testing.T, src string) []*Selector {
	t.Helper()
	l, err := ParseSelectorList("test.gcss", []byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, l.Selectors)
	return l.Selectors
}

func parseValue(t *testing.T, src string) Expr {
	t.Helper()
	x, err := ParseExpr("test.gcss", []byte(src))
	require.NoError(t, err)
	return x
}

// exprString renders a value with explicit parentheses around every
// operation, which makes grouping easy to compare.
func exprString(x Expr) string {
	switch x := x.(type) {
	case *Name:
		return x.Value
	case *BasicLit:
		return x.Value + x.Unit
	case *Operation:
		return "(" + exprString(x.X) + " " + x.Op.String() + " " + exprString(x.Y) + ")"
	case *CallExpr:
		s := x.Fun.Value + "("
		for i, a := range x.Args {
			if i > 0 {
				s += ", "
			}
			s += exprString(a)
		}
		return s + ")"
	}
	return "?"
}

// modifierStrings renders the modifiers of a simple selector in order.
func modifierStrings(ss *SimpleSelector) []string {
	var out []string
	for _, m := range ss.Modifiers {
		switch m := m.(type) {
		case *ClassSelector:
			out = append(out, "."+m.Name.Value)
		case *IDSelector:
			out = append(out, "#"+m.Name.Value)
		case *PseudoSelector:
			out = append(out, ":"+m.Name.Value)
		case *AttrSelector:
			s := "[" + m.Name.Value
			if m.HasOp() {
				s += m.Op.String() + exprString(m.Value)
			}
			out = append(out, s+"]")
		}
	}
	return out
}

// ----------------------------------------------------------------------------
// Rulesets

func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "  \n\t "} {
		sheet := parseSheet(t, src)
		assert.Empty(t, sheet.Rules)
	}
}

func TestParseRulesets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gcss.syntax")
	defer teardown()

	src := `
h1, h2 { font-size: 20; }

.card > p {
	color: red;
	margin: 4px
}
`
	sheet := parseSheet(t, src)
	require.Len(t, sheet.Rules, 2)

	r := sheet.Rules[0]
	assert.Len(t, r.Selectors.Selectors, 2)
	require.Len(t, r.Decls.Decls, 1)
	assert.Equal(t, "font-size", r.Decls.Decls[0].Property.Value)

	r = sheet.Rules[1]
	assert.Equal(t, "test.gcss:4:1", r.Pos().String())
	require.Len(t, r.Decls.Decls, 2)
	assert.Equal(t, "color", r.Decls.Decls[0].Property.Value)
	assert.Equal(t, "margin", r.Decls.Decls[1].Property.Value)
	assert.Equal(t, "4px", exprString(r.Decls.Decls[1].Value))
	assert.Equal(t, "test.gcss:7:1", r.Decls.Rbrace.String())
}

func TestParseRuleset(t *testing.T) {
	r, err := ParseRuleset("test.gcss", []byte("  a { b: c }  "))
	require.NoError(t, err)
	assert.Len(t, r.Selectors.Selectors, 1)
	assert.Len(t, r.Decls.Decls, 1)

	_, err = ParseRuleset("test.gcss", []byte("a { b: c } d"))
	require.Error(t, err)
	serr := err.(*Error)
	assert.Equal(t, UnexpectedToken, serr.Kind)
	assert.Equal(t, _EOF, serr.Expected)
	assert.Equal(t, _Ident, serr.Actual)
}

// ----------------------------------------------------------------------------
// Selectors

func TestParseChildCombinator(t *testing.T) {
	sel := parseSelectors(t, "ul > li")[0]
	assert.Equal(t, "ul", sel.Simple.Element.Value)
	assert.Equal(t, Child, sel.Combinator)
	require.NotNil(t, sel.Next)
	assert.Equal(t, "li", sel.Next.Simple.Element.Value)
	assert.Equal(t, NoCombinator, sel.Next.Combinator)
	assert.Nil(t, sel.Next.Next)
}

func TestParseCombinators(t *testing.T) {
	tests := []struct {
		src   string
		combs []Combinator
		elems []string
	}{
		{"div p", []Combinator{Descendant}, []string{"div", "p"}},
		{"div\n\tp", []Combinator{Descendant}, []string{"div", "p"}},
		{"ul>li", []Combinator{Child}, []string{"ul", "li"}},
		{"h1 + p", []Combinator{Adjacent}, []string{"h1", "p"}},
		{"h1+p", []Combinator{Adjacent}, []string{"h1", "p"}},
		{"a b > c + d", []Combinator{Descendant, Child, Adjacent}, []string{"a", "b", "c", "d"}},
		{"* > *", []Combinator{Child}, []string{"*", "*"}},
		{"div .x", nil, []string{"div"}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			sel := parseSelectors(t, tt.src)[0]
			var combs []Combinator
			var elems []string
			for s := sel; s != nil; s = s.Next {
				if s.Simple.Element != nil {
					elems = append(elems, s.Simple.Element.Value)
				}
				if s.Next != nil {
					combs = append(combs, s.Combinator)
				} else {
					assert.Equal(t, NoCombinator, s.Combinator)
				}
			}
			assert.Equal(t, tt.combs, combs)
			assert.Equal(t, tt.elems, elems)
		})
	}
}

func TestParsePseudoClassWhitespace(t *testing.T) {
	// a:hover attaches the pseudo-class to a
	sel := parseSelectors(t, "a:hover")[0]
	assert.Equal(t, "a", sel.Simple.Element.Value)
	assert.Equal(t, []string{":hover"}, modifierStrings(sel.Simple))
	assert.Nil(t, sel.Next)

	// a :hover starts a new, descendant selector
	sel = parseSelectors(t, "a :hover")[0]
	assert.Equal(t, "a", sel.Simple.Element.Value)
	assert.Empty(t, sel.Simple.Modifiers)
	assert.Equal(t, Descendant, sel.Combinator)
	require.NotNil(t, sel.Next)
	assert.Nil(t, sel.Next.Simple.Element)
	assert.Equal(t, []string{":hover"}, modifierStrings(sel.Next.Simple))
}

// Whitespace before ., # and [ keeps the modifier on the same compound
// selector; only : and element names start a new one.
func TestParseSpacedModifiers(t *testing.T) {
	sel := parseSelectors(t, "a .b #c [d] :e")[0]
	assert.Equal(t, "a", sel.Simple.Element.Value)
	assert.Equal(t, []string{".b", "#c", "[d]"}, modifierStrings(sel.Simple))
	assert.Equal(t, Descendant, sel.Combinator)
	require.NotNil(t, sel.Next)
	assert.Equal(t, []string{":e"}, modifierStrings(sel.Next.Simple))
}

func TestParseModifierOrder(t *testing.T) {
	sel := parseSelectors(t, `div.card#main:hover[data-x="y"].wide`)[0]
	assert.Equal(t, "div", sel.Simple.Element.Value)
	assert.Equal(t,
		[]string{".card", "#main", ":hover", `[data-x="y"]`, ".wide"},
		modifierStrings(sel.Simple))
}

func TestParseModifiersWithoutElement(t *testing.T) {
	sel := parseSelectors(t, ".a.b")[0]
	assert.Nil(t, sel.Simple.Element)
	assert.Equal(t, []string{".a", ".b"}, modifierStrings(sel.Simple))

	sel = parseSelectors(t, "#id")[0]
	assert.Equal(t, []string{"#id"}, modifierStrings(sel.Simple))

	sel = parseSelectors(t, "*.x")[0]
	assert.Equal(t, "*", sel.Simple.Element.Value)
	assert.Equal(t, []string{".x"}, modifierStrings(sel.Simple))
}

func TestParseAttrSelector(t *testing.T) {
	tests := []struct {
		src   string
		name  string
		op    Kind
		value string
		kind  interface{}
	}{
		{`[disabled]`, "disabled", _EOF, "", nil},
		{`[data-x="y"]`, "data-x", _Assign, `"y"`, &BasicLit{}},
		{`[lang|=en]`, "lang", _DashMatch, "en", &Name{}},
		{`[class~=big]`, "class", _Includes, "big", &Name{}},
		{`[href^='http']`, "href", _Prefix, `'http'`, &BasicLit{}},
		{`[href$=".pdf"]`, "href", _Suffix, `".pdf"`, &BasicLit{}},
		{`[title*=foo]`, "title", _Contains, "foo", &Name{}},
		{`[ title = foo ]`, "title", _Assign, "foo", &Name{}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			sel := parseSelectors(t, tt.src)[0]
			require.Len(t, sel.Simple.Modifiers, 1)
			a, ok := sel.Simple.Modifiers[0].(*AttrSelector)
			require.True(t, ok)
			assert.Equal(t, tt.name, a.Name.Value)
			assert.Equal(t, tt.op, a.Op)
			if tt.kind == nil {
				assert.False(t, a.HasOp())
				assert.Nil(t, a.Value)
				return
			}
			assert.IsType(t, tt.kind, a.Value)
			assert.Equal(t, tt.value, exprString(a.Value))
		})
	}
}

func TestParseAttrSelectorStringLit(t *testing.T) {
	sel := parseSelectors(t, `[data-x="y"]`)[0]
	a := sel.Simple.Modifiers[0].(*AttrSelector)
	lit := a.Value.(*BasicLit)
	assert.Equal(t, StringLit, lit.Kind)
	assert.Equal(t, `"y"`, lit.Value)
	assert.Equal(t, 8, lit.Pos().Offset())
}

func TestParseSelectorList(t *testing.T) {
	sels := parseSelectors(t, "h1,h2 , .x, a > b")
	require.Len(t, sels, 4)
	assert.Equal(t, "h1", sels[0].Simple.Element.Value)
	assert.Equal(t, "h2", sels[1].Simple.Element.Value)
	assert.Equal(t, []string{".x"}, modifierStrings(sels[2].Simple))
	assert.Equal(t, Child, sels[3].Combinator)
}

// ----------------------------------------------------------------------------
// Declarations

func TestParseDeclarationList(t *testing.T) {
	l, err := ParseDeclarationList("test.gcss", []byte(`{
		color: red;
		content: "hi" ;
		width: 10px !important;
		height : 3
	}`))
	require.NoError(t, err)
	require.Len(t, l.Decls, 4)

	props := []string{"color", "content", "width", "height"}
	values := []string{"red", `"hi"`, "10px", "3"}
	for i, d := range l.Decls {
		assert.Equal(t, props[i], d.Property.Value)
		assert.Equal(t, values[i], exprString(d.Value))
	}
	assert.False(t, l.Decls[0].Important)
	assert.True(t, l.Decls[2].Important)
}

func TestParseDeclarationsWithoutSemicolons(t *testing.T) {
	l, err := ParseDeclarationList("test.gcss", []byte("{a: 1 b: 2}"))
	require.NoError(t, err)
	require.Len(t, l.Decls, 2)
	assert.Equal(t, "b", l.Decls[1].Property.Value)

	l, err = ParseDeclarationList("test.gcss", []byte("{}"))
	require.NoError(t, err)
	assert.Empty(t, l.Decls)
}

func TestParseExprPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"10 + 2 * 3", "(10 + (2 * 3))"},
		{"10 * 2 + 3", "((10 * 2) + 3)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"1 + 2 * 3 - 4 / 5", "((1 + (2 * 3)) - (4 / 5))"},
		{"a*b+c", "((a * b) + c)"},
		{"10px+2em", "(10px + 2em)"},
		{"gap", "gap"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, exprString(parseValue(t, tt.src)))
		})
	}
}

func TestParseExprTree(t *testing.T) {
	x := parseValue(t, "10 + 2 * 3")
	add, ok := x.(*Operation)
	require.True(t, ok)
	assert.Equal(t, _Add, add.Op)
	assert.Equal(t, "10", add.X.(*BasicLit).Value)
	mul, ok := add.Y.(*Operation)
	require.True(t, ok)
	assert.Equal(t, _Mul, mul.Op)
	assert.Equal(t, "2", mul.X.(*BasicLit).Value)
	assert.Equal(t, "3", mul.Y.(*BasicLit).Value)
	assert.Equal(t, add.Pos(), add.X.Pos(), "operation starts at its left operand")
}

func TestParseCallExpr(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"now()", "now()"},
		{"now( )", "now()"},
		{"rgb(1, 2, 3)", "rgb(1, 2, 3)"},
		{"rgb(1,2,3)", "rgb(1, 2, 3)"},
		{"calc(100 - 2 * gap)", "calc((100 - (2 * gap)))"},
		{"max(a(1), b('x')) * 2", "(max(a(1), b('x')) * 2)"},
		{"url(\"a.png\")", "url(\"a.png\")"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, exprString(parseValue(t, tt.src)))
		})
	}
}

func TestParseNumberUnit(t *testing.T) {
	lit := parseValue(t, "10px").(*BasicLit)
	assert.Equal(t, NumberLit, lit.Kind)
	assert.Equal(t, "10", lit.Value)
	assert.Equal(t, "px", lit.Unit)

	// a unit must follow immediately
	_, err := ParseExpr("test.gcss", []byte("10 px"))
	require.Error(t, err)
	assert.Equal(t, UnexpectedToken, err.(*Error).Kind)
}

// ----------------------------------------------------------------------------
// Errors

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		kind     ErrorKind
		offset   int
		expected Kind
		actual   Kind
	}{
		{"class_without_name", "div.{color:red;}", UnexpectedToken, 4, _Ident, _Lbrace},
		{"id_without_name", "#1 {}", UnexpectedToken, 1, _Ident, _Number},
		{"pseudo_without_name", "a: {}", UnexpectedToken, 2, _Ident, _Whitespace},
		{"no_selector", "{ a: b }", UnexpectedToken, 0, _Ident, _Lbrace},
		{"dangling_combinator", "ul > { }", UnexpectedToken, 5, _Ident, _Lbrace},
		{"dangling_comma", "a, { }", UnexpectedToken, 3, _Ident, _Lbrace},
		{"missing_block", "a b", UnexpectedToken, 3, _Lbrace, _EOF},
		{"missing_colon", "a { color red; }", UnexpectedToken, 10, _Colon, _Ident},
		{"missing_value", "a { color: ; }", UnexpectedToken, 11, _Ident, _Semi},
		{"missing_rbrace", "a { color: red;", UnexpectedToken, 15, _Rbrace, _EOF},
		{"dangling_operator", "a { w: 1 + ; }", UnexpectedToken, 11, _Ident, _Semi},
		{"attr_missing_value", "[x=] {}", UnexpectedToken, 3, _Ident, _Rbrack},
		{"attr_missing_name", "[=x] {}", UnexpectedToken, 1, _Ident, _Assign},
		{"attr_missing_bracket", `a[data-x="y" {}`, MissingClosingBracket, 12, _Rbrack, _Lbrace},
		{"attr_double_equal", "[x==y] {}", UnexpectedToken, 2, _Rbrack, _Eql},
		{"attr_extra_name", "[a b]{}", UnexpectedToken, 3, _Rbrack, _Ident},
		{"attr_missing_bracket_eof", "a[b", MissingClosingBracket, 3, _Rbrack, _EOF},
		{"attr_missing_bracket_semi", "a[b; {}", MissingClosingBracket, 3, _Rbrack, _Semi},
		{"call_missing_paren", "a { width: calc(1, 2; }", MissingClosingParen, 20, _Rparen, _Semi},
		{"call_at_eof", "a { width: f(1", MissingClosingParen, 14, _Rparen, _EOF},
		{"call_at_rbrace", "a { width: f(1 }", MissingClosingParen, 15, _Rparen, _Rbrace},
		{"call_missing_comma", "a { width: f(1 2) }", UnexpectedToken, 15, _Rparen, _Number},
		{"unknown_char", "a { color: red % 2; }", UnknownCharacter, 15, _Ident, _Unknown},
		{"unknown_in_selector", "a ~ b {}", UnknownCharacter, 2, _Lbrace, _Unknown},
		{"unknown_in_attr", "[x ~ y] {}", UnknownCharacter, 3, _Rbrack, _Unknown},
		{"unterminated_string", `a { content: "abc; }`, UnterminatedString, 13, 0, _String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serr := parseError(t, tt.src)
			assert.Equal(t, tt.kind, serr.Kind, "kind: %v", serr)
			assert.Equal(t, tt.offset, serr.Offset(), "offset: %v", serr)
			assert.Equal(t, tt.expected, serr.Expected, "expected: %v", serr)
			assert.Equal(t, tt.actual, serr.Actual, "actual: %v", serr)
		})
	}
}

func TestParseMissingClosingBracketOffset(t *testing.T) {
	_, err := ParseSelectorList("test.gcss", []byte(`[data-x="y"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Kind: MissingClosingBracket}))
	assert.Equal(t, 11, err.(*Error).Offset())
	assert.Equal(t, "test.gcss:1:12: missing closing bracket (offset 11)", err.Error())
}

func TestParseErrorMessage(t *testing.T) {
	serr := parseError(t, "div.{color:red;}")
	assert.Equal(t, "test.gcss:1:5: unexpected {, expected IDENT (offset 4)", serr.Error())
	assert.False(t, errors.Is(serr, &Error{Kind: MissingClosingParen}))
}

// ----------------------------------------------------------------------------
// Properties

func TestParseDeterministic(t *testing.T) {
	src := []byte(`ul > li.item:hover, a :focus [href^="http"] {
	margin: calc(10px + 2 * gap) !important;
	color: rgb(1, 2, 3)
}
p + p { x: 'y' }`)

	dump := func() string {
		sheet, err := Parse("test.gcss", src)
		require.NoError(t, err)
		var buf bytes.Buffer
		Fprint(&buf, sheet)
		return buf.String()
	}
	first := dump()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, dump())
}

func TestParseIndependentParsers(t *testing.T) {
	p1, err := NewParser("one.gcss", []byte("a { x: 1 }"))
	require.NoError(t, err)
	p2, err := NewParser("two.gcss", []byte("b { y: 2 }"))
	require.NoError(t, err)

	s2, err := p2.Parse()
	require.NoError(t, err)
	s1, err := p1.Parse()
	require.NoError(t, err)

	assert.Equal(t, "a", s1.Rules[0].Selectors.Selectors[0].Simple.Element.Value)
	assert.Equal(t, "b", s2.Rules[0].Selectors.Selectors[0].Simple.Element.Value)
	assert.Equal(t, "two.gcss", s2.Pos().Filename())
}
