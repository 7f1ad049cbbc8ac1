package syntax

import "fmt"

// Kind represents the kind of a lexical token.
type Kind uint

const (
	// Special tokens
	_EOF        Kind = iota // end of file
	_Unknown                // character not in the token table
	_Whitespace             // run of space, tab, newline, vertical tab, form feed, carriage return

	// Literals
	_Ident  // identifier: div, data-x, font-size
	_String // "quoted" or 'quoted', quotes included
	_Number // 42

	// Multi-character punctuation
	_Eql       // ==
	_Contains  // *=
	_DashMatch // |=
	_Includes  // ~=
	_Suffix    // $=
	_Prefix    // ^=
	_Important // !important

	// Single-character punctuation
	_Hash   // #
	_Dot    // .
	_Lbrack // [
	_Rbrack // ]
	_Lbrace // {
	_Rbrace // }
	_Lparen // (
	_Rparen // )
	_Colon  // :
	_Semi   // ;
	_Assign // =
	_Comma  // ,
	_Lss    // <
	_Gtr    // >
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /

	kindCount
)

// Exported kinds for use outside the package (errors, tests, tooling).
const (
	EOF        = _EOF
	Unknown    = _Unknown
	Whitespace = _Whitespace
	Ident      = _Ident
	String     = _String
	Number     = _Number
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	_EOF:        "EOF",
	_Unknown:    "UNKNOWN",
	_Whitespace: "WHITESPACE",

	_Ident:  "IDENT",
	_String: "STRING",
	_Number: "NUMBER",

	_Eql:       "==",
	_Contains:  "*=",
	_DashMatch: "|=",
	_Includes:  "~=",
	_Suffix:    "$=",
	_Prefix:    "^=",
	_Important: "!important",

	_Hash:   "#",
	_Dot:    ".",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lbrace: "{",
	_Rbrace: "}",
	_Lparen: "(",
	_Rparen: ")",
	_Colon:  ":",
	_Semi:   ";",
	_Assign: "=",
	_Comma:  ",",
	_Lss:    "<",
	_Gtr:    ">",
	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Precedence returns the binding power of k as a binary operator in
// declaration values, or 0 if k is not one.
//
//	1: + -
//	2: * /
func (k Kind) Precedence() int {
	switch k {
	case _Add, _Sub:
		return 1
	case _Mul, _Div:
		return 2
	}
	return 0
}

// IsAttrOp reports whether k may appear between the name and the value of
// an attribute selector.
func (k Kind) IsAttrOp() bool {
	switch k {
	case _Assign, _Contains, _DashMatch, _Includes, _Suffix, _Prefix:
		return true
	}
	return false
}

// IsPunct reports whether k is one of the fixed punctuation tokens.
func (k Kind) IsPunct() bool {
	return k >= _Eql && k <= _Div
}

// Token is a lexical token: its kind and the exact source text it spans.
type Token struct {
	Kind Kind
	Text string // matched slice of the source; empty for EOF
	Pos  Pos    // position of the first byte
}

// End returns the byte offset immediately after the token.
func (t Token) End() int {
	return t.Pos.Offset() + len(t.Text)
}

func (t Token) String() string {
	switch t.Kind {
	case _Ident, _String, _Number, _Whitespace, _Unknown:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
	return t.Kind.String()
}

// punct is one entry of the punctuation table.
type punct struct {
	text string
	kind Kind
}

// punctTable lists every fixed punctuation token. Entries are ordered
// longest first, so the first prefix match is the longest match.
// The table is never modified after initialization.
var punctTable = [...]punct{
	{"!important", _Important},
	{"==", _Eql},
	{"*=", _Contains},
	{"|=", _DashMatch},
	{"~=", _Includes},
	{"$=", _Suffix},
	{"^=", _Prefix},
	{"#", _Hash},
	{".", _Dot},
	{"[", _Lbrack},
	{"]", _Rbrack},
	{"{", _Lbrace},
	{"}", _Rbrace},
	{"(", _Lparen},
	{")", _Rparen},
	{":", _Colon},
	{";", _Semi},
	{"=", _Assign},
	{",", _Comma},
	{"<", _Lss},
	{">", _Gtr},
	{"+", _Add},
	{"-", _Sub},
	{"*", _Mul},
	{"/", _Div},
}

// lookupPunct returns the longest punctuation token that prefixes buf.
func lookupPunct(buf []byte) (Kind, int, bool) {
	for _, p := range punctTable {
		if len(buf) >= len(p.text) && string(buf[:len(p.text)]) == p.text {
			return p.kind, len(p.text), true
		}
	}
	return _Unknown, 0, false
}
