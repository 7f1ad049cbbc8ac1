package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 main classes of nodes below the stylesheet: selector parts
// and declaration values. All nodes implement the Node interface. Selector
// modifiers and value expressions further implement their own interfaces.
// Nodes are built bottom-up by the parser and are not modified afterwards.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Modifier is the interface for the parts attached to a simple selector:
// class, id, pseudo-class and attribute selectors.
type Modifier interface {
	Node
	aModifier()
}

// Expr is the interface for all declaration value nodes.
type Expr interface {
	Node
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// modifier is embedded in all modifier nodes.
type modifier struct{ node }

func (*modifier) aModifier() {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Rulesets

// Stylesheet represents a complete source buffer: a sequence of rulesets.
type Stylesheet struct {
	node
	Rules []*Ruleset
}

// Ruleset represents a selector list with its declaration block.
type Ruleset struct {
	node
	Selectors *SelectorList
	Decls     *DeclList
}

// ----------------------------------------------------------------------------
// Selectors

// SelectorList represents one or more comma-separated selectors that share
// a declaration block.
type SelectorList struct {
	node
	Selectors []*Selector // never empty
}

// Combinator relates a selector to the selector that follows it.
type Combinator uint8

const (
	NoCombinator Combinator = iota // last selector of a chain
	Descendant                     // whitespace
	Child                          // >
	Adjacent                       // +
)

var combinatorNames = [...]string{
	NoCombinator: "none",
	Descendant:   "descendant",
	Child:        "child",
	Adjacent:     "adjacent",
}

func (c Combinator) String() string {
	if int(c) < len(combinatorNames) {
		return combinatorNames[c]
	}
	return "combinator(?)"
}

// Selector represents a simple selector, optionally followed by a
// combinator and the rest of the chain: div > p.x a is
// Selector{div, Child, Selector{p.x, Descendant, Selector{a}}}.
type Selector struct {
	node
	Simple     *SimpleSelector
	Combinator Combinator // NoCombinator iff Next is nil
	Next       *Selector
}

// SimpleSelector represents an optional element name and the modifiers
// attached to it, in source order.
type SimpleSelector struct {
	node
	Element   *Name      // element name or "*" (nil if absent)
	Modifiers []Modifier // class, id, pseudo and attribute selectors
}

// ClassSelector represents .Name
type ClassSelector struct {
	modifier
	Name *Name
}

// IDSelector represents #Name
type IDSelector struct {
	modifier
	Name *Name
}

// PseudoSelector represents :Name
type PseudoSelector struct {
	modifier
	Name *Name
}

// AttrSelector represents [Name], [Name Op Value].
type AttrSelector struct {
	modifier
	Name  *Name
	Op    Kind // attribute operator (_EOF if absent)
	Value Expr // *Name or *BasicLit string (nil if absent)
}

// HasOp reports whether the attribute selector compares a value.
func (a *AttrSelector) HasOp() bool {
	return a.Op != _EOF
}

// ----------------------------------------------------------------------------
// Declarations

// DeclList represents a declaration block: { Decls... }
type DeclList struct {
	node
	Decls  []*Decl
	Rbrace Pos // position of closing brace
}

// Decl represents a declaration: Property: Value [!important];
type Decl struct {
	node
	Property  *Name
	Value     Expr
	Important bool
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string
}

// LitKind represents the kind of a literal.
type LitKind uint8

const (
	NumberLit LitKind = iota // 42, 10px
	StringLit                // "hello", 'hello'
)

var litKindNames = [...]string{
	NumberLit: "number",
	StringLit: "string",
}

func (k LitKind) String() string {
	if int(k) < len(litKindNames) {
		return litKindNames[k]
	}
	return "LitKind(?)"
}

// BasicLit represents a number or string literal.
type BasicLit struct {
	expr
	Value string  // literal text; strings keep their quotes
	Kind  LitKind // NumberLit or StringLit
	Unit  string  // unit directly following a number ("px"), or ""
}

// Operation represents a binary operation X Op Y.
type Operation struct {
	expr
	Op Kind // _Add, _Sub, _Mul or _Div
	X  Expr
	Y  Expr
}

// CallExpr represents a function call: Fun(Args...)
type CallExpr struct {
	expr
	Fun  *Name
	Args []Expr
}
