package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w: one line per
// node, in pre-order, indented by depth. Children are visited in the
// order Walk visits them, so equal trees always print identically.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// children prints the given nodes one level deeper.
func (p *printer) children(nodes ...Node) {
	p.indent++
	for _, n := range nodes {
		p.print(n)
	}
	p.indent--
}

func (p *printer) print(node Node) {
	if isNil(node) {
		return
	}

	switch n := node.(type) {
	case *Stylesheet:
		p.printf("Stylesheet %s\n", n.pos)
		p.indent++
		for _, r := range n.Rules {
			p.print(r)
		}
		p.indent--

	case *Ruleset:
		p.printf("Ruleset %s\n", n.pos)
		p.children(n.Selectors, n.Decls)

	case *SelectorList:
		p.printf("SelectorList %s\n", n.pos)
		p.indent++
		for _, s := range n.Selectors {
			p.print(s)
		}
		p.indent--

	case *Selector:
		if n.Next == nil {
			p.printf("Selector %s\n", n.pos)
			p.children(n.Simple)
		} else {
			p.printf("Selector %s %s\n", n.pos, n.Combinator)
			p.children(n.Simple, n.Next)
		}

	case *SimpleSelector:
		p.printf("SimpleSelector %s\n", n.pos)
		p.indent++
		p.print(n.Element)
		for _, m := range n.Modifiers {
			p.print(m)
		}
		p.indent--

	case *ClassSelector:
		p.printf("ClassSelector %s\n", n.pos)
		p.children(n.Name)

	case *IDSelector:
		p.printf("IDSelector %s\n", n.pos)
		p.children(n.Name)

	case *PseudoSelector:
		p.printf("PseudoSelector %s\n", n.pos)
		p.children(n.Name)

	case *AttrSelector:
		if n.HasOp() {
			p.printf("AttrSelector %s %s\n", n.pos, n.Op)
			p.children(n.Name, n.Value)
		} else {
			p.printf("AttrSelector %s\n", n.pos)
			p.children(n.Name)
		}

	case *DeclList:
		p.printf("DeclList %s\n", n.pos)
		p.indent++
		for _, d := range n.Decls {
			p.print(d)
		}
		p.indent--

	case *Decl:
		if n.Important {
			p.printf("Decl %s !important\n", n.pos)
		} else {
			p.printf("Decl %s\n", n.pos)
		}
		p.children(n.Property, n.Value)

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *BasicLit:
		if n.Unit != "" {
			p.printf("BasicLit %s %s %q %s\n", n.pos, n.Kind, n.Value, n.Unit)
		} else {
			p.printf("BasicLit %s %s %q\n", n.pos, n.Kind, n.Value)
		}

	case *Operation:
		p.printf("Operation %s %s\n", n.pos, n.Op)
		p.children(n.X, n.Y)

	case *CallExpr:
		p.printf("CallExpr %s\n", n.pos)
		p.indent++
		p.print(n.Fun)
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// isNil reports whether n is nil or holds a nil pointer, as optional
// children such as SimpleSelector.Element do when absent.
func isNil(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *Name:
		return x == nil
	case *Selector:
		return x == nil
	case *SelectorList:
		return x == nil
	case *DeclList:
		return x == nil
	case *SimpleSelector:
		return x == nil
	}
	return false
}
