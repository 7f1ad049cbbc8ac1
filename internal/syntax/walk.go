package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order: selector half before the
// declaration half, left operand before right, list elements in source
// order. If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if isNil(node) || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Stylesheet:
		for _, r := range n.Rules {
			Walk(r, v)
		}

	case *Ruleset:
		Walk(n.Selectors, v)
		Walk(n.Decls, v)

	case *SelectorList:
		for _, s := range n.Selectors {
			Walk(s, v)
		}

	case *Selector:
		Walk(n.Simple, v)
		if n.Next != nil {
			Walk(n.Next, v)
		}

	case *SimpleSelector:
		if n.Element != nil {
			Walk(n.Element, v)
		}
		for _, m := range n.Modifiers {
			Walk(m, v)
		}

	case *ClassSelector:
		Walk(n.Name, v)

	case *IDSelector:
		Walk(n.Name, v)

	case *PseudoSelector:
		Walk(n.Name, v)

	case *AttrSelector:
		Walk(n.Name, v)
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *DeclList:
		for _, d := range n.Decls {
			Walk(d, v)
		}

	case *Decl:
		Walk(n.Property, v)
		Walk(n.Value, v)

	case *Operation:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *Name, *BasicLit:
		// leaves
	}
}
