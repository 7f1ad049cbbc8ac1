package syntax

import (
	"fmt"
	"io"

	tp "github.com/xlab/treeprint"
)

// Ftree writes the AST to w as a box-drawn tree. Node labels are the
// same as the lines written by Fprint, without positions.
func Ftree(w io.Writer, node Node) error {
	root := tp.NewWithRoot(label(node))
	addChildren(root, node)
	_, err := io.WriteString(w, root.String())
	return err
}

// addChildren adds the direct children of node below branch.
func addChildren(branch tp.Tree, node Node) {
	for _, ch := range childNodes(node) {
		if len(childNodes(ch)) == 0 {
			branch.AddNode(label(ch))
			continue
		}
		addChildren(branch.AddBranch(label(ch)), ch)
	}
}

// childNodes returns the direct children of node in Walk order.
func childNodes(node Node) []Node {
	var kids []Node
	first := true
	Walk(node, func(n Node) bool {
		if first {
			first = false
			return true
		}
		kids = append(kids, n)
		return false
	})
	return kids
}

// label returns the one-line description of node used in tree output.
func label(node Node) string {
	switch n := node.(type) {
	case *Selector:
		if n.Next != nil {
			return "Selector " + n.Combinator.String()
		}
		return "Selector"
	case *AttrSelector:
		if n.HasOp() {
			return "AttrSelector " + n.Op.String()
		}
		return "AttrSelector"
	case *Decl:
		if n.Important {
			return "Decl !important"
		}
		return "Decl"
	case *Name:
		return fmt.Sprintf("Name %q", n.Value)
	case *BasicLit:
		if n.Unit != "" {
			return fmt.Sprintf("BasicLit %s %q %s", n.Kind, n.Value, n.Unit)
		}
		return fmt.Sprintf("BasicLit %s %q", n.Kind, n.Value)
	case *Operation:
		return "Operation " + n.Op.String()
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%T", node)[len("*syntax."):]
}
