package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if isNil(node) {
		return nil
	}

	switch n := node.(type) {
	case *Stylesheet:
		return map[string]interface{}{
			"type":  "Stylesheet",
			"pos":   n.pos.String(),
			"rules": mapSlice(n.Rules, func(r *Ruleset) interface{} { return toJSON(r) }),
		}

	case *Ruleset:
		return map[string]interface{}{
			"type":      "Ruleset",
			"pos":       n.pos.String(),
			"selectors": toJSON(n.Selectors),
			"decls":     toJSON(n.Decls),
		}

	case *SelectorList:
		return map[string]interface{}{
			"type":      "SelectorList",
			"pos":       n.pos.String(),
			"selectors": mapSlice(n.Selectors, func(s *Selector) interface{} { return toJSON(s) }),
		}

	case *Selector:
		m := map[string]interface{}{
			"type":   "Selector",
			"pos":    n.pos.String(),
			"simple": toJSON(n.Simple),
		}
		if n.Next != nil {
			m["combinator"] = n.Combinator.String()
			m["next"] = toJSON(n.Next)
		}
		return m

	case *SimpleSelector:
		m := map[string]interface{}{
			"type":      "SimpleSelector",
			"pos":       n.pos.String(),
			"modifiers": mapSlice(n.Modifiers, func(x Modifier) interface{} { return toJSON(x) }),
		}
		if n.Element != nil {
			m["element"] = n.Element.Value
		}
		return m

	case *ClassSelector:
		return map[string]interface{}{
			"type": "ClassSelector",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
		}

	case *IDSelector:
		return map[string]interface{}{
			"type": "IDSelector",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
		}

	case *PseudoSelector:
		return map[string]interface{}{
			"type": "PseudoSelector",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
		}

	case *AttrSelector:
		m := map[string]interface{}{
			"type": "AttrSelector",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
		}
		if n.HasOp() {
			m["op"] = n.Op.String()
			m["value"] = toJSON(n.Value)
		}
		return m

	case *DeclList:
		return map[string]interface{}{
			"type":  "DeclList",
			"pos":   n.pos.String(),
			"decls": mapSlice(n.Decls, func(d *Decl) interface{} { return toJSON(d) }),
		}

	case *Decl:
		return map[string]interface{}{
			"type":      "Decl",
			"pos":       n.pos.String(),
			"property":  n.Property.Value,
			"value":     toJSON(n.Value),
			"important": n.Important,
		}

	case *Name:
		return map[string]interface{}{
			"type":  "Name",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *BasicLit:
		m := map[string]interface{}{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}
		if n.Unit != "" {
			m["unit"] = n.Unit
		}
		return m

	case *Operation:
		return map[string]interface{}{
			"type": "Operation",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  n.Fun.Value,
			"args": mapSlice(n.Args, func(a Expr) interface{} { return toJSON(a) }),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
