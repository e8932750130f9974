package pysrc

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"docdrift/internal/model"
)

func lowerModule(root *tree_sitter.Node, src []byte) []model.Definition {
	var defs []model.Definition

	var walk func(n *tree_sitter.Node)
	walk = func(n *tree_sitter.Node) {
		if n == nil {
			return
		}

		switch n.Kind() {
		case "function_definition", "class_definition":
			if def, ok := lowerDefinition(n, src); ok {
				defs = append(defs, def)
			}
		}

		for i := uint(0); i < n.NamedChildCount(); i++ {
			walk(n.NamedChild(i))
		}
	}

	walk(root)
	return defs
}

func lowerDefinition(n *tree_sitter.Node, src []byte) (model.Definition, bool) {
	name := trimNodeText(n.ChildByFieldName("name"), src)
	if name == "" {
		return model.Definition{}, false
	}

	kind := model.KindFunction
	switch {
	case n.Kind() == "class_definition":
		kind = model.KindClass
	case isAsync(n):
		kind = model.KindAsyncFunction
	}

	start, end := nodeLines(n)

	return model.Definition{
		Name:       name,
		Kind:       kind,
		Start:      start,
		End:        end,
		Decorators: lowerDecorators(n.Parent(), src),
		Body:       lowerBody(n.ChildByFieldName("body"), src),
	}, true
}

// isAsync reports whether the definition carries the async keyword, which
// the grammar keeps as an anonymous child before "def".
func isAsync(n *tree_sitter.Node) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		ch := n.Child(i)
		if ch == nil {
			continue
		}
		switch ch.Kind() {
		case "async":
			return true
		case "def":
			return false
		}
	}
	return false
}

// lowerDecorators collects decorators from an enclosing decorated_definition
// wrapper. Definitions without decorators have a different parent kind.
func lowerDecorators(parent *tree_sitter.Node, src []byte) []model.Decorator {
	if parent == nil || parent.Kind() != "decorated_definition" {
		return nil
	}

	var decs []model.Decorator
	for i := uint(0); i < parent.NamedChildCount(); i++ {
		ch := parent.NamedChild(i)
		if ch == nil || ch.Kind() != "decorator" {
			continue
		}
		line, _ := nodeLines(ch)
		decs = append(decs, model.Decorator{
			Line: line,
			Ref:  decoratorRef(ch, src),
		})
	}
	return decs
}

// decoratorRef resolves a decorator expression to its syntactic shape: a
// bare identifier, the tail of an attribute access, or opaque for anything
// else. Where the identifier was imported from is deliberately not checked.
func decoratorRef(dec *tree_sitter.Node, src []byte) model.DecoratorRef {
	var expr *tree_sitter.Node
	for i := uint(0); i < dec.NamedChildCount(); i++ {
		expr = dec.NamedChild(i)
		break
	}
	if expr == nil {
		return model.DecoratorRef{Kind: model.RefOpaque}
	}

	switch expr.Kind() {
	case "identifier":
		return model.DecoratorRef{Kind: model.RefSimple, Name: trimNodeText(expr, src)}
	case "attribute":
		return model.DecoratorRef{Kind: model.RefQualified, Name: trimNodeText(expr.ChildByFieldName("attribute"), src)}
	default:
		return model.DecoratorRef{Kind: model.RefOpaque}
	}
}

// lowerBody turns a block node into ordered statements. Comment nodes are
// interleaved in the tree but are not statements, so they are skipped.
func lowerBody(block *tree_sitter.Node, src []byte) []model.Statement {
	if block == nil || block.Kind() != "block" {
		return nil
	}

	var stmts []model.Statement
	for i := uint(0); i < block.NamedChildCount(); i++ {
		ch := block.NamedChild(i)
		if ch == nil || ch.Kind() == "comment" {
			continue
		}
		start, end := nodeLines(ch)
		stmts = append(stmts, model.Statement{
			Start:    start,
			End:      end,
			IsString: isStringExpr(ch),
		})
	}
	return stmts
}

// isStringExpr reports whether a statement is a bare string-literal
// expression, the shape a docstring takes as the first body statement.
func isStringExpr(stmt *tree_sitter.Node) bool {
	if stmt == nil || stmt.Kind() != "expression_statement" {
		return false
	}
	if stmt.NamedChildCount() != 1 {
		return false
	}
	switch stmt.NamedChild(0).Kind() {
	case "string", "concatenated_string":
		return true
	default:
		return false
	}
}
