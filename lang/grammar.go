package lang

import (
	"context"
	"log/slog"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"
)

// openTag is prepended to fragments that do not already open PHP mode, since
// the grammar treats anything outside a PHP tag as inline HTML.
const openTag = "<?php "

// TreeSitter is the default [Grammar], backed by the tree-sitter PHP
// grammar. The zero value is ready to use.
type TreeSitter struct{}

// ParseFragment parses fragment as a PHP statement sequence and lowers each
// top-level statement into a [Node].
//
// Syntax errors are reported only when they fall inside the first
// statement, the only one [Parse] inspects.
func (TreeSitter) ParseFragment(ctx context.Context, fragment string) ([]Node, error) {
	offset := 0

	trimmed := strings.TrimLeft(fragment, " \t\r\n")
	if !strings.HasPrefix(trimmed, "<?") {
		fragment = openTag + fragment
		offset = len(openTag)
	}

	src := []byte(fragment)

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(php.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, ErrGrammar.Wrap(err)
	}
	defer tree.Close()

	l := lowering{src: src}
	root := tree.RootNode()
	stmts := l.children(root)

	if len(stmts) > 0 && (stmts[0].Type() == "ERROR" || stmts[0].HasError()) {
		return nil, l.syntaxError(stmts[0], offset)
	}

	nodes := make([]Node, 0, len(stmts))
	for _, stmt := range stmts {
		nodes = append(nodes, l.node(stmt))
	}

	return nodes, nil
}

// skipped are extras and markers that never form a statement.
var skipped = map[string]bool{
	"comment": true,
	"php_tag": true,
	"text":    true,
}

// lowering converts tree-sitter nodes of one source buffer.
type lowering struct {
	src []byte
}

// children returns the named children of n that carry meaning.
func (l lowering) children(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)

	for i := range count {
		c := n.NamedChild(i)
		if c == nil || skipped[c.Type()] {
			continue
		}

		out = append(out, c)
	}

	return out
}

// hasToken reports whether n has an anonymous child spelled tok.
func (l lowering) hasToken(n *sitter.Node, tok string) bool {
	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c != nil && !c.IsNamed() && c.Type() == tok {
			return true
		}
	}

	return false
}

func (l lowering) node(n *sitter.Node) Node {
	switch n.Type() {
	case "expression_statement":
		if kids := l.children(n); len(kids) == 1 {
			return &ExpressionStatement{Expression: l.node(kids[0])}
		}

	case "parenthesized_expression":
		if kids := l.children(n); len(kids) == 1 {
			return l.node(kids[0])
		}

	case "string", "encapsed_string":
		if s, ok := l.stringLiteral(n); ok {
			return &StringLiteral{Value: s}
		}

	case "integer", "float":
		return &NumberLiteral{Value: n.Content(l.src)}

	case "boolean":
		return &BooleanLiteral{Value: strings.EqualFold(n.Content(l.src), "true")}

	case "array_creation_expression":
		return l.array(n)

	case "binary_expression":
		if l.operator(n) == "." {
			left, right := n.ChildByFieldName("left"), n.ChildByFieldName("right")
			if left != nil && right != nil {
				return &BinaryConcat{Left: l.node(left), Right: l.node(right)}
			}
		}

	case "function_call_expression":
		if call, ok := l.call(n); ok {
			return call
		}
	}

	return l.unsupported(n)
}

func (l lowering) array(n *sitter.Node) Node {
	arr := &ArrayLiteral{}

	for _, c := range l.children(n) {
		if c.Type() != "array_element_initializer" {
			return l.unsupported(n)
		}

		kids := l.children(c)

		switch {
		case l.hasToken(c, "=>") && len(kids) == 2:
			arr.Items = append(arr.Items, &ArrayEntry{
				Key:   l.node(kids[0]),
				Value: l.node(kids[1]),
			})

		case len(kids) == 1:
			arr.Items = append(arr.Items, &ArrayEntry{Value: l.node(kids[0])})

		default:
			arr.Items = append(arr.Items, &ArrayEntry{Value: l.unsupported(c)})
		}
	}

	return arr
}

// operator returns the operator token of a binary expression.
func (l lowering) operator(n *sitter.Node) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op.Type()
	}

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c != nil && !c.IsNamed() {
			return c.Type()
		}
	}

	return ""
}

// call lowers a call whose callee is a plain or qualified name and whose
// arguments are all positional.
func (l lowering) call(n *sitter.Node) (Node, bool) {
	fn := n.ChildByFieldName("function")
	if fn == nil || (fn.Type() != "name" && fn.Type() != "qualified_name") {
		return nil, false
	}

	call := &CallExpression{Callee: fn.Content(l.src)}

	args := n.ChildByFieldName("arguments")
	if args == nil {
		return call, true
	}

	for _, arg := range l.children(args) {
		if arg.Type() != "argument" || arg.ChildByFieldName("name") != nil {
			return nil, false
		}

		kids := l.children(arg)
		if len(kids) != 1 {
			return nil, false
		}

		call.Arguments = append(call.Arguments, l.node(kids[0]))
	}

	return call, true
}

// stringLiteral decodes a quoted string without interpolation.
func (l lowering) stringLiteral(n *sitter.Node) (string, bool) {
	for _, c := range l.children(n) {
		switch c.Type() {
		case "string", "string_content", "string_value", "escape_sequence":
		default:
			return "", false // interpolated variable or expression
		}
	}

	return unquote(n.Content(l.src))
}

func (l lowering) unsupported(n *sitter.Node) *Unsupported {
	return &Unsupported{
		Type:   n.Type(),
		Source: n.String() + " " + snippet(n.Content(l.src)),
	}
}

// syntaxError reports the first error node within n.
func (l lowering) syntaxError(n *sitter.Node, offset int) *Error {
	bad := firstError(n)
	if bad == nil {
		bad = n
	}

	pt := bad.StartPoint()

	col := int(pt.Column)
	if pt.Row == 0 {
		col -= offset
	}

	return ErrSyntax.With(
		slog.Int("line", int(pt.Row)+1),
		slog.Int("column", col+1),
		slog.String("near", snippet(bad.Content(l.src))),
	)
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || !c.HasError() && !c.IsMissing() && c.Type() != "ERROR" {
			continue
		}

		if bad := firstError(c); bad != nil {
			return bad
		}
	}

	return nil
}

// snippet shortens source text for diagnostics.
func snippet(s string) string {
	const limit = 64

	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > limit {
		s = string(r[:limit]) + "…"
	}

	return "`" + s + "`"
}
