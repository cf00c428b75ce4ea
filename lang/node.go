package lang

import (
	"strconv"
	"strings"
)

// NodeKind discriminates the syntax nodes understood by the resolvers.
type NodeKind int

const (
	// NodeUnsupported is any grammar node outside the supported subset.
	NodeUnsupported NodeKind = iota

	// NodeString is a string literal.
	NodeString

	// NodeNumber is a numeric literal.
	NodeNumber

	// NodeBoolean is a boolean literal.
	NodeBoolean

	// NodeEntry is a single slot of an array literal.
	NodeEntry

	// NodeArray is an array literal.
	NodeArray

	// NodeConcat is a binary expression using the "." operator.
	NodeConcat

	// NodeCall is a function call expression.
	NodeCall

	// NodeExpressionStatement is a statement wrapping a single expression.
	NodeExpressionStatement
)

// String returns the kind tag used in diagnostics.
func (k NodeKind) String() string {
	switch k {
	case NodeString:
		return "string"

	case NodeNumber:
		return "number"

	case NodeBoolean:
		return "boolean"

	case NodeEntry:
		return "entry"

	case NodeArray:
		return "array"

	case NodeConcat:
		return "bin"

	case NodeCall:
		return "call"

	case NodeExpressionStatement:
		return "expressionstatement"

	default:
		return "unsupported"
	}
}

// Node is a syntax node produced by a [Grammar].
//
// The set of implementations is closed: only the types declared in this
// file satisfy Node. Grammar nodes outside the supported subset are
// represented by [*Unsupported].
type Node interface {
	// Kind returns the node's discriminant.
	Kind() NodeKind

	// Tag returns the kind tag reported in diagnostics. It equals
	// Kind().String() except for [*Unsupported], which reports the
	// grammar's own tag.
	Tag() string

	// Dump returns a single-line diagnostic rendering of the node.
	Dump() string

	node()
}

type (
	// StringLiteral holds an already unescaped string.
	StringLiteral struct{ Value string }

	// NumberLiteral holds the literal text of a number.
	NumberLiteral struct{ Value string }

	// BooleanLiteral holds a boolean constant.
	BooleanLiteral struct{ Value bool }

	// ArrayEntry is a `key => value` or bare `value` slot. Key is nil when
	// the entry has no key.
	ArrayEntry struct {
		Key   Node
		Value Node
	}

	// ArrayLiteral is a `[...]` or `array(...)` literal.
	ArrayLiteral struct{ Items []*ArrayEntry }

	// BinaryConcat is `Left . Right`.
	BinaryConcat struct{ Left, Right Node }

	// CallExpression is `Callee(Arguments...)`.
	CallExpression struct {
		Callee    string
		Arguments []Node
	}

	// ExpressionStatement is `Expression;`.
	ExpressionStatement struct{ Expression Node }

	// Unsupported is a grammar node the resolvers do not interpret.
	Unsupported struct {
		Type   string // grammar kind tag
		Source string // diagnostic dump supplied by the grammar
	}
)

func (*StringLiteral) Kind() NodeKind       { return NodeString }
func (*NumberLiteral) Kind() NodeKind       { return NodeNumber }
func (*BooleanLiteral) Kind() NodeKind      { return NodeBoolean }
func (*ArrayEntry) Kind() NodeKind          { return NodeEntry }
func (*ArrayLiteral) Kind() NodeKind        { return NodeArray }
func (*BinaryConcat) Kind() NodeKind        { return NodeConcat }
func (*CallExpression) Kind() NodeKind      { return NodeCall }
func (*ExpressionStatement) Kind() NodeKind { return NodeExpressionStatement }
func (*Unsupported) Kind() NodeKind         { return NodeUnsupported }

func (n *StringLiteral) Tag() string       { return n.Kind().String() }
func (n *NumberLiteral) Tag() string       { return n.Kind().String() }
func (n *BooleanLiteral) Tag() string      { return n.Kind().String() }
func (n *ArrayEntry) Tag() string          { return n.Kind().String() }
func (n *ArrayLiteral) Tag() string        { return n.Kind().String() }
func (n *BinaryConcat) Tag() string        { return n.Kind().String() }
func (n *CallExpression) Tag() string      { return n.Kind().String() }
func (n *ExpressionStatement) Tag() string { return n.Kind().String() }
func (n *Unsupported) Tag() string         { return n.Type }

func (*StringLiteral) node()       {}
func (*NumberLiteral) node()       {}
func (*BooleanLiteral) node()      {}
func (*ArrayEntry) node()          {}
func (*ArrayLiteral) node()        {}
func (*BinaryConcat) node()        {}
func (*CallExpression) node()      {}
func (*ExpressionStatement) node() {}
func (*Unsupported) node()         {}

func (n *StringLiteral) Dump() string  { return "(string " + strconv.Quote(n.Value) + ")" }
func (n *NumberLiteral) Dump() string  { return "(number " + n.Value + ")" }
func (n *BooleanLiteral) Dump() string { return "(boolean " + strconv.FormatBool(n.Value) + ")" }
func (n *Unsupported) Dump() string    { return n.Source }

func (n *ArrayEntry) Dump() string {
	if n.Key == nil {
		return "(entry " + dump(n.Value) + ")"
	}

	return "(entry " + dump(n.Key) + " => " + dump(n.Value) + ")"
}

func (n *ArrayLiteral) Dump() string {
	var sb strings.Builder

	sb.WriteString("(array")

	for _, item := range n.Items {
		sb.WriteByte(' ')
		sb.WriteString(item.Dump())
	}

	sb.WriteByte(')')

	return sb.String()
}

func (n *BinaryConcat) Dump() string {
	return "(bin . " + dump(n.Left) + " " + dump(n.Right) + ")"
}

func (n *CallExpression) Dump() string {
	var sb strings.Builder

	sb.WriteString("(call ")
	sb.WriteString(n.Callee)

	for _, arg := range n.Arguments {
		sb.WriteByte(' ')
		sb.WriteString(dump(arg))
	}

	sb.WriteByte(')')

	return sb.String()
}

func (n *ExpressionStatement) Dump() string {
	return "(expressionstatement " + dump(n.Expression) + ")"
}

// dump renders a possibly nil node.
func dump(n Node) string {
	if n == nil {
		return "()"
	}

	return n.Dump()
}
