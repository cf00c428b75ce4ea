package lang

import (
	"context"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// Grammar parses a PHP fragment into top-level syntax nodes.
//
// Implementations must be safe for concurrent use.
type Grammar interface {
	ParseFragment(ctx context.Context, fragment string) ([]Node, error)
}

// returnKeyword marks the start of the fragment handed to the grammar.
const returnKeyword = "return"

// closingTag matches a trailing "?>" and any whitespace after it.
var closingTag = regexp.MustCompile(`\?>\s*$`)

// Fragment isolates the returned expression of a PHP file.
//
// Everything up to and including the first occurrence of "return" is
// removed; when there is none the text is kept whole. A trailing "?>" is
// replaced with "_" so the rest still reads as a statement sequence.
//
// The search is textual: a "return" appearing earlier in a comment or
// string literal is taken as the statement keyword.
func Fragment(source string) string {
	if i := strings.Index(source, returnKeyword); i >= 0 {
		source = source[i+len(returnKeyword):]
	}

	return closingTag.ReplaceAllString(source, "_")
}

// Parse converts the array literal returned by a PHP source file into a
// [Value].
//
// When the first top-level node of the fragment is not an array literal, or
// there is no node at all, the result is an empty map. Any unsupported node
// inside the array aborts the conversion.
func Parse(ctx context.Context, source string, opts ...Option) (*Value, error) {
	o := makeOptions(opts...)

	fragment := Fragment(source)

	o.logger.TraceContext(ctx, "parse fragment",
		slog.Int("source_bytes", len(source)),
		slog.Int("fragment_bytes", len(fragment)),
	)

	nodes, err := o.grammar.ParseFragment(ctx, fragment)
	if err != nil {
		return nil, err
	}

	root, ok := Select(nodes)
	if !ok {
		o.logger.TraceContext(ctx, "no array literal",
			slog.Int("node_count", len(nodes)),
		)

		return NewMap(nil), nil
	}

	r := resolver{maxDepth: o.maxDepth}

	v, err := r.value(root)
	if err != nil {
		return nil, err
	}

	o.logger.TraceContext(ctx, "parse complete",
		slog.String("kind", v.Kind.String()),
		slog.Int("length", v.Len()),
	)

	return v, nil
}

// ParseNodes returns the top-level nodes of the fragment of source without
// resolving them.
func ParseNodes(ctx context.Context, source string, opts ...Option) ([]Node, error) {
	o := makeOptions(opts...)

	return o.grammar.ParseFragment(ctx, Fragment(source))
}

// Select returns the array literal to resolve from the top-level nodes of a
// fragment. Only the first node is inspected: it must be an array literal or
// an expression statement wrapping one.
func Select(nodes []Node) (*ArrayLiteral, bool) {
	if len(nodes) == 0 {
		return nil, false
	}

	switch n := nodes[0].(type) {
	case *ArrayLiteral:
		return n, true

	case *ExpressionStatement:
		arr, ok := n.Expression.(*ArrayLiteral)

		return arr, ok

	default:
		return nil, false
	}
}

// ParseReader reads all of r and converts it with [Parse].
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return Parse(ctx, string(data), opts...)
}

// ParseFile reads the named file and converts it with [Parse].
func ParseFile(ctx context.Context, path string, opts ...Option) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("file", path))
	}

	v, err := Parse(ctx, string(data), opts...)
	if err != nil {
		return nil, WrapError(err).With(slog.String("file", path))
	}

	return v, nil
}
