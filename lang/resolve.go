package lang

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Marker delimiters wrapped around unevaluated function calls.
const (
	markerOpen  = "「"
	markerClose = "」"
)

// identityCallees are the translation helpers whose calls render as their
// arguments alone.
var identityCallees = map[string]bool{"_": true, "__": true}

// DefaultMaxDepth is the default maximum nesting depth of a resolved value.
// Users may modify this before parsing to change the default.
var DefaultMaxDepth = 512

// ResolveKey normalizes an array key node into a [Key].
//
// String literals are used verbatim, number literals are parsed as base-10
// integers, and booleans map to 1 (true) or 0 (false). Any other node fails
// with [ErrUnsupportedKeyKind].
func ResolveKey(n Node) (Key, error) {
	switch n := n.(type) {
	case *StringLiteral:
		return StringKey(n.Value), nil

	case *NumberLiteral:
		i, err := parseInteger(n.Value)
		if err != nil {
			return Key{}, err
		}

		return IntKey(i), nil

	case *BooleanLiteral:
		if n.Value {
			return IntKey(1), nil
		}

		return IntKey(0), nil

	default:
		return Key{}, unsupported(ErrUnsupportedKeyKind, n)
	}
}

// ResolveValue converts a syntax node into a [Value].
//
// Only the options affecting resolution ([WithMaxDepth]) are consulted.
func ResolveValue(n Node, opts ...Option) (*Value, error) {
	o := makeOptions(opts...)
	r := resolver{maxDepth: o.maxDepth}

	return r.value(n)
}

// Stringify returns the text form of a scalar used by concatenation and
// call markers. Strings are returned as-is and integers in base 10.
// Booleans and containers have no defined text form and fail with
// [ErrUnsupportedCoercion].
func Stringify(v *Value) (string, error) {
	switch v.Kind {
	case KindString:
		return v.Str, nil

	case KindInteger:
		return strconv.FormatInt(v.Int, 10), nil

	default:
		return "", ErrUnsupportedCoercion.
			Wrap(fmt.Errorf("%s", strings.ToLower(v.Kind.String()))).
			With(slog.String("kind", v.Kind.String()))
	}
}

// resolver walks a node tree. It is not safe for concurrent use; each
// conversion gets its own.
type resolver struct {
	maxDepth int
	depth    int
}

func (r *resolver) value(n Node) (*Value, error) {
	r.depth++
	defer func() { r.depth-- }()

	if r.maxDepth > 0 && r.depth > r.maxDepth {
		return nil, ErrMaxDepthExceeded.
			With(slog.Int("max_depth", r.maxDepth))
	}

	switch n := n.(type) {
	case *StringLiteral:
		return NewString(n.Value), nil

	case *NumberLiteral:
		i, err := parseInteger(n.Value)
		if err != nil {
			return nil, err
		}

		return NewInteger(i), nil

	case *BooleanLiteral:
		return NewBoolean(n.Value), nil

	case *ArrayEntry:
		return r.entry(n)

	case *ArrayLiteral:
		return r.array(n)

	case *BinaryConcat:
		return r.concat(n)

	case *CallExpression:
		return r.call(n)

	default:
		return nil, unsupported(ErrUnsupportedValueKind, n)
	}
}

// entry resolves a keyless entry to its value and a keyed entry to a
// one-entry map.
func (r *resolver) entry(n *ArrayEntry) (*Value, error) {
	if n.Key == nil {
		return r.value(n.Value)
	}

	key, err := ResolveKey(n.Key)
	if err != nil {
		return nil, err
	}

	val, err := r.value(n.Value)
	if err != nil {
		return nil, err
	}

	m := new(Map)
	m.Set(key, val)

	return NewMap(m), nil
}

// array resolves to a map when every item has a key and to a list
// otherwise. An empty array is always a list.
func (r *resolver) array(n *ArrayLiteral) (*Value, error) {
	if len(n.Items) == 0 {
		return NewList(), nil
	}

	keyed := true

	for _, item := range n.Items {
		if item.Key == nil {
			keyed = false

			break
		}
	}

	items := make([]*Value, len(n.Items))

	for i, item := range n.Items {
		v, err := r.value(item)
		if err != nil {
			return nil, err
		}

		items[i] = v
	}

	if !keyed {
		return NewList(items...), nil
	}

	m := new(Map)
	for _, item := range items {
		m.Merge(item.Map)
	}

	return NewMap(m), nil
}

func (r *resolver) concat(n *BinaryConcat) (*Value, error) {
	lhs, err := r.text(n.Left)
	if err != nil {
		return nil, err
	}

	rhs, err := r.text(n.Right)
	if err != nil {
		return nil, err
	}

	return NewString(lhs + rhs), nil
}

// call renders a function call as a bracketed placeholder instead of
// evaluating it.
func (r *resolver) call(n *CallExpression) (*Value, error) {
	if len(n.Arguments) == 0 {
		return NewString(markerOpen + markerClose), nil
	}

	args := make([]string, len(n.Arguments))

	for i, arg := range n.Arguments {
		s, err := r.text(arg)
		if err != nil {
			return nil, err
		}

		args[i] = s
	}

	joined := strings.Join(args, ", ")

	if identityCallees[n.Callee] {
		return NewString(markerOpen + joined + markerClose), nil
	}

	return NewString(markerOpen + n.Callee + "(" + joined + ")" + markerClose), nil
}

func (r *resolver) text(n Node) (string, error) {
	v, err := r.value(n)
	if err != nil {
		return "", err
	}

	return Stringify(v)
}

// unsupported builds the error reported for a node outside the supported
// subset.
func unsupported(sentinel *Error, n Node) *Error {
	tag, text := "nil", "()"
	if n != nil {
		tag, text = n.Tag(), n.Dump()
	}

	return sentinel.
		Wrap(fmt.Errorf("%q", tag)).
		With(
			slog.String("kind", tag),
			slog.String("node", text),
		)
}

// parseInteger parses the leading base-10 integer of s: optional
// surrounding whitespace, an optional sign, then digits up to the first
// non-digit. "0x1F" is 0 and "1.5" is 1.
func parseInteger(s string) (int64, error) {
	t := strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(t) && (t[end] == '+' || t[end] == '-') {
		end++
	}

	start := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}

	if end == start {
		return 0, ErrInvalidNumber.
			Wrap(fmt.Errorf("%q", s)).
			With(slog.String("literal", s))
	}

	i, err := strconv.ParseInt(t[:end], 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}

		return 0, ErrInvalidNumber.
			Wrap(fmt.Errorf("%q: %w", s, err)).
			With(slog.String("literal", s))
	}

	return i, nil
}
