package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func str(s string) *StringLiteral { return &StringLiteral{Value: s} }
func num(s string) *NumberLiteral { return &NumberLiteral{Value: s} }
func boolean(b bool) *BooleanLiteral { return &BooleanLiteral{Value: b} }

func kv(k, v Node) *ArrayEntry { return &ArrayEntry{Key: k, Value: v} }
func el(v Node) *ArrayEntry { return &ArrayEntry{Value: v} }

func arr(items ...*ArrayEntry) *ArrayLiteral { return &ArrayLiteral{Items: items} }

func concat(l, r Node) *BinaryConcat { return &BinaryConcat{Left: l, Right: r} }

func call(name string, args ...Node) *CallExpression {
	return &CallExpression{Callee: name, Arguments: args}
}

func variable(name string) *Unsupported {
	return &Unsupported{Type: "variable_name", Source: "(variable_name (name)) `$" + name + "`"}
}

func jsonOf(t *testing.T, v *Value) string {
	t.Helper()

	data, err := v.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	return string(data)
}

func TestResolveValue(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"empty array", arr(), `[]`},
		{"list", arr(el(num("1")), el(num("2")), el(num("3"))), `[1,2,3]`},
		{"map", arr(kv(str("a"), num("1")), kv(str("b"), str("x"))), `{"a":1,"b":"x"}`},
		{
			"duplicate key last wins",
			arr(kv(str("a"), num("1")), kv(str("a"), num("2"))),
			`{"a":2}`,
		},
		{
			"overwrite keeps first position",
			arr(kv(str("a"), num("1")), kv(str("b"), num("2")), kv(str("a"), num("3"))),
			`{"a":3,"b":2}`,
		},
		{
			"boolean key collides with integer",
			arr(kv(boolean(true), str("x")), kv(num("1"), str("y"))),
			`{"1":"y"}`,
		},
		{"false key", arr(kv(boolean(false), str("no"))), `{"0":"no"}`},
		{
			"numeric string key equals integer key",
			arr(kv(num("1"), str("a")), kv(str("1"), str("b"))),
			`{"1":"b"}`,
		},
		{
			"mixed entries make a list",
			arr(el(str("a")), kv(str("k"), str("v"))),
			`["a",{"k":"v"}]`,
		},
		{"concat", concat(str("foo"), str("bar")), `"foobar"`},
		{"concat number", concat(str("n"), num("42")), `"n42"`},
		{
			"nested concat",
			concat(concat(str("a"), str("b")), call("__", str("c"))),
			`"ab「c」"`,
		},
		{"identity call", call("_", str("hello")), `"「hello」"`},
		{"identity call no args", call("__"), `"「」"`},
		{"named call", call("t", str("hi")), `"「t(hi)」"`},
		{"named call args", call("trans", str("a"), num("2")), `"「trans(a, 2)」"`},
		{"named call no args", call("foo"), `"「」"`},
		{
			"nested map",
			arr(kv(str("a"), arr(kv(str("b"), arr(el(num("1")), el(boolean(true))))))),
			`{"a":{"b":[1,true]}}`,
		},
		{"boolean", boolean(false), `false`},
		{"float truncates", num("1.5"), `1`},
		{"keyed entry", kv(str("k"), str("v")), `{"k":"v"}`},
		{"bare entry", el(num("7")), `7`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ResolveValue(tt.node)
			if err != nil {
				t.Fatalf("ResolveValue(%s): %v", tt.node.Dump(), err)
			}

			if diff := cmp.Diff(tt.want, jsonOf(t, v)); diff != "" {
				t.Errorf("ResolveValue(%s) mismatch (-want +got):\n%s", tt.node.Dump(), diff)
			}
		})
	}
}

func TestResolveValue_Errors(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr error
	}{
		{"variable", variable("x"), ErrUnsupportedValueKind},
		{"variable in array", arr(kv(str("a"), variable("x"))), ErrUnsupportedValueKind},
		{"nil", nil, ErrUnsupportedValueKind},
		{"statement", &ExpressionStatement{Expression: arr()}, ErrUnsupportedValueKind},
		{"unsupported key", arr(kv(variable("k"), str("v"))), ErrUnsupportedKeyKind},
		{"concat key", arr(kv(concat(str("a"), str("b")), str("v"))), ErrUnsupportedKeyKind},
		{"concat boolean", concat(str("a"), boolean(true)), ErrUnsupportedCoercion},
		{"concat array", concat(arr(), str("a")), ErrUnsupportedCoercion},
		{"call array argument", call("t", arr(el(str("x")))), ErrUnsupportedCoercion},
		{"call variable argument", call("t", variable("x")), ErrUnsupportedValueKind},
		{"invalid number", num("abc"), ErrInvalidNumber},
		{"overflow", num("99999999999999999999"), ErrInvalidNumber},
		{"deep unsupported", arr(el(arr(el(arr(el(variable("deep"))))))), ErrUnsupportedValueKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveValue(tt.node)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestResolveValue_UnsupportedDiagnostics(t *testing.T) {
	_, err := ResolveValue(arr(el(variable("name"))))

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}

	if !strings.Contains(e.Error(), `"variable_name"`) {
		t.Errorf("expected kind tag in message, got %q", e.Error())
	}

	attrs := map[string]string{}
	for _, a := range e.Attrs() {
		attrs[a.Key] = a.Value.String()
	}

	if attrs["kind"] != "variable_name" {
		t.Errorf("kind attr = %q", attrs["kind"])
	}

	if !strings.Contains(attrs["node"], "$name") {
		t.Errorf("node attr = %q", attrs["node"])
	}
}

func TestResolveValue_MaxDepth(t *testing.T) {
	var n Node = num("1")
	for range 10 {
		n = arr(el(n))
	}

	_, err := ResolveValue(n, WithMaxDepth(5))
	if !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("expected ErrMaxDepthExceeded, got %v", err)
	}

	v, err := ResolveValue(n, WithMaxDepth(0))
	if err != nil {
		t.Fatalf("unlimited depth: %v", err)
	}

	if got := jsonOf(t, v); got != `[[[[[[[[[[1]]]]]]]]]]` {
		t.Errorf("unexpected value %s", got)
	}
}

func TestResolveKey(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want Key
	}{
		{"string", str("title"), StringKey("title")},
		{"empty string", str(""), StringKey("")},
		{"numeric string stays string", str("12"), StringKey("12")},
		{"integer", num("42"), IntKey(42)},
		{"leading zeros", num("007"), IntKey(7)},
		{"leading whitespace", num(" 12"), IntKey(12)},
		{"float", num("1.9"), IntKey(1)},
		{"hex prefix", num("0x1F"), IntKey(0)},
		{"negative", num("-3"), IntKey(-3)},
		{"true", boolean(true), IntKey(1)},
		{"false", boolean(false), IntKey(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveKey(tt.node)
			if err != nil {
				t.Fatalf("ResolveKey: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolveKey mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveKey_Errors(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr error
	}{
		{"nil", nil, ErrUnsupportedKeyKind},
		{"array", arr(), ErrUnsupportedKeyKind},
		{"call", call("k"), ErrUnsupportedKeyKind},
		{"variable", variable("k"), ErrUnsupportedKeyKind},
		{"not a number", num("x"), ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveKey(tt.node)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name    string
		value   *Value
		want    string
		wantErr bool
	}{
		{"string", NewString("abc"), "abc", false},
		{"integer", NewInteger(-12), "-12", false},
		{"boolean", NewBoolean(true), "", true},
		{"list", NewList(), "", true},
		{"map", NewMap(nil), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stringify(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedCoercion) {
					t.Errorf("expected ErrUnsupportedCoercion, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Stringify: %v", err)
			}

			if got != tt.want {
				t.Errorf("Stringify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveValue_Idempotent(t *testing.T) {
	n := arr(
		kv(str("a"), concat(str("x"), num("1"))),
		kv(str("b"), arr(el(call("t", str("y"))))),
	)

	first, err := ResolveValue(n)
	if err != nil {
		t.Fatalf("first: %v", err)
	}

	second, err := ResolveValue(n)
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if !first.Equal(second) {
		t.Errorf("results differ: %s vs %s", jsonOf(t, first), jsonOf(t, second))
	}
}
