package lang

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap_SetGet(t *testing.T) {
	var m Map

	m.Set(StringKey("b"), NewInteger(1))
	m.Set(IntKey(2), NewString("two"))
	m.Set(StringKey("a"), NewBoolean(true))
	m.Set(StringKey("2"), NewString("again"))

	if m.Len() != 3 {
		t.Fatalf("Len = %d, want 3", m.Len())
	}

	keys := make([]string, 0, m.Len())
	for _, k := range m.Keys() {
		keys = append(keys, k.String())
	}

	if diff := cmp.Diff([]string{"b", "2", "a"}, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}

	v, ok := m.Get(IntKey(2))
	if !ok || v.Str != "again" {
		t.Errorf("Get(2) = %v, %v", v, ok)
	}

	if _, ok := m.Get(StringKey("missing")); ok {
		t.Error("Get(missing) reported found")
	}
}

func TestMap_NilAndZero(t *testing.T) {
	var nilMap *Map

	if nilMap.Len() != 0 {
		t.Error("nil map should have zero length")
	}

	if _, ok := nilMap.Get(StringKey("a")); ok {
		t.Error("nil map Get reported found")
	}

	for k := range nilMap.All() {
		t.Errorf("nil map yielded key %v", k)
	}

	if nilMap.Keys() != nil {
		t.Error("nil map Keys should be nil")
	}

	if NewMap(nil).Map == nil {
		t.Error("NewMap(nil) should allocate an empty map")
	}
}

func TestMap_Merge(t *testing.T) {
	var a, b Map

	a.Set(StringKey("x"), NewInteger(1))
	a.Set(StringKey("y"), NewInteger(2))
	b.Set(StringKey("y"), NewInteger(20))
	b.Set(StringKey("z"), NewInteger(30))

	a.Merge(&b)

	got := map[string]int64{}
	order := []string{}

	for k, v := range a.All() {
		got[k.String()] = v.Int
		order = append(order, k.String())
	}

	if diff := cmp.Diff([]string{"x", "y", "z"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(map[string]int64{"x": 1, "y": 20, "z": 30}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestValue_Equal(t *testing.T) {
	mk := func(keys ...string) *Value {
		m := new(Map)
		for i, k := range keys {
			m.Set(StringKey(k), NewInteger(int64(i)))
		}

		return NewMap(m)
	}

	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"strings", NewString("a"), NewString("a"), true},
		{"different kinds", NewString("1"), NewInteger(1), false},
		{"lists", NewList(NewInteger(1)), NewList(NewInteger(1)), true},
		{"list lengths", NewList(NewInteger(1)), NewList(), false},
		{"maps", mk("a", "b"), mk("a", "b"), true},
		{"map order", mk("a", "b"), mk("b", "a"), false},
		{"nil", nil, nil, true},
		{"nil and value", nil, NewBoolean(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_LenAndScalar(t *testing.T) {
	if NewList(NewString("a"), NewString("b")).Len() != 2 {
		t.Error("list Len")
	}

	if NewString("abc").Len() != 0 {
		t.Error("scalar Len should be 0")
	}

	if !NewInteger(1).IsScalar() || NewList().IsScalar() {
		t.Error("IsScalar")
	}

	if NewList().List == nil {
		t.Error("NewList() should not hold a nil slice")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "String"},
		{KindInteger, "Integer"},
		{KindBoolean, "Boolean"},
		{KindList, "List"},
		{KindMap, "Map"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNodeKind_Tag(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{str("a"), "string"},
		{num("1"), "number"},
		{boolean(true), "boolean"},
		{el(str("a")), "entry"},
		{arr(), "array"},
		{concat(str("a"), str("b")), "bin"},
		{call("f"), "call"},
		{&ExpressionStatement{}, "expressionstatement"},
		{variable("x"), "variable_name"},
	}

	for _, tt := range tests {
		if got := tt.node.Tag(); got != tt.want {
			t.Errorf("%T.Tag() = %q, want %q", tt.node, got, tt.want)
		}
	}

	if NodeUnsupported.String() != "unsupported" {
		t.Errorf("NodeUnsupported.String() = %q", NodeUnsupported.String())
	}
}

func TestNode_Dump(t *testing.T) {
	n := arr(
		kv(str("a"), concat(str("x"), num("1"))),
		el(call("t", str("y"), boolean(false))),
		el(&ArrayEntry{}),
	)

	want := `(array (entry (string "a") => (bin . (string "x") (number 1))) ` +
		`(entry (call t (string "y") (boolean false))) (entry (entry ())))`

	if diff := cmp.Diff(want, n.Dump()); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
}
