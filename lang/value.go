package lang

import (
	"iter"
	"strconv"
)

// Kind indicates the type of a [Value].
type Kind int

const (
	// KindString is a string scalar.
	KindString Kind = iota

	// KindInteger is a 64-bit signed integer scalar.
	KindInteger

	// KindBoolean is a boolean scalar.
	KindBoolean

	// KindList is an ordered sequence of values.
	KindList

	// KindMap is a key-ordered mapping.
	KindMap
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"

	case KindInteger:
		return "Integer"

	case KindBoolean:
		return "Boolean"

	case KindList:
		return "List"

	case KindMap:
		return "Map"

	default:
		return "Unknown"
	}
}

// Value is the language-neutral result of converting a PHP array literal.
type Value struct {
	Kind Kind
	// Exactly one of these is meaningful based on Kind
	Str  string
	Int  int64
	Bool bool
	List []*Value
	Map  *Map
}

// NewString creates a string value.
func NewString(s string) *Value { return &Value{Kind: KindString, Str: s} }

// NewInteger creates an integer value.
func NewInteger(i int64) *Value { return &Value{Kind: KindInteger, Int: i} }

// NewBoolean creates a boolean value.
func NewBoolean(b bool) *Value { return &Value{Kind: KindBoolean, Bool: b} }

// NewList creates a list value holding items in order.
func NewList(items ...*Value) *Value {
	if items == nil {
		items = []*Value{}
	}

	return &Value{Kind: KindList, List: items}
}

// NewMap creates a map value. A nil m yields an empty map.
func NewMap(m *Map) *Value {
	if m == nil {
		m = new(Map)
	}

	return &Value{Kind: KindMap, Map: m}
}

// IsScalar reports whether v is a string, integer, or boolean.
func (v *Value) IsScalar() bool {
	return v.Kind == KindString || v.Kind == KindInteger || v.Kind == KindBoolean
}

// Len returns the number of elements of a list or map, and 0 otherwise.
func (v *Value) Len() int {
	switch v.Kind {
	case KindList:
		return len(v.List)

	case KindMap:
		return v.Map.Len()

	default:
		return 0
	}
}

// Equal reports whether v and w are structurally equal. Map order is
// significant.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}

	if v.Kind != w.Kind {
		return false
	}

	switch v.Kind {
	case KindString:
		return v.Str == w.Str

	case KindInteger:
		return v.Int == w.Int

	case KindBoolean:
		return v.Bool == w.Bool

	case KindList:
		if len(v.List) != len(w.List) {
			return false
		}

		for i := range v.List {
			if !v.List[i].Equal(w.List[i]) {
				return false
			}
		}

		return true

	case KindMap:
		return v.Map.Equal(w.Map)

	default:
		return false
	}
}

// KeyKind indicates the type of a [Key].
type KeyKind int

const (
	// KeyString is a string key.
	KeyString KeyKind = iota

	// KeyInteger is an integer key.
	KeyInteger
)

// Key is a mapping key: either a string or an integer.
type Key struct {
	Kind KeyKind
	Str  string
	Int  int64
}

// StringKey creates a string key.
func StringKey(s string) Key { return Key{Kind: KeyString, Str: s} }

// IntKey creates an integer key.
func IntKey(i int64) Key { return Key{Kind: KeyInteger, Int: i} }

// String returns the canonical text of the key. Keys with equal canonical
// text address the same map slot.
func (k Key) String() string {
	if k.Kind == KeyInteger {
		return strconv.FormatInt(k.Int, 10)
	}

	return k.Str
}

// Map is an insertion-ordered mapping from [Key] to [*Value].
//
// The zero value is an empty map ready to use.
type Map struct {
	keys   []Key
	values []*Value
	index  map[string]int
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Set stores val under key. An existing key keeps its position and has its
// value replaced.
func (m *Map) Set(key Key, val *Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}

	id := key.String()
	if i, ok := m.index[id]; ok {
		m.values[i] = val

		return
	}

	m.index[id] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, val)
}

// Get returns the value stored under key.
func (m *Map) Get(key Key) (*Value, bool) {
	if m == nil || m.index == nil {
		return nil, false
	}

	i, ok := m.index[key.String()]
	if !ok {
		return nil, false
	}

	return m.values[i], true
}

// Merge copies every entry of other into m in order, last write wins.
func (m *Map) Merge(other *Map) {
	for k, v := range other.All() {
		m.Set(k, v)
	}
}

// Keys returns the keys in order.
func (m *Map) Keys() []Key {
	if m == nil {
		return nil
	}

	return append([]Key(nil), m.keys...)
}

// All returns an iterator over the entries in order.
func (m *Map) All() iter.Seq2[Key, *Value] {
	return func(yield func(Key, *Value) bool) {
		if m == nil {
			return
		}

		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

// Equal reports whether m and n hold equal entries in the same order.
func (m *Map) Equal(n *Map) bool {
	if m.Len() != n.Len() {
		return false
	}

	for i := range m.Len() {
		if m.keys[i].String() != n.keys[i].String() {
			return false
		}

		if !m.values[i].Equal(n.values[i]) {
			return false
		}
	}

	return true
}
