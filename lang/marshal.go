package lang

import (
	"bytes"
	"encoding/json"
	"iter"
	"strconv"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler. Map entries keep their order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	err := v.appendJSON(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (v *Value) appendJSON(buf *bytes.Buffer) error {
	switch v.Kind {
	case KindList:
		buf.WriteByte('[')

		for i, item := range v.List {
			if i > 0 {
				buf.WriteByte(',')
			}

			err := item.appendJSON(buf)
			if err != nil {
				return err
			}
		}

		buf.WriteByte(']')

		return nil

	case KindMap:
		buf.WriteByte('{')

		i := 0
		for key, val := range v.Map.All() {
			if i > 0 {
				buf.WriteByte(',')
			}

			i++

			k, err := json.Marshal(key.String())
			if err != nil {
				return err
			}

			buf.Write(k)
			buf.WriteByte(':')

			err = val.appendJSON(buf)
			if err != nil {
				return err
			}
		}

		buf.WriteByte('}')

		return nil

	default:
		data, err := json.Marshal(v.Native())
		if err != nil {
			return err
		}

		buf.Write(data)

		return nil
	}
}

// MarshalYAML implements the goccy/go-yaml InterfaceMarshaler. Maps are
// emitted as [yaml.MapSlice] so entries keep their order.
func (v *Value) MarshalYAML() (any, error) {
	return v.yamlValue(), nil
}

func (v *Value) yamlValue() any {
	switch v.Kind {
	case KindList:
		out := make([]any, len(v.List))
		for i, item := range v.List {
			out[i] = item.yamlValue()
		}

		return out

	case KindMap:
		out := make(yaml.MapSlice, 0, v.Map.Len())
		for key, val := range v.Map.All() {
			out = append(out, yaml.MapItem{Key: key.native(), Value: val.yamlValue()})
		}

		return out

	default:
		return v.Native()
	}
}

// Native converts v to plain Go values: string, int64, bool, []any, and
// map[string]any. Map order is lost.
func (v *Value) Native() any {
	switch v.Kind {
	case KindString:
		return v.Str

	case KindInteger:
		return v.Int

	case KindBoolean:
		return v.Bool

	case KindList:
		out := make([]any, len(v.List))
		for i, item := range v.List {
			out[i] = item.Native()
		}

		return out

	case KindMap:
		out := make(map[string]any, v.Map.Len())
		for key, val := range v.Map.All() {
			out[key.String()] = val.Native()
		}

		return out

	default:
		return nil
	}
}

func (k Key) native() any {
	if k.Kind == KeyInteger {
		return k.Int
	}

	return k.Str
}

// Flatten returns an iterator over the leaves of v paired with their dotted
// key paths, in order. List elements use their index as path segment. Empty
// containers are yielded as leaves.
func (v *Value) Flatten() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		v.flatten("", yield)
	}
}

func (v *Value) flatten(prefix string, yield func(string, *Value) bool) bool {
	join := func(seg string) string {
		if prefix == "" {
			return seg
		}

		return prefix + "." + seg
	}

	switch {
	case v.Kind == KindList && len(v.List) > 0:
		for i, item := range v.List {
			if !item.flatten(join(strconv.Itoa(i)), yield) {
				return false
			}
		}

		return true

	case v.Kind == KindMap && v.Map.Len() > 0:
		for key, val := range v.Map.All() {
			if !val.flatten(join(key.String()), yield) {
				return false
			}
		}

		return true

	default:
		return yield(prefix, v)
	}
}
