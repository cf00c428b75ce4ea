package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// FormatJSON writes v as JSON to the writer.
func (v *Value) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}

	if indent > 0 {
		var buf bytes.Buffer

		err = json.Indent(&buf, data, "", strings.Repeat(" ", indent))
		if err != nil {
			return err
		}

		data = buf.Bytes()
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes v as YAML to the writer.
func (v *Value) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, v.yamlValue(), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

// FormatKeys writes one "path = value" line per leaf of v.
func (v *Value) FormatKeys(_ context.Context, w io.Writer) error {
	for path, leaf := range v.Flatten() {
		_, err := fmt.Fprintln(w, KeyLine(path, leaf))
		if err != nil {
			return err
		}
	}

	return nil
}

// KeyLine renders a flattened leaf as "path = value". String leaves are
// quoted so that empty and whitespace-only values stay visible.
func KeyLine(path string, leaf *Value) string {
	return path + " = " + leaf.Literal()
}

// Literal renders v on a single line: strings quoted, other scalars bare,
// and containers in compact JSON.
func (v *Value) Literal() string {
	if v.Kind == KindString {
		data, _ := json.Marshal(v.Str)

		return string(data)
	}

	data, err := v.MarshalJSON()
	if err != nil {
		return "<" + v.Kind.String() + ">"
	}

	return string(data)
}

// FormatNodes writes the diagnostic dump of each node on its own line.
func FormatNodes(w io.Writer, nodes []Node) error {
	for _, n := range nodes {
		_, err := fmt.Fprintln(w, dump(n))
		if err != nil {
			return err
		}
	}

	return nil
}
