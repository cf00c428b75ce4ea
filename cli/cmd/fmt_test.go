package cmd

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/phparr/lang"
)

const fmtSource = `<?php
// generated
return [
    'b' => 1,
    'a' => [true, 'x'],
];
`

func TestFmt(t *testing.T) {
	tests := []struct {
		name string
		cmd  interface{ Run(context.Context) error }
		want string
	}{
		{
			name: "json compact",
			cmd:  &JSON{Indent: 0, Source: stdinSource},
			want: `{"b":1,"a":[true,"x"]}` + "\n",
		},
		{
			name: "json indented",
			cmd:  &JSON{Indent: 2, Source: stdinSource},
			want: "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    \"x\"\n  ]\n}\n",
		},
		{
			name: "keys",
			cmd:  &Keys{Source: stdinSource},
			want: "b = 1\na.0 = true\na.1 = \"x\"\n",
		},
		{
			name: "ast",
			cmd:  &AST{Source: stdinSource},
			want: `(expressionstatement (array (entry (string "b") => (number 1)) ` +
				`(entry (string "a") => (array (entry (boolean true)) (entry (string "x"))))))` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := stdin(fmtSource)

			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Run: %v", err)
			}

			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFmt_YAML(t *testing.T) {
	ctx, out := stdin(fmtSource)

	if err := (&YAML{Indent: 2, Source: stdinSource}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()

	b, a := strings.Index(got, "b: 1"), strings.Index(got, "a:")
	if b < 0 || a < 0 || b > a {
		t.Errorf("YAML should keep source order, got:\n%s", got)
	}
}

func TestFmt_File(t *testing.T) {
	path := writeSource(t, fmtSource)
	ctx, out := stdin("")

	if err := (&JSON{Source: path}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := out.String(); got != `{"b":1,"a":[true,"x"]}`+"\n" {
		t.Errorf("output = %q", got)
	}
}

func TestFmt_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"syntax", "<?php return ['a' => ;", lang.ErrSyntax},
		{"unsupported value", "<?php return ['a' => null];", lang.ErrUnsupportedValueKind},
		{"unsupported key", "<?php return [$k => 1];", lang.ErrUnsupportedKeyKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := stdin(tt.input)

			err := (&JSON{Source: stdinSource}).Run(ctx)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}

			if out.Len() != 0 {
				t.Errorf("no output expected on error, got %q", out.String())
			}
		})
	}
}

func TestFmt_NoArray(t *testing.T) {
	ctx, out := stdin("<?php echo 'hi';")

	if err := (&JSON{Source: stdinSource}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := out.String(); got != "{}\n" {
		t.Errorf("output = %q, want %q", got, "{}\n")
	}
}
