package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	a := `<?php return ['a' => 1, 'b' => 2];`
	b := `<?php
return array(
    "a" => 1, // same value, different quoting
    "b" => 3,
    "c" => true,
);`

	tests := []struct {
		name string
		diff Diff
		want string
	}{
		{"changes only", Diff{Color: "never"}, "-b = 2\n+b = 3\n+c = true\n"},
		{"all lines", Diff{Color: "never", All: true}, " a = 1\n-b = 2\n+b = 3\n+c = true\n"},
		{"quiet", Diff{Color: "never", Quiet: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := stdin(a)

			tt.diff.A = stdinSource
			tt.diff.B = writeSource(t, b)

			err := tt.diff.Run(ctx)
			if !errors.Is(err, ErrFilesDiffer) {
				t.Fatalf("error = %v, want ErrFilesDiffer", err)
			}

			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiff_Equal(t *testing.T) {
	ctx, out := stdin(`<?php return ['x' => 'y' . 'z', 'n' => [1, 2]];`)

	d := Diff{
		Color: "never",
		A:     stdinSource,
		B:     writeSource(t, `<?php return ["x" => "yz", "n" => array(1, 2)];`),
	}

	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("no output expected for equal inputs, got %q", out.String())
	}
}

func TestDiff_BothStdin(t *testing.T) {
	ctx, _ := stdin("")

	err := (&Diff{A: stdinSource, B: stdinSource}).Run(ctx)
	if !errors.Is(err, ErrSameSource) {
		t.Errorf("error = %v, want ErrSameSource", err)
	}
}

func TestDiff_Color(t *testing.T) {
	var buf bytes.Buffer

	d := Diff{Color: "always"}
	if err := d.write(&buf, diffLines("a = 1\n", "a = 2\n")); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); !strings.Contains(got, "\x1b[31m-a = 1") ||
		!strings.Contains(got, "\x1b[32m+a = 2") {
		t.Errorf("expected red deletion and green insertion, got %q", got)
	}

	for _, tt := range []struct {
		color string
		w     io.Writer
		want  bool
	}{
		{"always", &buf, true},
		{"never", os.Stdout, false},
		{"auto", &buf, false},
	} {
		d := Diff{Color: tt.color}
		if got := d.colorize(tt.w); got != tt.want {
			t.Errorf("colorize(%s) = %v, want %v", tt.color, got, tt.want)
		}
	}
}

func TestDiff_ParseError(t *testing.T) {
	d := Diff{A: writeSource(t, "<?php return [1, 2"), B: stdinSource}

	ctx, _ := stdin("<?php return [];")

	err := d.Run(ctx)
	if err == nil || errors.Is(err, ErrFilesDiffer) {
		t.Errorf("expected a parse error, got %v", err)
	}
}
