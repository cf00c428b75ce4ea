package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares two PHP files by their converted values.
//
// Both inputs are flattened to "path = value" lines, so formatting, quoting
// style, and comments do not produce differences. Only changed lines are
// printed unless --all is set. The command fails with [ErrFilesDiffer] when
// the inputs differ.
type Diff struct {
	All   bool   `help:"Print unchanged lines too."                          short:"a"`
	Quiet bool   `help:"Print nothing; report differences by exit status."   short:"q"`
	Color string `default:"auto" enum:"auto,always,never" help:"Colorize output (${enum})."`

	A string `arg:"" help:"First source file or '-' for stdin."  name:"a"`
	B string `arg:"" help:"Second source file or '-' for stdin." name:"b"`
}

// Run executes the diff command.
func (d *Diff) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if d.A == stdinSource && d.B == stdinSource {
		return ErrSameSource
	}

	a, err := d.keys(ctx, d.A)
	if err != nil {
		return err
	}

	b, err := d.keys(ctx, d.B)
	if err != nil {
		return err
	}

	if a == b {
		return nil
	}

	if !d.Quiet {
		out := streamsFrom(ctx).out

		err = d.write(out, diffLines(a, b))
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return ErrFilesDiffer.With(
		slog.String("a", d.A),
		slog.String("b", d.B),
	)
}

func (d *Diff) keys(ctx context.Context, path string) (string, error) {
	v, err := parseSource(ctx, "diff", path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	err = v.FormatKeys(ctx, &buf)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// diffLines returns the line-level differences from a to b.
func diffLines(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()

	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)

	return dmp.DiffCharsToLines(diffs, lines)
}

func (d *Diff) write(w io.Writer, diffs []diffmatchpatch.Diff) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	same := color.New(color.Reset)

	if d.colorize(w) {
		for _, c := range []*color.Color{del, ins, same} {
			c.EnableColor()
		}
	} else {
		for _, c := range []*color.Color{del, ins, same} {
			c.DisableColor()
		}
	}

	for _, diff := range diffs {
		var (
			prefix string
			c      *color.Color
		)

		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", del
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", ins
		default:
			if !d.All {
				continue
			}

			prefix, c = " ", same
		}

		for line := range strings.Lines(diff.Text) {
			_, err := c.Fprint(w, prefix+strings.TrimSuffix(line, "\n"))
			if err != nil {
				return err
			}

			_, err = io.WriteString(w, "\n")
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (d *Diff) colorize(w io.Writer) bool {
	switch d.Color {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
