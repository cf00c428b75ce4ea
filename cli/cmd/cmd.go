package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/phparr/lang"
	"github.com/ardnew/phparr/log"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

type (
	contextKey struct{}
	optionsKey struct{}
	streamsKey struct{}
)

// streams are the standard input and output of a command.
type streams struct {
	in  io.Reader
	out io.Writer
}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithParseOptions returns a context whose commands parse input with opts.
func WithParseOptions(ctx context.Context, opts ...lang.Option) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

// parseOptionsFrom returns the options stored by [WithParseOptions] plus a
// logger scoped to the command.
func parseOptionsFrom(ctx context.Context, command string) []lang.Option {
	opts, _ := ctx.Value(optionsKey{}).([]lang.Option)

	logger := log.With(slog.String("command", command))

	return append([]lang.Option{lang.WithLogger(logger)}, opts...)
}

// WithStreams returns a context whose commands read "-" from in and write to
// out. Nil streams fall back to os.Stdin and os.Stdout.
func WithStreams(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	return context.WithValue(ctx, streamsKey{}, streams{in: in, out: out})
}

func streamsFrom(ctx context.Context) streams {
	s, _ := ctx.Value(streamsKey{}).(streams)

	if s.in == nil {
		s.in = os.Stdin
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	return s
}

// parseSource converts the PHP file at path, or stdin when path is "-".
func parseSource(ctx context.Context, command, path string) (*lang.Value, error) {
	opts := parseOptionsFrom(ctx, command)

	var (
		v   *lang.Value
		err error
	)

	if path == stdinSource {
		v, err = lang.ParseReader(ctx, bufio.NewReader(streamsFrom(ctx).in), opts...)
	} else {
		v, err = lang.ParseFile(ctx, path, opts...)
	}

	if err != nil {
		return nil, lang.WrapError(err).
			With(slog.String("command", command))
	}

	return v, nil
}

// readSource returns the raw text of path, or of stdin when path is "-".
func readSource(ctx context.Context, path string) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == stdinSource {
		data, err = io.ReadAll(streamsFrom(ctx).in)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return "", lang.ErrReadInput.Wrap(err).
			With(slog.String("file", path))
	}

	return string(data), nil
}
