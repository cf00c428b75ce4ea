package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/phparr/lang"
)

// Fmt converts the array literal returned by a PHP file to another format.
type Fmt struct {
	JSON JSON `cmd:"" default:"withargs" help:"Format as JSON (default)."`
	YAML YAML `cmd:""                    help:"Format as YAML."`
	Keys Keys `cmd:""                    help:"Format as flat \"path = value\" lines."`
	AST  AST  `cmd:""                    help:"Format the parsed syntax nodes without resolving them."`
}

// JSON converts input to JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)." short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	v, err := parseSource(ctx, "json", j.Source)
	if err != nil {
		return err
	}

	err = v.FormatJSON(ctx, streamsFrom(ctx).out, j.Indent)
	if err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("format", "json"))
	}

	return nil
}

// YAML converts input to YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)." short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	v, err := parseSource(ctx, "yaml", y.Source)
	if err != nil {
		return err
	}

	err = v.FormatYAML(ctx, streamsFrom(ctx).out, y.Indent)
	if err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("format", "yaml"))
	}

	return nil
}

// Keys lists every leaf of the input with its dotted key path.
type Keys struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the keys command.
func (k *Keys) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	v, err := parseSource(ctx, "keys", k.Source)
	if err != nil {
		return err
	}

	err = v.FormatKeys(ctx, streamsFrom(ctx).out)
	if err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("format", "keys"))
	}

	return nil
}

// AST prints the syntax nodes of the returned expression.
type AST struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the ast command.
func (a *AST) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src, err := readSource(ctx, a.Source)
	if err != nil {
		return err
	}

	nodes, err := lang.ParseNodes(ctx, src, parseOptionsFrom(ctx, "ast")...)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("format", "ast"))
	}

	err = lang.FormatNodes(streamsFrom(ctx).out, nodes)
	if err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("format", "ast"))
	}

	return nil
}
