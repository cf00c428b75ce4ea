package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/phparr/lang"
)

// Get evaluates an expression against the converted input.
//
// The whole value is bound to "data"; the top-level entries of a map are
// also bound by key:
//
//	phparr get config.php 'db.host'
//	phparr get config.php 'len(data.servers) > 2'
type Get struct {
	Indent int  `default:"2" help:"Indent width for JSON output (0 for compact)." short:"i"`
	Raw    bool `help:"Print string results without JSON quoting."                short:"r"`

	Source string `arg:"" help:"Source input file or '-' for default stdin." name:"source"`
	Expr   string `arg:"" help:"Expression to evaluate."                      name:"expr"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	v, err := parseSource(ctx, "get", g.Source)
	if err != nil {
		return err
	}

	result, err := lang.Query(ctx, v, g.Expr)
	if err != nil {
		return err
	}

	out := streamsFrom(ctx).out

	if s, ok := result.(string); ok && g.Raw {
		_, err = fmt.Fprintln(out, s)
	} else {
		var data []byte

		if g.Indent > 0 {
			data, err = json.MarshalIndent(result, "", strings.Repeat(" ", g.Indent))
		} else {
			data, err = json.Marshal(result)
		}

		if err == nil {
			_, err = fmt.Fprintln(out, string(data))
		}
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err).
			With(slog.String("expr", g.Expr))
	}

	return nil
}
