package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/phparr/cli/cmd/browse"
	"github.com/ardnew/phparr/log"
)

// Browse opens an interactive session over the converted input.
type Browse struct {
	Source string `arg:"" help:"Source input file." name:"source" type:"existingfile"`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	v, err := parseSource(ctx, "browse", b.Source)
	if err != nil {
		return err
	}

	cacheDir := kongContextFrom(ctx).Model.Vars()[CacheIdentifier]

	err = browse.Run(ctx, v, cacheDir, log.With(slog.String("command", "browse")))
	if err != nil {
		return ErrBrowse.Wrap(err)
	}

	return nil
}
