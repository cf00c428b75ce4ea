package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/phparr/lang"
	"github.com/ardnew/phparr/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads a PHP
// configuration file with [lang.ParseReader]:
//
//	<?php
//	return [
//	    'log-level'  => 'debug',
//	    'log_pretty' => false,
//	    'max-depth'  => 64,
//	];
//
// Keys are flag names, with hyphens or underscores. Nested arrays and lists
// are ignored. A file that fails to parse is logged and yields no values, so
// a broken configuration never prevents the command from running.
// Command-line flags override config file values.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		v, err := lang.ParseReader(ctx, r)
		if err != nil {
			log.WarnContext(ctx, "ignoring configuration file",
				slog.Any("error", lang.WrapError(err)),
			)

			return config{}, nil
		}

		return makeConfig(v), nil
	}
}

// config implements [kong.Resolver] over the top-level scalars of a PHP
// configuration array.
type config map[string]any

// makeConfig collects the scalar entries of a map value. Kong parses numbers
// from their string form.
func makeConfig(v *lang.Value) config {
	c := config{}

	if v.Kind != lang.KindMap {
		return c
	}

	for key, val := range v.Map.All() {
		switch val.Kind {
		case lang.KindString:
			c[key.String()] = val.Str

		case lang.KindInteger:
			c[key.String()] = strconv.FormatInt(val.Int, 10)

		case lang.KindBoolean:
			c[key.String()] = val.Bool

		default:
		}
	}

	return c
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	for _, name := range []string{
		flag.Name,
		strings.ReplaceAll(flag.Name, "-", "_"),
	} {
		if value, ok := c[name]; ok {
			return value, nil
		}
	}

	return nil, nil //nolint:nilnil
}
