package cmd

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/phparr/lang"
	"github.com/ardnew/phparr/log"
	"github.com/ardnew/phparr/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 4

// Init generates a configuration file with the current flag values.
type Init struct {
	Force  bool `help:"Overwrite existing configuration file." short:"f"`
	Stdout bool `help:"Print the configuration instead of writing the file."`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	if i.Stdout {
		err = writeConfig(ctx, streamsFrom(ctx).out, ktx)
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	err = writeConfig(ctx, file, ktx)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// writeConfig writes a PHP file returning one entry per configurable flag.
func writeConfig(ctx context.Context, w io.Writer, ktx *kong.Context) error {
	var sb strings.Builder

	sb.WriteString("<?php\n\nreturn [\n")

	pad := strings.Repeat(" ", defaultConfigIndent)

	for name, literal := range configEntries(ctx, ktx) {
		fmt.Fprintf(&sb, "%s%s => %s,\n", pad, lang.Quote(name), literal)
	}

	sb.WriteString("];\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

// configEntries yields the flag names and PHP literals of every flag that a
// configuration file can set.
func configEntries(
	ctx context.Context,
	ktx *kong.Context,
) iter.Seq2[string, string] {
	ignore := []string{"help", "version", profile.Tag}

	return func(yield func(string, string) bool) {
		for _, flag := range ktx.Model.Flags {
			if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
				return strings.HasPrefix(flag.Name, s)
			}) {
				continue
			}

			literal, ok := phpLiteral(ktx.FlagValue(flag))
			if !ok {
				log.TraceContext(ctx, "skipping flag",
					slog.String("flag", flag.Name),
				)

				continue
			}

			if !yield(flag.Name, literal) {
				return
			}
		}
	}
}

// phpLiteral renders a scalar flag value as a PHP literal. Empty strings and
// non-scalar values report false.
func phpLiteral(val any) (string, bool) {
	if val == nil {
		return "", false
	}

	rv := reflect.ValueOf(val)

	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true

	case reflect.String:
		if rv.String() == "" {
			return "", false
		}

		return lang.Quote(rv.String()), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true

	default:
		return "", false
	}
}
