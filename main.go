package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ardnew/phparr/cli"
	"github.com/ardnew/phparr/cli/cmd"
	"github.com/ardnew/phparr/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)

	switch {
	case err == nil:

	case errors.Is(err, cmd.ErrFilesDiffer):
		// diff already printed the differences
		os.Exit(1)

	default:
		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		os.Exit(2)
	}
}
