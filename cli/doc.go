// Package cli contains the command line interface for phparr.
//
// # Usage
//
//	phparr [flags] <command> [args]
//
// Commands:
//
//   - fmt json|yaml|keys|ast: convert the array returned by a PHP file
//     (json is the default, so "phparr site.php" prints JSON)
//   - get: evaluate an expression against the converted array
//   - diff: compare two files by their converted arrays
//   - browse: explore a converted array interactively
//   - init: write a configuration file with the current flag values
//
// Every source argument accepts "-" for stdin, except browse.
//
// # Configuration
//
// Flag defaults are read from config.php in the user configuration
// directory. The file is itself a PHP array literal, converted with the
// same parser the commands use:
//
//	<?php
//	return [
//	    'log-level' => 'debug',
//	    'max-depth' => 64,
//	];
//
// Keys are flag names. Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp layout (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize and indent log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: the pprof
//     directory under the user cache directory)
package cli
