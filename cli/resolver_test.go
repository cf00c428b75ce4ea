package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/phparr/lang"
)

func TestMakeConfig(t *testing.T) {
	v, err := lang.Parse(context.Background(), `<?php
return [
    'log-level'  => 'debug',
    'log_pretty' => false,
    'max-depth'  => 64,
    'nested'     => ['a' => 1],
    'list'       => [1, 2],
    7            => 'numeric key',
];`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := config{
		"log-level":  "debug",
		"log_pretty": false,
		"max-depth":  "64",
		"7":          "numeric key",
	}

	if diff := cmp.Diff(want, makeConfig(v)); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestMakeConfig_NotMap(t *testing.T) {
	if got := makeConfig(lang.NewList(lang.NewString("x"))); len(got) != 0 {
		t.Errorf("list root should yield an empty config, got %v", got)
	}
}

func TestResolve_BrokenFile(t *testing.T) {
	r, err := resolve(context.Background())(strings.NewReader("<?php return [1, 2"))
	if err != nil {
		t.Fatalf("broken configuration must not fail: %v", err)
	}

	if c, ok := r.(config); !ok || len(c) != 0 {
		t.Errorf("broken configuration should resolve nothing, got %#v", r)
	}
}

// TestResolve_Flags runs a kong parser against a PHP configuration file.
func TestResolve_Flags(t *testing.T) {
	var cli struct {
		LogLevel  string `default:"info"`
		LogPretty bool   `default:"true"  negatable:""`
		MaxDepth  int    `default:"512"`
		Other     string `default:"kept"`
	}

	src := `<?php return ['log-level' => 'debug', 'log_pretty' => false, 'max-depth' => 64];`

	r, err := resolve(context.Background())(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	parser, err := kong.New(&cli, kong.Resolvers(r))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"--max-depth=8"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cli.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cli.LogLevel)
	}

	if cli.LogPretty {
		t.Error("LogPretty should resolve from the underscore key")
	}

	if cli.MaxDepth != 8 {
		t.Errorf("MaxDepth = %d, command line should override the file", cli.MaxDepth)
	}

	if cli.Other != "kept" {
		t.Errorf("Other = %q, want the default", cli.Other)
	}
}
