package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/phparr/lang"
)

// initFlags mirrors the kinds of flags the application exposes.
type initFlags struct {
	LogLevel   string   `default:"info"`
	LogPretty  bool     `default:"true"`
	MaxDepth   int      `default:"512"`
	Quote      string   `default:"it's"`
	Empty      string
	Tags       []string
	Secret     string   `default:"x"    hidden:""`
	PprofMode  string   `default:"cpu"`
	VersionArg bool     `name:"version"`
}

func initContext(t *testing.T, confPath string) context.Context {
	t.Helper()

	var cli initFlags

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx)
}

const wantConfig = `<?php

return [
    'log-level' => 'info',
    'log-pretty' => true,
    'max-depth' => 512,
    'quote' => 'it\'s',
];
`

func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		setup   func(t *testing.T, path string)
		wantErr error
	}{
		{
			name: "create_new_config",
		},
		{
			name:  "overwrite_existing_with_force",
			force: true,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o600); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "fail_without_force",
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o600); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrFileExists,
		},
		{
			name: "missing_directory",
			setup: func(t *testing.T, path string) {
				if err := os.Remove(filepath.Dir(path)); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrWriteConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.php")

			if tt.setup != nil {
				tt.setup(t, confPath)
			}

			ctx := initContext(t, confPath)

			err := (&Init{Force: tt.force}).Run(ctx)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Init.Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Init.Run() error = %v", err)
			}

			content, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(wantConfig, string(content)); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInitRun_Stdout(t *testing.T) {
	confPath := filepath.Join(t.TempDir(), "config.php")

	var out bytes.Buffer

	ctx := WithStreams(initContext(t, confPath), nil, &out)

	if err := (&Init{Stdout: true}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(confPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("--stdout must not write the configuration file")
	}

	v, err := lang.Parse(ctx, out.String())
	if err != nil {
		t.Fatalf("generated configuration does not parse: %v", err)
	}

	got, err := v.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	want := `{"log-level":"info","log-pretty":true,"max-depth":512,"quote":"it's"}`
	if string(got) != want {
		t.Errorf("round trip = %s, want %s", got, want)
	}
}

func TestPHPLiteral(t *testing.T) {
	type level string

	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{true, "true", true},
		{"a'b", `'a\'b'`, true},
		{level("debug"), "'debug'", true},
		{int64(-3), "-3", true},
		{uint8(7), "7", true},
		{"", "", false},
		{nil, "", false},
		{[]string{"x"}, "", false},
		{1.5, "", false},
	}

	for _, tt := range tests {
		got, ok := phpLiteral(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("phpLiteral(%#v) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
