package lang

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// rootName is the environment variable bound to the whole value.
const rootName = "data"

// QueryEnv returns the expr-lang environment for v. The whole value is bound
// to "data"; when v is a map its top-level entries are also bound by key.
func QueryEnv(v *Value) map[string]any {
	env := make(map[string]any)

	if native, ok := v.Native().(map[string]any); ok {
		for k, val := range native {
			env[k] = val
		}

		env[rootName] = native
	} else {
		env[rootName] = v.Native()
	}

	return env
}

// Query compiles and runs an expr-lang expression against v.
func Query(_ context.Context, v *Value, source string) (any, error) {
	env := QueryEnv(v)

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrQueryCompile.Wrap(err).
			With(slog.String("source", source))
	}

	return run(program, env, source)
}

func run(program *vm.Program, env map[string]any, source string) (any, error) {
	result, err := vm.Run(program, env)
	if err != nil {
		return nil, ErrQueryEvaluate.Wrap(err).
			With(slog.String("source", source))
	}

	return result, nil
}
