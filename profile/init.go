package profile

// Config returns every profiling parameter. Options derive a new Config from
// an existing one, so a zero-argument literal serves as the starting point:
//
//	var cfg profile.Config = func() (string, string, bool) { return "", "", false }
//	cfg = profile.WithMode("cpu")(cfg)
type Config func() (mode, path string, quiet bool)

// Option derives a modified [Config].
type Option func(Config) Config

// Make returns the Config produced by applying opts to an empty one.
func Make(opts ...Option) Config {
	c := Config(func() (string, string, bool) { return "", "", false })

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// Start starts the profiler and returns a handle for stopping it.
//
// An empty mode, an unknown mode, or a build without the pprof tag yields a
// no-op handle. Both Start and Stop are always safe to call.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// WithMode sets the profiling mode, one of [Modes].
func WithMode(mode string) Option {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithPath sets the profile output directory.
func WithPath(path string) Option {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

type ignore struct{}

func (ignore) Stop() {}
