// Package profile provides optional runtime profiling for phparr.
//
// Profiling is backed by [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof .
//	phparr --pprof-mode cpu fmt big.php
//
// Without the tag, [Modes] is empty and [Config.Start] is a no-op.
//
// Profiles are written to the selected directory (by default the "pprof"
// directory under the user cache directory) and can be inspected with
// "go tool pprof". Builds with the tag also register the [net/http/pprof]
// handlers on the default mux.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
