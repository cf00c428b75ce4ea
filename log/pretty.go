package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/fatih/color"
)

// palette holds the colors of pretty output. Every color is disabled when
// the output is not a terminal.
type palette struct {
	key, str, num, time *color.Color
	yes, no, null       *color.Color
	trace, debug, info  *color.Color
	warn, err           *color.Color
}

func newPalette(enable bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c
	}

	return palette{
		key:   mk(color.FgHiBlack),
		str:   mk(color.FgCyan),
		num:   mk(color.FgYellow),
		time:  mk(color.FgBlue),
		yes:   mk(color.FgGreen),
		no:    mk(color.FgRed),
		null:  mk(color.FgHiBlack),
		trace: mk(color.FgMagenta),
		debug: mk(color.FgBlue),
		info:  mk(color.FgGreen),
		warn:  mk(color.FgYellow),
		err:   mk(color.FgRed, color.Bold),
	}
}

func (p palette) level(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler renders records for humans: one colorized line of key=value
// pairs, or an indented block when block is set.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	block  bool
	colors palette
	prefix string      // dotted group path applied to new attributes
	attrs  []slog.Attr // attributes from WithAttrs, already prefixed
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	block, colorize bool,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		mu:     &sync.Mutex{},
		w:      w,
		block:  block,
		colors: newPalette(colorize),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], h.prefixed(attrs)...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) prefixed(attrs []slog.Attr) []slog.Attr {
	if h.prefix == "" {
		return attrs
	}

	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: h.prefix + a.Key, Value: a.Value}
	}

	return out
}

func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		fields = append(fields, h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	level := h.replace(slog.Any(slog.LevelKey, r.Level))
	fields = append(fields, level)

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			fields = append(fields,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	fields = append(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.prefixed([]slog.Attr{a})...)

		return true
	})

	var buf bytes.Buffer

	if h.block {
		buf.WriteString("{\n")
	}

	n := 0
	for _, a := range fields {
		h.writeAttr(&buf, "", a, r.Level, &n)
	}

	if h.block {
		buf.WriteString("\n}")
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// writeAttr writes a, flattening groups into dotted keys. Empty attributes
// are skipped.
func (h *prettyHandler) writeAttr(
	buf *bytes.Buffer,
	prefix string,
	a slog.Attr,
	level slog.Level,
	n *int,
) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, prefix+a.Key+".", ga, level, n)
		}

		return
	}

	switch {
	case h.block && *n > 0:
		buf.WriteString(",\n")
	case *n > 0:
		buf.WriteByte(' ')
	}

	*n++

	if h.block {
		buf.WriteString("  ")
		buf.WriteString(h.colors.key.Sprint(prefix + a.Key))
		buf.WriteString(": ")
	} else {
		buf.WriteString(h.colors.key.Sprint(prefix + a.Key))
		buf.WriteByte('=')
	}

	if prefix == "" && a.Key == slog.LevelKey {
		buf.WriteString(h.colors.level(level).Sprint(a.Value.String()))

		return
	}

	h.writeValue(buf, a.Value)
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	p := h.colors

	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(p.str.Sprint(v.String()))

	case slog.KindInt64:
		buf.WriteString(p.num.Sprint(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(p.num.Sprint(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(p.num.Sprint(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(p.yes.Sprint("true"))
		} else {
			buf.WriteString(p.no.Sprint("false"))
		}

	case slog.KindDuration:
		buf.WriteString(p.num.Sprint(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(p.time.Sprint(v.Time().String()))

	default:
		if v.Any() == nil {
			buf.WriteString(p.null.Sprint("null"))

			return
		}

		buf.WriteString(p.str.Sprint(v.String()))
	}
}
