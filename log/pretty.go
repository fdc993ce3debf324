package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of the pretty handler. Styles are bound to the
// handler's writer, so output that is not a terminal carries no escape codes.
type palette struct {
	key, str, num, duration, timestamp lipgloss.Style
	debug, info, warn, err, yes, no    lipgloss.Style
}

func makePalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style { return r.NewStyle().Foreground(lipgloss.Color(c)) }

	return &palette{
		key:       fg("8"),
		str:       fg("6"),
		num:       fg("3"),
		duration:  fg("5"),
		timestamp: fg("4"),
		debug:     fg("4"),
		info:      fg("2"),
		warn:      fg("3"),
		err:       fg("1"),
		yes:       fg("2"),
		no:        fg("1"),
	}
}

// prettyTextHandler implements a colorized key=value handler.
type prettyTextHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
	style *palette
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: makePalette(w),
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, h.replace(slog.Time(slog.TimeKey, r.Time)))
	}

	h.writeAttr(buf, h.replace(slog.Any(slog.LevelKey, r.Level)))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, slog.String(
				slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{
		opts:  h.opts,
		mu:    h.mu,
		w:     h.w,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
		style: h.style,
	}
}

// WithGroup is not supported; grouped attributes are written flat.
func (h *prettyTextHandler) WithGroup(string) slog.Handler { return h }

// replace applies the configured ReplaceAttr to a built-in attribute.
func (h *prettyTextHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.style.key.Render(a.Key))
	buf.WriteByte('=')

	h.writeValue(buf, a.Value.Resolve())
}

// writeValue styles each line of v separately, since lipgloss pads a
// multi-line block to a common width.
func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	style, text := h.style.str, ""

	switch v.Kind() {
	case slog.KindString:
		text = v.String()

	case slog.KindInt64:
		style, text = h.style.num, strconv.FormatInt(v.Int64(), 10)

	case slog.KindUint64:
		style, text = h.style.num, strconv.FormatUint(v.Uint64(), 10)

	case slog.KindFloat64:
		style, text = h.style.num, strconv.FormatFloat(v.Float64(), 'g', -1, 64)

	case slog.KindBool:
		style, text = h.style.no, strconv.FormatBool(v.Bool())
		if v.Bool() {
			style = h.style.yes
		}

	case slog.KindDuration:
		style, text = h.style.duration, v.Duration().String()

	case slog.KindTime:
		style, text = h.style.timestamp, v.Time().Format(time.RFC3339)

	case slog.KindAny:
		level, ok := v.Any().(slog.Level)
		if !ok {
			text = v.String()

			break
		}

		switch {
		case level >= slog.LevelError:
			style = h.style.err
		case level >= slog.LevelWarn:
			style = h.style.warn
		case level >= slog.LevelInfo:
			style = h.style.info
		default:
			style = h.style.debug
		}

		text = level.String()

	default:
		text = v.String()
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			buf.WriteByte('\n')
		}

		buf.WriteString(style.Render(line))
	}
}
