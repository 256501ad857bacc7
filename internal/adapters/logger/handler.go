package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/ship/internal/ui/output"
	"go.trai.ch/ship/internal/ui/style"
)

// ConsoleHandler writes one colored line per record, prefixed with the level icon.
// Handlers derived with WithAttrs or WithGroup share the writer and its lock.
type ConsoleHandler struct {
	out   *termenv.Output
	mu    *sync.Mutex
	level slog.Leveler
	// prefix holds the pre-rendered attributes of WithAttrs.
	prefix string
	groups []string
}

// NewConsoleHandler creates a ConsoleHandler writing to w, or stderr when w is nil.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}

	h := &ConsoleHandler{
		out:   output.New(w),
		mu:    &sync.Mutex{},
		level: slog.LevelInfo,
	}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Handler passes records by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon + " ")
	}
	b.WriteString(r.Message)
	b.WriteString(h.prefix)
	r.Attrs(func(attr slog.Attr) bool {
		h.appendAttr(&b, attr)
		return true
	})

	line := h.out.String(b.String()).Foreground(termenv.RGBColor(color)).String() + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(line)
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	next := h.clone()
	var b strings.Builder
	b.WriteString(h.prefix)
	for _, attr := range attrs {
		h.appendAttr(&b, attr)
	}
	next.prefix = b.String()
	return next
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := h.clone()
	next.groups = append(slices.Clip(h.groups), name)
	return next
}

func (h *ConsoleHandler) clone() *ConsoleHandler {
	c := *h
	return &c
}

// appendAttr writes " group.key=value", resolving values and flattening nested groups.
func (h *ConsoleHandler) appendAttr(b *strings.Builder, attr slog.Attr) {
	appendAttr(b, h.groups, attr)
}

func appendAttr(b *strings.Builder, groups []string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		inner := groups
		if attr.Key != "" {
			inner = append(slices.Clip(groups), attr.Key)
		}
		for _, a := range attr.Value.Group() {
			appendAttr(b, inner, a)
		}
		return
	}

	b.WriteByte(' ')
	for _, g := range groups {
		b.WriteString(g + ".")
	}
	b.WriteString(attr.Key + "=" + attr.Value.String())
}

func levelStyle(level slog.Level) (icon string, color string) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, string(style.Red)
	case level >= slog.LevelWarn:
		return style.Warning, string(style.Yellow)
	default:
		return "", string(style.Slate)
	}
}
