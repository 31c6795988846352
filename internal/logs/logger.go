package logs

import (
	"context"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	Level slog.Leveler
	// Writer receives human-readable records. Defaults to os.Stderr.
	Writer io.Writer
	// File, when set, additionally receives every record as JSON.
	File string
}

// New builds the process logger. The returned closer releases the log file
// and is never nil.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	handlers := []slog.Handler{
		slog.NewTextHandler(opts.Writer, handlerOpts),
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(file, handlerOpts))
		closer = file
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	}), closer, nil
}

// Discard is a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Handler tags each record with the span carried by its context.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span := SpanFrom(ctx); span != "" {
		record.Add("span", string(span))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
