package logs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanFrom(ctx context.Context) Span {
	if v, ok := ctx.Value(SpanKey).(Span); ok {
		return v
	}
	return ""
}

// NewSpan opens a span for one unit of work, typically one input file. An
// empty parent defaults to the span already in ctx.
func NewSpan(ctx context.Context, logger *slog.Logger, parent Span, args ...any) (context.Context, Span) {
	if parent == "" {
		parent = SpanFrom(ctx)
	}

	span := Span(uuid.NewString())
	ctx = context.WithValue(ctx, SpanKey, span)

	if parent != "" {
		args = append(args, "parent", string(parent))
	}
	logger.DebugContext(ctx, "new span", args...)

	return ctx, span
}
