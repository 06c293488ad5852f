package logging

import (
	"context"
	"log/slog"
)

// LevelFilter drops records below a minimum level before they reach the
// wrapped handler, regardless of the level that handler was built with.
type LevelFilter struct {
	next  slog.Handler
	floor slog.Leveler
}

func NewLevelFilter(next slog.Handler, floor slog.Leveler) *LevelFilter {
	return &LevelFilter{next: next, floor: floor}
}

func (h *LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.floor.Level() && h.next.Enabled(ctx, level)
}

func (h *LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level < h.floor.Level() {
		return nil
	}
	return h.next.Handle(ctx, r)
}

func (h *LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LevelFilter{next: h.next.WithAttrs(attrs), floor: h.floor}
}

func (h *LevelFilter) WithGroup(name string) slog.Handler {
	return &LevelFilter{next: h.next.WithGroup(name), floor: h.floor}
}
