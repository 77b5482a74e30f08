package logging

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithCycleID tags log lines with the suggestion cycle they belong to.
func WithCycleID(ctx context.Context, cycleID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("cycle_id", cycleID).Logger()
	return WithContext(ctx, childLogger)
}

// WithFetcherID creates a child logger with a fetcher field
func WithFetcherID(ctx context.Context, fetcherID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("fetcher", fetcherID).Logger()
	return WithContext(ctx, childLogger)
}

// WithTabID creates a child logger with a tab_id field
func WithTabID(ctx context.Context, tabID int64) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("tab_id", strconv.FormatInt(tabID, 10)).Logger()
	return WithContext(ctx, childLogger)
}
