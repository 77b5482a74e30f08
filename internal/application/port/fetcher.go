package port

import (
	"context"

	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// FetchCallback receives a fetcher's result.
type FetchCallback func(result entity.FetchResult)

// Fetcher is a pluggable source of tab suggestions.
//
// Fetch must call onResult exactly once, including on failure, where it
// reports an empty suggestion list. It may call it from any goroutine.
// The context is cancelled when the cycle is superseded.
type Fetcher interface {
	ID() string
	// IsEnabled is evaluated on every fetch cycle.
	IsEnabled() bool
	Fetch(ctx context.Context, snapshot *entity.ContextSnapshot, onResult FetchCallback)
}
