package repository

import (
	"context"

	"github.com/bnema/tabsuggest/internal/domain/entity"
)

// FeedbackRepository persists suggestion feedback used as a quality metric.
type FeedbackRepository interface {
	// Save stores a feedback record and fills in its ID.
	Save(ctx context.Context, record *entity.FeedbackRecord) error

	// Summary aggregates accepted feedback per action and provider.
	Summary(ctx context.Context) ([]entity.FeedbackSummary, error)
}
