package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/domain/repository"
	"github.com/bnema/tabsuggest/internal/logging"
)

const (
	insertFeedbackSQL = `INSERT INTO suggestion_feedback
    (action, provider_id, response, affected_count, selection_delta, recorded_at)
VALUES (?, ?, ?, ?, ?, ?)`

	summarizeFeedbackSQL = `SELECT action, provider_id, COUNT(*), AVG(selection_delta)
FROM suggestion_feedback
WHERE response = ?
GROUP BY action, provider_id
ORDER BY action, provider_id`
)

type feedbackRepo struct {
	db *sql.DB
}

// NewFeedbackRepository creates a SQLite-backed feedback repository.
func NewFeedbackRepository(db *sql.DB) repository.FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Save(ctx context.Context, record *entity.FeedbackRecord) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("action", string(record.Action)).
		Str("provider", record.ProviderID).
		Int("selection_delta", record.SelectionDelta).
		Msg("saving suggestion feedback")

	recordedAt := record.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx, insertFeedbackSQL,
		string(record.Action),
		record.ProviderID,
		string(record.Response),
		record.AffectedCount,
		record.SelectionDelta,
		recordedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("feedback id: %w", err)
	}
	record.ID = id
	record.RecordedAt = recordedAt
	return nil
}

func (r *feedbackRepo) Summary(ctx context.Context) ([]entity.FeedbackSummary, error) {
	rows, err := r.db.QueryContext(ctx, summarizeFeedbackSQL, string(entity.FeedbackAccepted))
	if err != nil {
		return nil, fmt.Errorf("summarize feedback: %w", err)
	}
	defer rows.Close()

	var out []entity.FeedbackSummary
	for rows.Next() {
		var (
			action string
			s      entity.FeedbackSummary
		)
		if err := rows.Scan(&action, &s.ProviderID, &s.Accepted, &s.AverageDelta); err != nil {
			return nil, fmt.Errorf("scan feedback summary: %w", err)
		}
		s.Action = entity.SuggestionAction(action)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("summarize feedback: %w", err)
	}
	return out, nil
}
