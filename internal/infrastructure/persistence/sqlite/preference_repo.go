package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tabsuggest/internal/domain/repository"
	"github.com/bnema/tabsuggest/internal/logging"
)

const (
	getPreferenceSQL = `SELECT int_value FROM preferences WHERE key = ?`

	upsertPreferenceSQL = `INSERT INTO preferences (key, int_value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
    int_value = excluded.int_value,
    updated_at = excluded.updated_at`

	deletePreferencePrefixSQL = `DELETE FROM preferences WHERE substr(key, 1, ?) = ?`
)

type preferenceRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewPreferenceRepository creates a SQLite-backed preference repository.
func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepo{db: db, now: time.Now}
}

func (r *preferenceRepo) GetInt(ctx context.Context, key string) (int64, bool, error) {
	var value int64
	err := r.db.QueryRowContext(ctx, getPreferenceSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *preferenceRepo) SetInts(ctx context.Context, values map[string]int64) (err error) {
	if len(values) == 0 {
		return nil
	}
	logging.FromContext(ctx).Trace().Int("keys", len(values)).Msg("writing preferences")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin preference write: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, upsertPreferenceSQL)
	if err != nil {
		return fmt.Errorf("prepare preference write: %w", err)
	}
	defer stmt.Close()

	updatedAt := r.now().UnixMilli()
	for key, value := range values {
		if _, err = stmt.ExecContext(ctx, key, value, updatedAt); err != nil {
			return fmt.Errorf("set preference %q: %w", key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit preference write: %w", err)
	}
	return nil
}

func (r *preferenceRepo) DeletePrefix(ctx context.Context, prefix string) error {
	if _, err := r.db.ExecContext(ctx, deletePreferencePrefixSQL, len(prefix), prefix); err != nil {
		return fmt.Errorf("delete preferences %q: %w", prefix, err)
	}
	return nil
}
