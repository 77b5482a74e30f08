// Package sqlite provides SQLite implementations of domain repositories.
//
// The lazy wrappers in this file implement the same repository interfaces as
// their eager counterparts but resolve the connection through a
// port.DatabaseProvider on first use.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/domain/repository"
)

// LazyPreferenceRepository wraps a preference repository with lazy database initialization.
type LazyPreferenceRepository struct {
	provider port.DatabaseProvider
	repo     repository.PreferenceRepository
	once     sync.Once
	initErr  error
}

// NewLazyPreferenceRepository creates a lazy-loading preference repository.
func NewLazyPreferenceRepository(provider port.DatabaseProvider) repository.PreferenceRepository {
	return &LazyPreferenceRepository{provider: provider}
}

func (r *LazyPreferenceRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewPreferenceRepository(db)
	})
	return r.initErr
}

func (r *LazyPreferenceRepository) GetInt(ctx context.Context, key string) (int64, bool, error) {
	if err := r.init(ctx); err != nil {
		return 0, false, err
	}
	return r.repo.GetInt(ctx, key)
}

func (r *LazyPreferenceRepository) SetInts(ctx context.Context, values map[string]int64) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.SetInts(ctx, values)
}

func (r *LazyPreferenceRepository) DeletePrefix(ctx context.Context, prefix string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.DeletePrefix(ctx, prefix)
}

// LazyFeedbackRepository wraps a feedback repository with lazy database initialization.
type LazyFeedbackRepository struct {
	provider port.DatabaseProvider
	repo     repository.FeedbackRepository
	once     sync.Once
	initErr  error
}

// NewLazyFeedbackRepository creates a lazy-loading feedback repository.
func NewLazyFeedbackRepository(provider port.DatabaseProvider) repository.FeedbackRepository {
	return &LazyFeedbackRepository{provider: provider}
}

func (r *LazyFeedbackRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewFeedbackRepository(db)
	})
	return r.initErr
}

func (r *LazyFeedbackRepository) Save(ctx context.Context, record *entity.FeedbackRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, record)
}

func (r *LazyFeedbackRepository) Summary(ctx context.Context) ([]entity.FeedbackSummary, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Summary(ctx)
}
