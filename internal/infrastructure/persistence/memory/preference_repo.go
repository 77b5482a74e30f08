// Package memory holds process-local repository implementations, used when
// nothing should outlive the process.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/tabsuggest/internal/domain/repository"
)

type preferenceRepo struct {
	mu     sync.RWMutex
	values map[string]int64
}

// NewPreferenceRepository creates an empty in-memory preference store.
func NewPreferenceRepository() repository.PreferenceRepository {
	return &preferenceRepo{values: make(map[string]int64)}
}

func (r *preferenceRepo) GetInt(_ context.Context, key string) (int64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *preferenceRepo) SetInts(_ context.Context, values map[string]int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range values {
		r.values[k] = v
	}
	return nil
}

func (r *preferenceRepo) DeletePrefix(_ context.Context, prefix string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.values {
		if strings.HasPrefix(k, prefix) {
			delete(r.values, k)
		}
	}
	return nil
}
