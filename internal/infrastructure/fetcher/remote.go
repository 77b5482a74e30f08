package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/infrastructure/suggestserver"
	"github.com/bnema/tabsuggest/internal/logging"
)

// ErrRemoteStatus is returned when the suggestion server answers with a
// non-2xx status.
var ErrRemoteStatus = errors.New("unexpected status from suggestion server")

const maxErrorBody = 512

// Remote asks a suggestion server for suggestions. Incognito tabs are never
// sent, and suggestions naming tabs outside the request are trimmed.
type Remote struct {
	enabled  atomic.Bool
	endpoint string
	client   *http.Client
}

var _ port.Fetcher = (*Remote)(nil)

// NewRemoteFetcher creates a fetcher posting snapshots to endpoint.
func NewRemoteFetcher(enabled bool, endpoint string, timeout time.Duration) *Remote {
	r := &Remote{
		endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{Timeout: timeout},
	}
	r.enabled.Store(enabled)
	return r
}

func (r *Remote) ID() string { return RemoteID }

// IsEnabled requires both the flag and an endpoint.
func (r *Remote) IsEnabled() bool { return r.enabled.Load() && r.endpoint != "" }

// SetEnabled flips the fetcher on or off for subsequent cycles.
func (r *Remote) SetEnabled(enabled bool) { r.enabled.Store(enabled) }

func (r *Remote) Fetch(ctx context.Context, snapshot *entity.ContextSnapshot, onResult port.FetchCallback) {
	log := logging.FromContext(ctx)

	suggestions, err := r.Request(ctx, snapshot)
	if err != nil {
		if ctx.Err() != nil {
			log.Debug().Err(err).Msg("remote fetch cancelled")
		} else {
			log.Warn().Err(err).Str("endpoint", r.endpoint).Msg("remote fetch failed, reporting no suggestions")
		}
		suggestions = []entity.Suggestion{}
	}
	onResult(entity.FetchResult{Snapshot: snapshot, Suggestions: suggestions})
}

// Request performs one round trip for snapshot.
func (r *Remote) Request(ctx context.Context, snapshot *entity.ContextSnapshot) ([]entity.Suggestion, error) {
	if snapshot == nil {
		return []entity.Suggestion{}, nil
	}
	sent := withoutIncognito(snapshot)

	body, err := json.Marshal(suggestserver.SuggestRequest{Snapshot: *sent})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", r.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %d from %s: %s", ErrRemoteStatus, resp.StatusCode, r.endpoint, strings.TrimSpace(string(respBody)))
	}

	var decoded suggestserver.SuggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return restrictToSnapshot(decoded.Suggestions, sent), nil
}

func withoutIncognito(s *entity.ContextSnapshot) *entity.ContextSnapshot {
	out := &entity.ContextSnapshot{
		UngroupedTabs: visibleTabs(s.UngroupedTabs),
		Groups:        make([]entity.TabGroup, 0, len(s.Groups)),
	}
	for _, g := range s.Groups {
		tabs := visibleTabs(g.Tabs)
		if len(tabs) == 0 {
			continue
		}
		out.Groups = append(out.Groups, entity.TabGroup{RootID: g.RootID, Tabs: tabs})
	}
	return out
}

// restrictToSnapshot replaces affected tabs with the snapshot's own copies
// and drops tabs the snapshot does not contain.
func restrictToSnapshot(suggestions []entity.Suggestion, s *entity.ContextSnapshot) []entity.Suggestion {
	known := make(map[entity.TabID]entity.TabInfo, s.TabCount())
	for _, t := range s.AllTabs() {
		known[t.ID] = t
	}

	out := make([]entity.Suggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		tabs := make([]entity.TabInfo, 0, len(sg.AffectedTabs))
		for _, t := range sg.AffectedTabs {
			if k, ok := known[t.ID]; ok {
				tabs = append(tabs, k)
			}
		}
		if len(tabs) == 0 {
			continue
		}
		if sg.ProviderID == "" {
			sg.ProviderID = RemoteID
		}
		sg.AffectedTabs = tabs
		out = append(out, sg)
	}
	return out
}
