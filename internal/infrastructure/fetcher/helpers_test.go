package fetcher_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func tab(id entity.TabID, rawURL string) entity.TabInfo {
	return entity.TabInfo{ID: id, URL: rawURL}
}

func incognito(id entity.TabID, rawURL string) entity.TabInfo {
	return entity.TabInfo{ID: id, URL: rawURL, IsIncognito: true}
}

func openedAt(id entity.TabID, at time.Time) entity.TabInfo {
	return entity.TabInfo{ID: id, URL: "https://example.com/" + string(rune('a'+id)), TimestampMillis: at.UnixMilli()}
}

// fetchOnce runs f and returns its single result.
func fetchOnce(t *testing.T, ctx context.Context, f port.Fetcher, s *entity.ContextSnapshot) entity.FetchResult {
	t.Helper()
	results := make(chan entity.FetchResult, 2)
	f.Fetch(ctx, s, func(r entity.FetchResult) { results <- r })

	var got entity.FetchResult
	select {
	case got = <-results:
	case <-time.After(5 * time.Second):
		t.Fatalf("fetcher %s never reported", f.ID())
	}
	require.Empty(t, results, "fetcher %s reported more than once", f.ID())
	return got
}
