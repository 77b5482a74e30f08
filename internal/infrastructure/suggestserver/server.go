package suggestserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/tabsuggest/internal/application/port"
	"github.com/bnema/tabsuggest/internal/domain/entity"
	"github.com/bnema/tabsuggest/internal/logging"
)

const (
	maxRequestBody         = 1 << 20
	defaultRequestTimeout  = 5 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Options tunes a Server.
type Options struct {
	// RequestTimeout bounds how long fetchers may take per request.
	RequestTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
	ShutdownTimeout time.Duration
}

// Server answers suggestion requests by running its fetchers.
type Server struct {
	fetchers []port.Fetcher
	opts     Options
	logger   zerolog.Logger
	router   *chi.Mux
}

// New creates a server. The logger is taken from ctx.
func New(ctx context.Context, fetchers []port.Fetcher, opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}
	s := &Server{
		fetchers: fetchers,
		opts:     opts,
		logger:   logging.FromContext(logging.WithComponent(ctx, "suggestserver")).With().Logger(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Post(SuggestionsPath, s.handleSuggest)

	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return s.logger.WithContext(context.Background()) },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("suggestion server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.logger.Info().Msg("suggestion server stopped")
		return nil
	})
	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	ids := make([]string, 0, len(s.fetchers))
	for _, f := range s.fetchers {
		if f.IsEnabled() {
			ids = append(ids, f.ID())
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "fetchers": ids})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	resp := s.Suggest(r.Context(), &req.Snapshot)
	writeJSON(w, http.StatusOK, resp)
}

// Suggest runs every enabled fetcher against snapshot and concatenates
// their suggestions. Fetchers that have not answered within the request
// timeout are left out.
func (s *Server) Suggest(ctx context.Context, snapshot *entity.ContextSnapshot) SuggestResponse {
	ctx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()
	log := logging.FromContext(ctx)

	type answer struct {
		id     string
		result entity.FetchResult
	}

	var enabled []port.Fetcher
	for _, f := range s.fetchers {
		if f.IsEnabled() {
			enabled = append(enabled, f)
		}
	}

	answers := make(chan answer, len(enabled))
	for _, f := range enabled {
		go func() {
			var once sync.Once
			report := func(r entity.FetchResult) {
				once.Do(func() { answers <- answer{id: f.ID(), result: r} })
			}
			if rec := panics.Try(func() { f.Fetch(ctx, snapshot, report) }); rec != nil {
				log.Error().Err(rec.AsError()).Str("fetcher", f.ID()).Msg("fetcher panicked")
				report(entity.FetchResult{Snapshot: snapshot})
			}
		}()
	}

	resp := SuggestResponse{Suggestions: []entity.Suggestion{}}
	for range enabled {
		select {
		case a := <-answers:
			resp.Suggestions = append(resp.Suggestions, a.result.Suggestions...)
			resp.Fetchers = append(resp.Fetchers, a.id)
		case <-ctx.Done():
			log.Warn().Err(ctx.Err()).Int("answered", len(resp.Fetchers)).Msg("suggestion request timed out")
			return resp
		}
	}
	return resp
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		logger := s.logger.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()

		next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context())))

		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
