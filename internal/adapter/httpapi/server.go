// Package httpapi exposes the brand check service over HTTP.
package httpapi

import (
	"context"
	"net/http"
	"time"

	llmhttp "github.com/kprsnt/brandscore/internal/adapter/llm/http"
	"github.com/kprsnt/brandscore/internal/cache"
	"github.com/kprsnt/brandscore/internal/config"
	"github.com/kprsnt/brandscore/internal/ratelimit"
	"github.com/kprsnt/brandscore/internal/usecase/check"
)

// Server serves the brand check API.
type Server struct {
	cfg     *config.Config
	service *check.Service
	limiter *ratelimit.Limiter
	results *cache.Cache[check.Result]

	// providerStatus maps provider name to configured-or-not; drives the
	// health endpoint and the NO_API_KEYS guard.
	providerStatus map[string]bool
	anyConfigured  bool

	logger         llmhttp.Logger
	metricsHandler http.Handler
	startedAt      time.Time
}

// Options carries the dependencies for a Server.
type Options struct {
	Config         *config.Config
	Service        *check.Service
	Limiter        *ratelimit.Limiter
	Results        *cache.Cache[check.Result]
	ProviderStatus map[string]bool
	Logger         llmhttp.Logger
	MetricsHandler http.Handler
}

// NewServer constructs a Server. Results may be nil to disable the result
// cache.
func NewServer(opts Options) *Server {
	anyConfigured := false
	for _, configured := range opts.ProviderStatus {
		if configured {
			anyConfigured = true
			break
		}
	}
	return &Server{
		cfg:            opts.Config,
		service:        opts.Service,
		limiter:        opts.Limiter,
		results:        opts.Results,
		providerStatus: opts.ProviderStatus,
		anyConfigured:  anyConfigured,
		logger:         opts.Logger,
		metricsHandler: opts.MetricsHandler,
		startedAt:      time.Now(),
	}
}

// Handler builds the full middleware-wrapped mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/check-brand", s.handleCheckBrand)
	mux.HandleFunc("/api/health", s.handleHealth)
	if s.metricsHandler != nil {
		mux.Handle("/metrics", s.metricsHandler)
	}

	var handler http.Handler = mux
	handler = securityHeaders(handler)
	handler = recoverPanics(s.logger, handler)
	handler = requestLogging(s.logger, handler)
	return handler
}

// Run serves until ctx is cancelled, then drains with a shutdown grace
// period.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
