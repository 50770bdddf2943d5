package zapay

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/boddenberg/zapay-go/internal/config"
	"github.com/boddenberg/zapay-go/internal/infra/observability"
)

// Option customizes a Client at construction time.
type Option func(*settings)

type settings struct {
	baseURL       string
	httpClient    *http.Client
	logger        *zap.Logger
	metrics       *observability.Metrics
	refreshMargin time.Duration
	autoRefresh   bool
}

func defaultSettings(cfg *config.Config) *settings {
	return &settings{
		baseURL:       cfg.BaseURL,
		httpClient:    &http.Client{Timeout: cfg.HTTPTimeout},
		refreshMargin: cfg.RefreshMargin,
		autoRefresh:   true,
	}
}

// WithBaseURL overrides the API base URL. The default is the sandbox, or
// ZAPAY_API_URL when set.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

// WithHTTPClient supplies the *http.Client used for every request. Useful
// for proxies, custom TLS or recorded transports in tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *settings) {
		s.httpClient = httpClient
	}
}

// WithLogger supplies a zap logger. Without it the client builds one at
// the level set by ZAPAY_LOG_LEVEL.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetrics supplies a Metrics instance, letting several clients share
// one registry.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(s *settings) {
		s.metrics = metrics
	}
}

// WithRefreshMargin sets how long before token expiry the background
// refresh fires.
func WithRefreshMargin(margin time.Duration) Option {
	return func(s *settings) {
		s.refreshMargin = margin
	}
}

// WithoutAutoRefresh disables the background token refresh. The client
// stays usable until the initial token expires.
func WithoutAutoRefresh() Option {
	return func(s *settings) {
		s.autoRefresh = false
	}
}
