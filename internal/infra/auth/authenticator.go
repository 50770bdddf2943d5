// Package auth keeps a Zapay access token fresh for the lifetime of a
// client. Tokens are short-lived JWTs, so the authenticator decodes the
// exp claim and schedules a background refresh shortly before it.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/boddenberg/zapay-go/internal/domain"
	"github.com/boddenberg/zapay-go/internal/infra/observability"
	"github.com/boddenberg/zapay-go/internal/port"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// refreshTimeout bounds the credential exchange fired by the timer,
// which has no caller context to inherit a deadline from.
const refreshTimeout = 30 * time.Second

// Authenticator owns the access token. It implements port.TokenSource.
type Authenticator struct {
	svc      port.AuthService
	username string
	password string
	margin   time.Duration
	auto     bool
	logger   *zap.Logger
	metrics  *observability.Metrics

	// group collapses concurrent refreshes into one credential exchange.
	group singleflight.Group

	mu     sync.Mutex
	token  domain.Token
	timer  *time.Timer
	closed bool
}

// New creates an Authenticator. It does not fetch a token; call
// Authenticate once before handing out the token source.
func New(svc port.AuthService, username, password string, margin time.Duration, auto bool, logger *zap.Logger, metrics *observability.Metrics) *Authenticator {
	return &Authenticator{
		svc:      svc,
		username: username,
		password: password,
		margin:   margin,
		auto:     auto,
		logger:   logger,
		metrics:  metrics,
	}
}

// Authenticate performs the initial credential exchange and, when auto
// refresh is enabled, arms the refresh timer.
func (a *Authenticator) Authenticate(ctx context.Context) error {
	_, err := a.refresh(ctx)
	return err
}

// Token returns the current access token.
func (a *Authenticator) Token() (domain.Token, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.token == "" {
		return "", &domain.UsageError{Message: "zapay: no access token; authenticate before calling the API"}
	}
	return a.token, nil
}

// Close stops the refresh timer. The last token stays usable until it
// expires. Close is idempotent.
func (a *Authenticator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
	}
}

func (a *Authenticator) refresh(ctx context.Context) (domain.Token, error) {
	v, err, _ := a.group.Do("refresh", func() (any, error) {
		token, err := a.svc.Authenticate(ctx, a.username, a.password)
		if err != nil {
			a.metrics.IncrTokenRefresh("error")
			a.logger.Error("auth: token refresh failed", zap.Error(err))
			return nil, err
		}
		a.metrics.IncrTokenRefresh("success")

		a.mu.Lock()
		a.token = token
		if a.auto && !a.closed {
			a.armLocked(token)
		}
		a.mu.Unlock()

		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(domain.Token), nil
}

// armLocked schedules the next refresh. Caller holds a.mu.
func (a *Authenticator) armLocked(token domain.Token) {
	if a.timer != nil {
		a.timer.Stop()
	}
	wait := refreshIn(token, a.margin, time.Now())
	a.timer = time.AfterFunc(wait, a.backgroundRefresh)
	a.logger.Debug("auth: refresh scheduled", zap.Duration("in", wait))
}

// backgroundRefresh runs off the timer. A failed refresh is logged and
// the timer stays disarmed; the next explicit Authenticate re-arms it.
func (a *Authenticator) backgroundRefresh() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := a.refresh(ctx); err != nil {
		a.logger.Warn("auth: background refresh failed, token will expire", zap.Error(err))
	}
}

// refreshIn computes how long to wait before refreshing: the token's
// remaining lifetime minus the margin, floored at one millisecond so an
// undecodable or already stale token refreshes immediately.
func refreshIn(token domain.Token, margin time.Duration, now time.Time) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), claims); err != nil {
		return time.Millisecond
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Millisecond
	}
	wait := exp.Time.Sub(now) - margin
	if wait < time.Millisecond {
		return time.Millisecond
	}
	return wait
}
