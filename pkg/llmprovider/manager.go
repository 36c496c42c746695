package llmprovider

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"customer-support-agents/pkg/log"
)

// Manager wraps a Provider with per-call deadlines, bounded retry with
// linear backoff, and rate limiting. A call that exhausts its deadline or
// retries surfaces as an ordinary error, so callers' fallback paths behave
// the same for timeouts as for any other provider failure.
type Manager struct {
	provider Provider
	config   *Config
	limiter  *rate.Limiter
	logger   log.Logger
}

// Config defines configuration for the provider Manager
type Config struct {
	RetryAttempts  int           // total attempts per call; <=0 means 1
	RetryDelay     time.Duration // backoff unit between attempts
	CallTimeout    time.Duration // per-call deadline; 0 disables
	RequestsPerMin int           // rate limit; 0 disables
}

// NewManager creates a new provider Manager
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if config.RequestsPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(config.RequestsPerMin)/60.0), 1)
	}
	return &Manager{
		provider: provider,
		config:   config,
		limiter:  limiter,
		logger:   logger,
	}
}

// Complete implements Provider, adding deadline, retry, and rate limiting.
func (m *Manager) Complete(ctx context.Context, prompt string) (string, error) {
	if m.provider == nil {
		return "", ErrNoProviderConfigured
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return "", err
	}

	attempts := m.config.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := m.completeOnce(ctx, prompt)
		if err == nil {
			return text, nil
		}

		m.logger.Warnf(ctx, "LLM call failed (attempt %d/%d): provider=%s model=%s err=%v",
			attempt+1, attempts, m.provider.Name(), m.provider.Model(), err)
		lastErr = err
	}

	return "", lastErr
}

func (m *Manager) completeOnce(ctx context.Context, prompt string) (string, error) {
	if m.config.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.CallTimeout)
		defer cancel()
	}
	return m.provider.Complete(ctx, prompt)
}

// Name returns the underlying provider name
func (m *Manager) Name() string {
	return m.provider.Name()
}

// Model returns the underlying model name
func (m *Manager) Model() string {
	return m.provider.Model()
}
