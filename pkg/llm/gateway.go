package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/confscout/scout/pkg/config"
)

// NewGateway assembles the full client stack from configuration:
//
//	callLog(rateLimit(retry(breaker(transport))))
//
// The rate limiter sits outermost so one admitted request may be retried
// without re-acquiring a token; the breaker sits innermost so every physical
// attempt advances it. Without an API key the gateway runs disabled and every
// call fails with KindUnavailable.
func NewGateway(cfg *config.LLMConfig, logger *slog.Logger) Client {
	logger = logger.With("component", "llm")

	if cfg.APIKey == "" {
		logger.Warn("LLM_API_KEY not set, gateway disabled")
		return WithCallLog(Disabled(), cfg.LogDir, cfg.Model, logger)
	}

	transport := NewTransport(
		cfg.BaseURL,
		cfg.APIKey,
		cfg.Model,
		cfg.Temperature,
		time.Duration(cfg.TimeoutSeconds)*time.Second,
	)

	var client Client = transport
	client = WithBreaker(client, cfg.CircuitFailThreshold, time.Duration(cfg.CircuitCooldownSeconds)*time.Second, logger)
	client = WithRetry(client, logger)
	client = WithRateLimit(client, cfg.RateLimitPerMin, time.Duration(cfg.AcquireTimeoutSeconds)*time.Second)
	client = WithCallLog(client, cfg.LogDir, cfg.Model, logger)
	return client
}

// Disabled returns a client that rejects every call. Used when no API key is
// configured so LLM-dependent endpoints degrade instead of panicking.
func Disabled() Client {
	return ClientFunc(func(ctx context.Context, req *Request) (*Response, error) {
		return nil, &Error{Kind: KindUnavailable, Message: "LLM gateway is not configured"}
	})
}
