package notify

import (
	"context"
	"log/slog"

	"account_backend/internal/shared/ratelimiter"
)

// LogSMSSender writes outbound SMS messages to the structured log instead of
// dispatching them.
type LogSMSSender struct {
	limiter ratelimiter.RateLimiterInterface
}

// NewLogSMSSender creates a LogSMSSender throttled by the given limiter.
func NewLogSMSSender(limiter ratelimiter.RateLimiterInterface) *LogSMSSender {
	return &LogSMSSender{limiter: limiter}
}

// Send logs the SMS instead of delivering it.
func (s *LogSMSSender) Send(ctx context.Context, to, message string) error {
	if s.limiter != nil {
		s.limiter.WaitIfNeeded()
	}
	slog.Info("sms dispatched", "to", to, "message", message)
	return nil
}
