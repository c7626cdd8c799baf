// Package notify provides development implementations of the outbound
// message senders. Production deployments swap these for a real provider
// behind the same interfaces.
package notify

import (
	"context"
	"log/slog"

	"account_backend/internal/shared/ratelimiter"
)

// LogEmailSender writes outbound emails to the structured log instead of
// dispatching them. Sends are rate limited the same way a real provider
// integration would be, so development behaves like production under load.
type LogEmailSender struct {
	limiter ratelimiter.RateLimiterInterface
}

// NewLogEmailSender creates a LogEmailSender throttled by the given limiter.
func NewLogEmailSender(limiter ratelimiter.RateLimiterInterface) *LogEmailSender {
	return &LogEmailSender{limiter: limiter}
}

// Send logs the email instead of delivering it.
func (s *LogEmailSender) Send(ctx context.Context, template, to, subject string, data map[string]any) error {
	if s.limiter != nil {
		s.limiter.WaitIfNeeded()
	}
	slog.Info("email dispatched", "template", template, "to", to, "subject", subject, "data", data)
	return nil
}
