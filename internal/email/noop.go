package email

import "shop_backend/internal/logger"

// NoopProvider is used when SMTP is not configured (development, tests).
// Messages are logged instead of sent.
type NoopProvider struct{}

func (NoopProvider) Send(msg *Email) error {
	logger.Info("email suppressed (no SMTP configured)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
