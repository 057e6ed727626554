package config

import (
	"os"
	"strconv"
)

// Config holds all process-wide settings. It is built once at startup and
// injected; nothing reads the environment after that.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// AdminSecret gates the /admin routes via the X-Admin-Password header.
	AdminSecret string
	// WebhookURL receives a copy of every accepted registration payload.
	// Empty disables forwarding.
	WebhookURL string
	// CadastrosDSN is the Postgres DSN for the visitor store. Empty falls
	// back to the in-memory store (development mode).
	CadastrosDSN string
	// ProgramacaoDSN is the Postgres DSN for the schedule store. Empty
	// falls back to the in-memory store.
	ProgramacaoDSN string
	// WebhookQueueSize bounds the pending webhook payload queue.
	WebhookQueueSize int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("ADEV_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	secret := os.Getenv("ADEV_ADMIN_PASSWORD")
	if secret == "" {
		// Development default - must be overridden in production.
		secret = "12345"
	}

	queueSize := 64
	if raw := os.Getenv("ADEV_WEBHOOK_QUEUE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			queueSize = n
		}
	}

	return Config{
		Addr:             addr,
		AdminSecret:      secret,
		WebhookURL:       os.Getenv("ADEV_WEBHOOK_URL"),
		CadastrosDSN:     os.Getenv("ADEV_CADASTROS_DSN"),
		ProgramacaoDSN:   os.Getenv("ADEV_PROGRAMACAO_DSN"),
		WebhookQueueSize: queueSize,
	}
}
