// Package webhook forwards accepted registration payloads to an external
// automation endpoint. Delivery is strictly best-effort: the dispatcher
// never blocks a request, never retries, and failures only surface as
// logs and metrics.
package webhook

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"adev-backend/internal/platform/metrics"
)

// Dispatcher queues payloads and posts them from a background worker.
type Dispatcher struct {
	url     string
	client  *http.Client
	queue   chan []byte
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New builds a dispatcher for the given endpoint. An empty url disables
// delivery; payloads are then dropped with a warning. queueSize bounds
// the number of pending payloads; when the queue is full new payloads
// are dropped rather than blocking the caller.
func New(url string, queueSize int, logger *slog.Logger, m *metrics.Metrics) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		url:     url,
		client:  &http.Client{Timeout: 10 * time.Second},
		queue:   make(chan []byte, queueSize),
		logger:  logger,
		metrics: m,
	}
}

// Dispatch enqueues a payload without blocking. The caller's request has
// already committed; nothing that happens here may affect its outcome.
func (d *Dispatcher) Dispatch(payload []byte) {
	select {
	case d.queue <- payload:
	default:
		d.logger.Warn("webhook queue full, dropping payload")
		d.recordFailure()
	}
}

// Run consumes queued payloads until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload := <-d.queue:
			d.deliver(payload)
		}
	}
}

func (d *Dispatcher) deliver(payload []byte) {
	if d.url == "" {
		d.logger.Warn("webhook url not configured, dropping payload")
		d.recordFailure()
		return
	}

	// Deliveries are detached from the originating request, so they get
	// their own context bounded only by the client timeout.
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		d.logger.Error("webhook request build failed", "error", err)
		d.recordFailure()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Error("webhook delivery failed", "error", err)
		d.recordFailure()
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		d.logger.Error("webhook delivery rejected", "status", resp.StatusCode)
		d.recordFailure()
		return
	}

	if d.metrics != nil {
		d.metrics.WebhookDeliveries.Inc()
	}
}

func (d *Dispatcher) recordFailure() {
	if d.metrics != nil {
		d.metrics.WebhookFailures.Inc()
	}
}
