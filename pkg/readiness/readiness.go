// Package readiness polls a local application server until it accepts requests.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"resty.dev/v3"

	"playconf/pkg/applog"
	"playconf/pkg/config"
)

// ErrNotReady is wrapped when the server did not become ready in time
var ErrNotReady = errors.New("server not ready")

// requestTimeout bounds a single probe so a hung server cannot stall polling
const requestTimeout = 5 * time.Second

// Options controls Wait. Zero values take the defaults.
type Options struct {
	Timeout  time.Duration
	Interval time.Duration
	// OnAttempt is called after every failed probe
	OnAttempt func(attempt int, err error)
}

// Accepted reports whether a response status counts as a running server.
// Redirects and client errors below 404 still prove something is listening.
func Accepted(status int) bool {
	return status >= 200 && status < 404
}

// Prober issues readiness probes
type Prober struct {
	client *resty.Client
}

// NewProber creates a Prober with its own HTTP client
func NewProber() *Prober {
	client := resty.New().
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", "playconf-readiness")
	return &Prober{client: client}
}

// Close releases the underlying client
func (p *Prober) Close() {
	_ = p.client.Close()
}

// Probe sends one GET to url and returns its status
func (p *Prober) Probe(ctx context.Context, url string) (int, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return 0, err
	}

	if !Accepted(resp.StatusCode()) {
		return resp.StatusCode(), fmt.Errorf("unexpected status %s", resp.Status())
	}
	return resp.StatusCode(), nil
}

// Wait polls url until it answers with an accepted status, ctx ends, or the
// timeout elapses.
func Wait(ctx context.Context, url string, opts Options) error {
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultServerTimeout
	}
	if opts.Interval <= 0 {
		opts.Interval = config.DefaultPollInterval
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	ctx = applog.AddContextFields(ctx, zap.String("url", url))
	log := applog.FromContext(ctx)

	prober := NewProber()
	defer prober.Close()

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	var lastErr error
	for attempt := 1; ; attempt++ {
		status, err := prober.Probe(ctx, url)
		if err == nil {
			log.Debug("server ready", zap.Int("status", status), zap.Int("attempt", attempt))
			return nil
		}
		lastErr = err
		log.Debug("server not ready", zap.Int("attempt", attempt), zap.Error(err))
		if opts.OnAttempt != nil {
			opts.OnAttempt(attempt, err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s after %d attempts: %v", ErrNotReady, url, attempt, lastErr)
		case <-ticker.C:
		}
	}
}

// IsReachable reports whether url answers a single probe with an accepted status
func IsReachable(ctx context.Context, url string) bool {
	prober := NewProber()
	defer prober.Close()

	_, err := prober.Probe(ctx, url)
	return err == nil
}
