package sensor

import (
	"context"
	"log/slog"
	"time"
)

// Poller samples a primary source on a fixed interval and posts results to
// a mailbox. While the primary fails it samples the fallback instead.
type Poller struct {
	Primary  Source
	Fallback Source
	Interval time.Duration
	Out      *Mailbox
	Logger   *slog.Logger

	usingFallback bool
}

// Run polls until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		p.poll(logger)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Poller) poll(logger *slog.Logger) {
	v, err := p.Primary.Sample()
	if err == nil {
		if p.usingFallback {
			p.usingFallback = false
			logger.Info("sensor_restored")
		}
		p.Out.Post(v)
		return
	}

	if !p.usingFallback {
		p.usingFallback = true
		logger.Warn("sensor_fallback", "error", err)
	}
	if p.Fallback == nil {
		return
	}
	if v, err := p.Fallback.Sample(); err == nil {
		p.Out.Post(v)
	}
}
