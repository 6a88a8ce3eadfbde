// Package service runs folder scans on a fixed interval and forwards
// each serialized report to a caller-supplied sink. The loop is a thin
// wrapper: the scan itself stays synchronous and stateless.
package service

import (
	"context"
	"time"
)

// Sink receives one serialized scan report per cycle.
type Sink func(report []byte)

// Periodic invokes Scan immediately and then once per Interval until the
// context is cancelled. A failed cycle is swallowed; the next tick
// retries.
type Periodic struct {
	Interval time.Duration
	Scan     func(ctx context.Context) ([]byte, error)
	Sink     Sink
}

// Run blocks until ctx is cancelled.
func (p Periodic) Run(ctx context.Context) {
	if p.Interval <= 0 {
		p.Interval = time.Hour
	}
	t := time.NewTicker(p.Interval)
	defer t.Stop()
	for {
		p.cycle(ctx)
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func (p Periodic) cycle(ctx context.Context) {
	if p.Scan == nil || p.Sink == nil {
		return
	}
	b, err := p.Scan(ctx)
	if err != nil {
		return
	}
	p.Sink(b)
}
