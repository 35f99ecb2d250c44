// Package console drives the menu engine from a fixed-period control loop.
package console

import (
	"context"
	"time"

	"serialmenu/x/mathx"
)

// Runner is one iteration of the menu engine.
type Runner interface {
	Run(elapsedMs uint16) bool
}

const maxElapsedMs = 65535

type Service struct {
	r        Runner
	interval time.Duration
	setCh    chan time.Duration
}

// New returns a loop calling r every interval (100ms when zero).
func New(r Runner, interval time.Duration) *Service {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Service{r: r, interval: interval, setCh: make(chan time.Duration, 1)}
}

// SetInterval changes the loop period. Safe to call from actions.
func (s *Service) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case s.setCh <- d:
	default:
		// replace a pending, not yet applied change
		select {
		case <-s.setCh:
		default:
		}
		s.setCh <- d
	}
}

// elapsedMs is the nominal period handed to the engine on every tick.
func elapsedMs(d time.Duration) uint16 {
	return uint16(mathx.Clamp(d.Milliseconds(), 1, maxElapsedMs))
}

// Run loops until ctx is cancelled. Actions dispatched by the engine run on
// this goroutine; ticks missed while one blocks are dropped.
func (s *Service) Run(ctx context.Context) {
	tick := time.NewTicker(s.interval)
	defer tick.Stop()
	period := elapsedMs(s.interval)

	for {
		select {
		case <-ctx.Done():
			println("[console] loop stopping")
			return
		case <-tick.C:
			s.r.Run(period)
		case d := <-s.setCh:
			tick.Reset(d)
			period = elapsedMs(d)
			println("[console] loop interval set to", int(period), "ms")
		}
	}
}

// Start runs the loop in its own goroutine.
func (s *Service) Start(ctx context.Context) error {
	go s.Run(ctx)
	return nil
}
