package transport

import (
	"bytes"
	"context"
	"sync"

	"serialmenu/x/shmring"
)

// Loopback is an in-memory Device: Feed supplies input, Output returns
// everything written. Useful for tests and headless demos.
type Loopback struct {
	in *shmring.Ring

	mu  sync.Mutex
	out bytes.Buffer
}

// NewLoopback returns a loopback device with an input ring of size bytes
// (power of two).
func NewLoopback(size int) *Loopback {
	if size < 2 || size&(size-1) != 0 {
		size = DefaultRXSize
	}
	return &Loopback{in: shmring.New(size)}
}

// Feed queues s as received bytes and returns how many fitted.
func (l *Loopback) Feed(s string) int { return l.in.WriteFrom([]byte(s)) }

// Output returns everything written so far.
func (l *Loopback) Output() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.String()
}

// Reset discards recorded output.
func (l *Loopback) Reset() {
	l.mu.Lock()
	l.out.Reset()
	l.mu.Unlock()
}

func (l *Loopback) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Write(p)
}

func (l *Loopback) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	for {
		if n := l.in.ReadInto(p); n > 0 {
			return n, nil
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-l.in.Readable():
		}
	}
}

// Pending reports fed bytes not yet received.
func (l *Loopback) Pending() int { return l.in.Available() }
