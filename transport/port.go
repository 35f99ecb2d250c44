// Package transport adapts byte devices (UARTs, ttys, pipes) to menu.Port.
//
// A pump goroutine moves received bytes from the device into a
// single-producer single-consumer ring; the menu control loop consumes the
// ring without ever blocking on the device.
package transport

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"serialmenu/errcode"
	"serialmenu/x/shmring"
)

// Device is a duplex byte device with a context-bounded receive.
// RecvSomeContext returns (0, nil) when nothing arrived before an internal
// poll timeout; io.EOF ends the pump.
type Device interface {
	io.Writer
	RecvSomeContext(ctx context.Context, p []byte) (int, error)
}

// BaudSetter is implemented by devices with a configurable line rate.
type BaudSetter interface {
	SetBaudRate(br uint32) error
}

const (
	DefaultRXSize = 256
	maxFrame      = 64
	errBackoff    = 100 * time.Millisecond
)

// Port is a menu.Port over a Device.
type Port struct {
	dev   Device
	rx    *shmring.Ring
	ready atomic.Bool
	done  chan struct{}
}

// NewPort wraps dev with an RX ring of rxSize bytes (power of two;
// DefaultRXSize when zero or invalid).
func NewPort(dev Device, rxSize int) *Port {
	if rxSize < 2 || rxSize&(rxSize-1) != 0 {
		rxSize = DefaultRXSize
	}
	return &Port{
		dev:  dev,
		rx:   shmring.New(rxSize),
		done: make(chan struct{}),
	}
}

// Start launches the RX pump. The port reports Ready once it runs.
func (p *Port) Start(ctx context.Context) {
	go p.pump(ctx)
}

// Done is closed when the pump exits.
func (p *Port) Done() <-chan struct{} { return p.done }

func (p *Port) pump(ctx context.Context) {
	defer close(p.done)
	defer p.ready.Store(false)
	p.ready.Store(true)

	buf := make([]byte, maxFrame)
	for {
		if ctx.Err() != nil {
			return
		}
		n, err := p.dev.RecvSomeContext(ctx, buf)
		if n > 0 {
			if !p.push(ctx, buf[:n]) {
				return
			}
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return
		}
		println("[transport] rx error:", err.Error())
		select {
		case <-ctx.Done():
			return
		case <-time.After(errBackoff):
		}
	}
}

// push writes all of b into the ring, waiting for space when full.
func (p *Port) push(ctx context.Context, b []byte) bool {
	for len(b) > 0 {
		n := p.rx.WriteFrom(b)
		b = b[n:]
		if len(b) == 0 {
			break
		}
		select {
		case <-ctx.Done():
			return false
		case <-p.rx.Writable():
		case <-time.After(10 * time.Millisecond):
		}
	}
	return true
}

// Ready reports whether the pump is running.
func (p *Port) Ready() bool { return p.ready.Load() }

// Buffered reports bytes waiting in the RX ring.
func (p *Port) Buffered() int { return p.rx.Available() }

// ReadByte consumes one buffered byte.
func (p *Port) ReadByte() (byte, error) {
	b, ok := p.rx.ReadByte()
	if !ok {
		return 0, errcode.NotReady
	}
	return b, nil
}

// Readable fires when the RX ring goes from empty to non-empty.
func (p *Port) Readable() <-chan struct{} { return p.rx.Readable() }

// Write sends p straight to the device.
func (p *Port) Write(b []byte) (int, error) { return p.dev.Write(b) }

// SetBaudRate forwards to the device when it supports it.
func (p *Port) SetBaudRate(br uint32) error {
	if bs, ok := p.dev.(BaudSetter); ok {
		return bs.SetBaudRate(br)
	}
	return nil
}
