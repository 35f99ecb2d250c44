//go:build !rp2040

// Package hostserial adapts an operating-system serial port to
// transport.Device using github.com/goburrow/serial.
package hostserial

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/serial"

	"serialmenu/x/strx"
)

// Config mirrors the line settings of serial.Config.
type Config struct {
	Address  string // e.g. /dev/ttyUSB0, COM3
	Baud     int
	DataBits int
	StopBits int
	Parity   string // "N" | "E" | "O"
	// Timeout bounds each Read so the pump can observe cancellation.
	Timeout time.Duration
}

const defaultTimeout = 100 * time.Millisecond

func (c Config) serial() serial.Config {
	sc := serial.Config{
		Address:  c.Address,
		BaudRate: c.Baud,
		DataBits: c.DataBits,
		StopBits: c.StopBits,
		Parity:   strx.Coalesce(c.Parity, "N"),
		Timeout:  c.Timeout,
	}
	if sc.BaudRate == 0 {
		sc.BaudRate = 9600
	}
	if sc.DataBits == 0 {
		sc.DataBits = 8
	}
	if sc.StopBits == 0 {
		sc.StopBits = 1
	}
	if sc.Timeout <= 0 {
		sc.Timeout = defaultTimeout
	}
	return sc
}

// Device is an open host serial port.
type Device struct {
	mu   sync.Mutex
	cfg  serial.Config
	port serial.Port
}

// Open opens the port described by c.
func Open(c Config) (*Device, error) {
	sc := c.serial()
	p, err := serial.Open(&sc)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", sc.Address, err)
	}
	return &Device{cfg: sc, port: p}, nil
}

func (d *Device) current() serial.Port {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.port
}

func (d *Device) Write(p []byte) (int, error) { return d.current().Write(p) }

// RecvSomeContext reads what is available; a read timeout yields (0, nil).
func (d *Device) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := d.current().Read(p)
	if errors.Is(err, serial.ErrTimeout) {
		return n, nil
	}
	return n, err
}

// SetBaudRate reopens the port at br when it differs from the current rate.
func (d *Device) SetBaudRate(br uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if int(br) == d.cfg.BaudRate {
		return nil
	}
	if err := d.port.Close(); err != nil {
		return fmt.Errorf("close %s: %w", d.cfg.Address, err)
	}
	d.cfg.BaudRate = int(br)
	p, err := serial.Open(&d.cfg)
	if err != nil {
		return fmt.Errorf("reopen %s at %d: %w", d.cfg.Address, br, err)
	}
	d.port = p
	return nil
}

// Close releases the port.
func (d *Device) Close() error { return d.current().Close() }
