// Package at24 provides a driver for 24Cxx-family I²C EEPROMs with 16-bit
// word addressing (24C32 and up). It exposes io.ReaderAt / io.WriterAt so
// the device can back a label store.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when both
// w and r are provided, without releasing the bus.
package at24

import (
	"errors"
	"io"
	"time"

	"tinygo.org/x/drivers"

	"serialmenu/x/mathx"
)

// Address is the default I²C address (A2..A0 tied low).
const Address = 0x50

// Errors returned by the driver.
var (
	ErrRange   = errors.New("at24: address out of range")
	ErrTimeout = errors.New("at24: write cycle timeout")
)

// Config describes the part. All fields are optional.
type Config struct {
	// Address defaults to 0x50.
	Address uint16
	// Size in bytes. Default 4096 (24C32).
	Size int64
	// PageSize limits a single write transaction. Default 32.
	PageSize int
	// WriteCycle is the maximum internal write time. Default 5 ms.
	WriteCycle time.Duration
	// MaxRead splits large reads into several transactions. Default 64.
	MaxRead int
}

// Device wraps an I2C connection to an EEPROM.
type Device struct {
	bus drivers.I2C
	cfg Config
	buf []byte // page write scratch: 2 address bytes + page
}

// New creates a device handle. The bus must already be configured; the part
// is not touched until the first transfer.
func New(bus drivers.I2C, cfg Config) *Device {
	if cfg.Address == 0 {
		cfg.Address = Address
	}
	if cfg.Size <= 0 {
		cfg.Size = 4096
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 32
	}
	if cfg.WriteCycle <= 0 {
		cfg.WriteCycle = 5 * time.Millisecond
	}
	if cfg.MaxRead <= 0 {
		cfg.MaxRead = 64
	}
	return &Device{bus: bus, cfg: cfg, buf: make([]byte, 2+cfg.PageSize)}
}

// Size returns the capacity in bytes.
func (d *Device) Size() int64 { return d.cfg.Size }

// ReadAt reads len(p) bytes starting at off. Reads past the end are
// truncated and return io.EOF.
func (d *Device) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= d.cfg.Size {
		return 0, ErrRange
	}
	var eof error
	if rem := d.cfg.Size - off; int64(len(p)) > rem {
		p = p[:rem]
		eof = io.EOF
	}
	n := 0
	for n < len(p) {
		chunk := mathx.Min(len(p)-n, d.cfg.MaxRead)
		addr := off + int64(n)
		if err := d.bus.Tx(d.cfg.Address, []byte{byte(addr >> 8), byte(addr)}, p[n:n+chunk]); err != nil {
			return n, err
		}
		n += chunk
	}
	return n, eof
}

// WriteAt writes p at off, splitting on page boundaries and waiting for the
// internal write cycle after each page.
func (d *Device) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 || off+int64(len(p)) > d.cfg.Size {
		return 0, ErrRange
	}
	n := 0
	for n < len(p) {
		addr := off + int64(n)
		room := d.cfg.PageSize - int(addr%int64(d.cfg.PageSize))
		chunk := mathx.Min(len(p)-n, room)

		w := d.buf[:2+chunk]
		w[0], w[1] = byte(addr>>8), byte(addr)
		copy(w[2:], p[n:n+chunk])
		if err := d.bus.Tx(d.cfg.Address, w, nil); err != nil {
			return n, err
		}
		if err := d.waitReady(); err != nil {
			return n, err
		}
		n += chunk
	}
	return n, nil
}

// waitReady polls for the ACK that ends the internal write cycle.
func (d *Device) waitReady() error {
	deadline := time.Now().Add(2 * d.cfg.WriteCycle)
	for {
		if err := d.bus.Tx(d.cfg.Address, nil, nil); err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		time.Sleep(d.cfg.WriteCycle / 5)
	}
}
