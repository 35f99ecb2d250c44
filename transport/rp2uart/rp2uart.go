//go:build rp2040

// Package rp2uart adapts RP2040 UARTs (via uartx) to transport.Device.
package rp2uart

import (
	"context"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"serialmenu/errcode"
)

// Config selects and configures one UART. Zero pins use board defaults.
type Config struct {
	ID       string // "uart0" | "uart1"
	Baud     uint32
	TX       machine.Pin
	RX       machine.Pin
	DataBits uint8
	StopBits uint8
	Parity   string // "none" | "even" | "odd"
}

// Device is a configured hardware UART.
type Device struct{ u *uartx.UART }

// Open configures the UART named by cfg.ID.
func Open(cfg Config) (*Device, error) {
	var hw *uartx.UART
	switch cfg.ID {
	case "uart0", "":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "rp2uart.Open", Msg: "unknown uart " + cfg.ID}
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: cfg.Baud,
		TX:       cfg.TX,
		RX:       cfg.RX,
	}); err != nil {
		return nil, errcode.Wrap(errcode.NotReady, "rp2uart.Open", err)
	}
	d := &Device{u: hw}
	if cfg.DataBits != 0 || cfg.StopBits != 0 || cfg.Parity != "" {
		if err := d.SetFormat(cfg.DataBits, cfg.StopBits, cfg.Parity); err != nil {
			return nil, errcode.Wrap(errcode.InvalidParams, "rp2uart.Open", err)
		}
	}
	return d, nil
}

func (d *Device) Write(b []byte) (int, error) { return d.u.Write(b) }

func (d *Device) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	return d.u.RecvSomeContext(ctx, buf)
}

func (d *Device) SetBaudRate(br uint32) error { d.u.SetBaudRate(br); return nil }

// SetFormat applies data bits, stop bits and parity ("none","even","odd").
// Zero sizes default to 8N1.
func (d *Device) SetFormat(databits, stopbits uint8, parity string) error {
	if databits == 0 {
		databits = 8
	}
	if stopbits == 0 {
		stopbits = 1
	}
	var par uartx.UARTParity
	switch parity {
	case "even":
		par = uartx.ParityEven
	case "odd":
		par = uartx.ParityOdd
	default:
		par = uartx.ParityNone
	}
	return d.u.SetFormat(databits, stopbits, par)
}
