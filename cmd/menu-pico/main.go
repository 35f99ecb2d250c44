//go:build rp2040

// Command menu-pico runs the demo menus on a Raspberry Pi Pico: console on
// UART0, heartbeat on the board LED, bulk labels in on-chip flash or an
// AT24 EEPROM on i2c0.
package main

import (
	"bytes"
	"context"
	"io"
	"machine"
	"time"

	"serialmenu/cmd/internal/demo"
	"serialmenu/drivers/at24"
	"serialmenu/errcode"
	"serialmenu/indicator"
	"serialmenu/menu"
	"serialmenu/services/config"
	"serialmenu/services/console"
	"serialmenu/store"
	"serialmenu/transport"
	"serialmenu/transport/rp2uart"
	"serialmenu/x/mathx"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[main] boot")
	ctx := context.Background()

	cfg, err := config.ForBoard("pico")
	if err != nil {
		halt("config: " + err.Error())
	}

	uart, err := rp2uart.Open(rp2uart.Config{
		ID:       cfg.Serial.Address,
		Baud:     cfg.Console.Baud,
		DataBits: uint8(cfg.Serial.DataBits),
		StopBits: uint8(cfg.Serial.StopBits),
		Parity:   cfg.Serial.Parity,
	})
	if err != nil {
		halt("uart: " + err.Error())
	}
	port := transport.NewPort(uart, cfg.Serial.RXSize)
	port.Start(ctx)

	img, addrs := demo.Labels()
	mc := cfg.MenuConfig()
	mc.Store = labelStore(cfg.Labels, img)

	if cfg.LED.Enabled {
		pin := machine.LED
		if cfg.LED.Pin >= 0 {
			pin = machine.Pin(cfg.LED.Pin)
		}
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		mc.Indicator = indicator.NewLED(pin, indicator.Params{ActiveLow: cfg.LED.ActiveLow})
	}

	e, err := menu.New(ctx, port, mc)
	if err != nil {
		halt("menu: " + err.Error())
	}

	loop := console.New(e, cfg.Console.LoopInterval())
	demo.New(e, addrs, loop)
	e.Show()
	println("[main] menu running")
	loop.Run(ctx)
}

// labelStore returns the bulk-label store selected by cfg, writing img to
// the backing device first when its contents differ.
func labelStore(cfg config.LabelsConfig, img *store.Image) menu.Store {
	switch cfg.Source {
	case "flash":
		if err := provisionFlash(cfg.Offset, img.Bytes()); err != nil {
			println("[labels] flash:", err.Error(), "- using inline image")
			return img.Store()
		}
		return store.ReaderAt{R: machine.Flash, Base: cfg.Offset}
	case "eeprom":
		bus := machine.I2C0
		if cfg.I2C == "i2c1" {
			bus = machine.I2C1
		}
		if err := bus.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz}); err != nil {
			println("[labels] i2c:", err.Error(), "- using inline image")
			return img.Store()
		}
		dev := at24.New(bus, at24.Config{Address: cfg.Address})
		if !matches(dev, cfg.Offset, img.Bytes()) {
			println("[labels] writing", len(img.Bytes()), "bytes to eeprom")
			if err := img.Provision(dev, cfg.Offset); err != nil {
				println("[labels] eeprom:", err.Error(), "- using inline image")
				return img.Store()
			}
		}
		return store.ReaderAt{R: dev, Base: cfg.Offset}
	default:
		return img.Store()
	}
}

func provisionFlash(off int64, b []byte) error {
	if matches(machine.Flash, off, b) {
		return nil
	}
	bs := machine.Flash.EraseBlockSize()
	if off%bs != 0 {
		return &errcode.E{C: errcode.InvalidConfig, Op: "provisionFlash", Msg: "offset not erase-block aligned"}
	}
	println("[labels] writing", len(b), "bytes to flash")
	blocks := int64(mathx.CeilDiv(uint64(len(b)), uint64(bs)))
	if err := machine.Flash.EraseBlocks(off/bs, blocks); err != nil {
		return err
	}
	_, err := machine.Flash.WriteAt(b, off)
	return err
}

func matches(r io.ReaderAt, off int64, want []byte) bool {
	got := make([]byte, len(want))
	n, err := r.ReadAt(got, off)
	return err == nil && n == len(want) && bytes.Equal(got, want)
}

func halt(msg string) {
	for {
		println("[main]", msg)
		time.Sleep(5 * time.Second)
	}
}
