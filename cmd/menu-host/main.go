//go:build !rp2040

// Command menu-host runs the demo menus on a host serial port, on the
// process's stdin/stdout, or on an in-memory loopback fed from -keys.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"serialmenu/cmd/internal/demo"
	"serialmenu/indicator"
	"serialmenu/menu"
	"serialmenu/services/config"
	"serialmenu/services/console"
	"serialmenu/transport"
	"serialmenu/transport/hostserial"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (default: embedded host config)")
	portName := flag.String("port", "", "serial device, overrides serial.address; empty uses stdin/stdout")
	loopback := flag.Bool("loopback", false, "run against an in-memory port fed from -keys")
	keys := flag.String("keys", "z\ne\n42\nb\n", "input for -loopback")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		println("[main] config:", err.Error())
		os.Exit(1)
	}
	if *portName != "" {
		cfg.Serial.Address = *portName
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		dev transport.Device
		lb  *transport.Loopback
	)
	switch {
	case *loopback:
		lb = transport.NewLoopback(cfg.Serial.RXSize)
		lb.Feed(*keys)
		dev = lb
	case cfg.Serial.Address != "":
		d, err := hostserial.Open(hostserial.Config{
			Address:  cfg.Serial.Address,
			Baud:     int(cfg.Console.Baud),
			DataBits: cfg.Serial.DataBits,
			StopBits: cfg.Serial.StopBits,
			Parity:   cfg.Serial.ParityCode(),
			Timeout:  time.Duration(cfg.Serial.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			println("[main] serial:", err.Error())
			os.Exit(1)
		}
		defer d.Close()
		dev = d
	default:
		dev = transport.Stream{R: os.Stdin, W: os.Stdout}
	}

	port := transport.NewPort(dev, cfg.Serial.RXSize)
	port.Start(ctx)

	img, addrs := demo.Labels()
	if cfg.Labels.Source != "inline" {
		println("[main] labels source", cfg.Labels.Source, "unavailable on host, using inline image")
	}

	mc := cfg.MenuConfig()
	mc.Store = img.Store()
	if cfg.LED.Enabled {
		mc.Indicator = indicator.NewLED(&indicator.FakePin{OnChange: func(level bool) {
			println("[led]", level)
		}}, indicator.Params{ActiveLow: cfg.LED.ActiveLow})
	}

	e, err := menu.New(ctx, port, mc)
	if err != nil {
		println("[main] menu:", err.Error())
		os.Exit(1)
	}

	loop := console.New(e, cfg.Console.LoopInterval())
	demo.New(e, addrs, loop)
	e.Show()

	if lb == nil {
		loop.Run(ctx)
		return
	}

	// Drain the scripted input, then print the transcript.
	rctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go loop.Run(rctx)
	for port.Buffered() > 0 || lb.Pending() > 0 {
		time.Sleep(cfg.Console.LoopInterval())
	}
	time.Sleep(2 * cfg.Console.LoopInterval())
	cancel()
	os.Stdout.WriteString(lb.Output())
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.ForBoard("host")
	}
	return config.Load(path)
}
