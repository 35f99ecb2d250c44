package config

import (
	"serialmenu/menu"
	"serialmenu/x/strx"
)

// Normalize fills unset fields with defaults. It does not validate.
func Normalize(cfg *Config) {
	c := &cfg.Console
	if c.Baud == 0 {
		c.Baud = menu.DefaultBaud
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = menu.DefaultChunkSize
	}
	if c.LoopMs == 0 {
		c.LoopMs = 100
	}
	c.Marker = strx.Coalesce(c.Marker, string(rune(menu.DefaultMarker)))

	s := &cfg.Serial
	if s.DataBits == 0 {
		s.DataBits = 8
	}
	if s.StopBits == 0 {
		s.StopBits = 1
	}
	s.Parity = strx.Coalesce(s.Parity, "none")
	if s.TimeoutMs == 0 {
		s.TimeoutMs = 100
	}
	if s.RXSize == 0 {
		s.RXSize = 256
	}

	l := &cfg.Labels
	l.Source = strx.Coalesce(l.Source, "inline")
	if l.Source == "eeprom" && l.Address == 0 {
		l.Address = 0x50
	}
	if l.Source == "eeprom" {
		l.I2C = strx.Coalesce(l.I2C, "i2c0")
	}
}
