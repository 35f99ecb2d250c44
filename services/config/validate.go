package config

import (
	"fmt"

	"serialmenu/errcode"
	"serialmenu/x/mathx"
)

// Validate checks configuration correctness.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	c := cfg.Console
	if !mathx.Between(c.LoopMs, 1, 65535) {
		return invalid("console.loop_ms must be 1..65535 (got %d)", c.LoopMs)
	}
	if !mathx.Between(c.ChunkSize, 2, 256) {
		return invalid("console.chunk_size must be 2..256 (got %d)", c.ChunkSize)
	}
	if len(c.Marker) != 1 || !mathx.Between(c.Marker[0], 0x20, 0x7E) {
		return invalid("console.marker must be one printable ASCII character (got %q)", c.Marker)
	}

	s := cfg.Serial
	if !mathx.Between(s.DataBits, 5, 8) {
		return invalid("serial.data_bits must be 5..8 (got %d)", s.DataBits)
	}
	if s.StopBits != 1 && s.StopBits != 2 {
		return invalid("serial.stop_bits must be 1 or 2 (got %d)", s.StopBits)
	}
	switch s.Parity {
	case "none", "even", "odd":
	default:
		return invalid("serial.parity must be none|even|odd (got %q)", s.Parity)
	}
	if s.TimeoutMs < 0 {
		return invalid("serial.timeout_ms must be >= 0 (got %d)", s.TimeoutMs)
	}
	if s.RXSize < 2 || s.RXSize&(s.RXSize-1) != 0 {
		return invalid("serial.rx_size must be a power of two >= 2 (got %d)", s.RXSize)
	}

	switch cfg.Labels.Source {
	case "inline", "eeprom", "flash":
	default:
		return invalid("labels.source must be inline|eeprom|flash (got %q)", cfg.Labels.Source)
	}
	if cfg.Labels.Offset < 0 {
		return invalid("labels.offset must be >= 0 (got %d)", cfg.Labels.Offset)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return &errcode.E{C: errcode.InvalidConfig, Op: "config.Validate", Msg: fmt.Sprintf(format, args...)}
}

// ParityCode maps the configured parity to the single-letter form used by
// host serial libraries.
func (s SerialConfig) ParityCode() string {
	switch s.Parity {
	case "even":
		return "E"
	case "odd":
		return "O"
	default:
		return "N"
	}
}
