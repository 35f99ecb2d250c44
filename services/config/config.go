// Package config loads console configuration from YAML, either a file on the
// host or a document embedded in the firmware per board.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"serialmenu/menu"
)

type Config struct {
	Console ConsoleConfig `yaml:"console"`
	Serial  SerialConfig  `yaml:"serial"`
	LED     LEDConfig     `yaml:"led"`
	Labels  LabelsConfig  `yaml:"labels"`
}

// ---- CONSOLE ----

type ConsoleConfig struct {
	Baud      uint32 `yaml:"baud"`
	CRLF      bool   `yaml:"crlf"`
	Minimal   bool   `yaml:"minimal"`
	Banner    string `yaml:"banner"`
	Header    string `yaml:"header"`
	Marker    string `yaml:"marker"` // single character
	ChunkSize int    `yaml:"chunk_size"`
	LoopMs    int    `yaml:"loop_ms"`
	Heartbeat *bool  `yaml:"heartbeat"` // default on
}

// ---- SERIAL ----

type SerialConfig struct {
	Address   string `yaml:"address"` // host tty, or "uart0"/"uart1" on device
	DataBits  int    `yaml:"data_bits"`
	StopBits  int    `yaml:"stop_bits"`
	Parity    string `yaml:"parity"` // none | even | odd
	TimeoutMs int    `yaml:"timeout_ms"`
	RXSize    int    `yaml:"rx_size"` // power of two
}

// ---- LED ----

type LEDConfig struct {
	Enabled   bool `yaml:"enabled"`
	Pin       int  `yaml:"pin"` // -1 selects the board LED
	ActiveLow bool `yaml:"active_low"`
}

// ---- LABELS ----

type LabelsConfig struct {
	Source  string `yaml:"source"` // inline | eeprom | flash
	I2C     string `yaml:"i2c"`
	Address uint16 `yaml:"address"`
	Offset  int64  `yaml:"offset"`
}

// Load reads and parses a YAML file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes YAML, applies defaults and validates.
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EmbeddedConfigLookup allows overriding how board configs are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// ForBoard parses the embedded configuration for board.
func ForBoard(board string) (*Config, error) {
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return nil, errors.New("no embedded config for board: " + board)
	}
	return Parse(raw)
}

// HeartbeatEnabled reports the effective heartbeat switch.
func (c *ConsoleConfig) HeartbeatEnabled() bool {
	return c.Heartbeat == nil || *c.Heartbeat
}

// LoopInterval is the control-loop period.
func (c *ConsoleConfig) LoopInterval() time.Duration {
	return time.Duration(c.LoopMs) * time.Millisecond
}

// MenuConfig derives engine settings. Indicator and Store are hardware
// dependent and are filled in by the caller.
func (c *Config) MenuConfig() menu.Config {
	mc := menu.Config{
		Baud:             c.Console.Baud,
		ChunkSize:        c.Console.ChunkSize,
		Banner:           c.Console.Banner,
		Header:           c.Console.Header,
		Minimal:          c.Console.Minimal,
		CRLF:             c.Console.CRLF,
		DisableHeartbeat: !c.Console.HeartbeatEnabled(),
	}
	if c.Console.Marker != "" {
		mc.Marker = c.Console.Marker[0]
	}
	return mc
}
