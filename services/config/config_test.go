package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"serialmenu/errcode"
)

func TestForBoard_EmbeddedDefaults(t *testing.T) {
	for _, board := range []string{"pico", "host"} {
		cfg, err := ForBoard(board)
		if err != nil {
			t.Fatalf("%s: %v", board, err)
		}
		if cfg.Console.LoopMs != 100 || cfg.Serial.RXSize != 256 {
			t.Fatalf("%s: defaults not applied: %+v", board, cfg)
		}
	}
	pico, _ := ForBoard("pico")
	mc := pico.MenuConfig()
	if mc.Baud != 115200 || !mc.CRLF || mc.Marker != '.' || mc.DisableHeartbeat {
		t.Fatalf("menu config = %+v", mc)
	}
	if _, err := ForBoard("nope"); err == nil {
		t.Fatalf("expected error for unknown board")
	}
}

func TestForBoard_LookupOverride(t *testing.T) {
	old := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(board string) ([]byte, bool) {
		return []byte("console:\n  heartbeat: false\n  marker: '*'\n"), true
	}
	t.Cleanup(func() { EmbeddedConfigLookup = old })

	cfg, err := ForBoard("any")
	if err != nil {
		t.Fatalf("ForBoard: %v", err)
	}
	mc := cfg.MenuConfig()
	if !mc.DisableHeartbeat || mc.Marker != '*' {
		t.Fatalf("menu config = %+v", mc)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	doc := `
console:
  loop_ms: 50
serial:
  address: /dev/ttyUSB0
  parity: even
labels:
  source: eeprom
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Serial.ParityCode() != "E" || cfg.Console.LoopInterval().Milliseconds() != 50 {
		t.Fatalf("unexpected: %+v", cfg)
	}
	if cfg.Labels.Address != 0x50 || cfg.Labels.I2C != "i2c0" {
		t.Fatalf("eeprom defaults: %+v", cfg.Labels)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"loop", "console:\n  loop_ms: 70000\n", "loop_ms"},
		{"chunk", "console:\n  chunk_size: 1\n", "chunk_size"},
		{"marker", "console:\n  marker: '..'\n", "marker"},
		{"bits", "serial:\n  data_bits: 9\n", "data_bits"},
		{"stop", "serial:\n  stop_bits: 3\n", "stop_bits"},
		{"parity", "serial:\n  parity: mark\n", "parity"},
		{"rx", "serial:\n  rx_size: 100\n", "rx_size"},
		{"source", "labels:\n  source: sdcard\n", "labels.source"},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.doc))
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if errcode.Of(err) != errcode.InvalidConfig || !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%s: err = %v", c.name, err)
		}
	}
	if _, err := Parse([]byte("console: [")); err == nil {
		t.Fatalf("expected YAML error")
	}
}
