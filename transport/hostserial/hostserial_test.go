//go:build !rp2040

package hostserial

import (
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	sc := Config{Address: "/dev/null"}.serial()
	if sc.BaudRate != 9600 || sc.DataBits != 8 || sc.StopBits != 1 || sc.Parity != "N" {
		t.Fatalf("unexpected defaults: %+v", sc)
	}
	if sc.Timeout != defaultTimeout {
		t.Fatalf("timeout = %v", sc.Timeout)
	}

	sc = Config{Address: "COM3", Baud: 115200, Parity: "E", Timeout: time.Second}.serial()
	if sc.BaudRate != 115200 || sc.Parity != "E" || sc.Timeout != time.Second || sc.Address != "COM3" {
		t.Fatalf("overrides lost: %+v", sc)
	}
}

func TestOpenMissingDevice(t *testing.T) {
	if _, err := Open(Config{Address: "/nonexistent/tty-serialmenu"}); err == nil {
		t.Fatalf("expected error opening a missing device")
	}
}
