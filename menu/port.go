package menu

import "time"

// Port is the byte transport the engine talks through.
// ReadByte is only called after Buffered reported pending input.
// Readable must fire after the RX side goes from empty to non-empty;
// spurious wakeups are tolerated.
type Port interface {
	Buffered() int
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
	Readable() <-chan struct{}
}

// BaudSetter is implemented by ports whose line rate can be configured.
type BaudSetter interface {
	SetBaudRate(br uint32) error
}

// Readier is implemented by ports that need time before first use
// (USB CDC enumeration, a pump goroutine not yet started).
type Readier interface {
	Ready() bool
}

// Store gives access to labels that the output path cannot address directly.
// CopyChunk copies at most len(dst) bytes of the NUL-terminated string at addr
// into dst and returns how many were copied, excluding the terminator.
type Store interface {
	CopyChunk(dst []byte, addr uint32) int
}

// Indicator is a single on/off status output, typically an LED.
type Indicator interface {
	Set(on bool)
}

const (
	DefaultBaud      = 9600
	DefaultChunkSize = 8
	DefaultBanner    = "SerialMenu"
	DefaultHeader    = "Menu:"
	DefaultMarker    = '.'
	DefaultReadyPoll = 10 * time.Millisecond

	minChunkSize = 2
)

// Config controls engine behaviour. All fields are optional.
type Config struct {
	// Baud is applied to ports implementing BaudSetter. Default 9600.
	Baud uint32
	// ChunkSize is the local buffer size used to copy bulk labels. Default 8.
	ChunkSize int
	// Banner is written once by New. Default "SerialMenu".
	Banner string
	// Header is written by Show before the entries. Default "Menu:".
	Header string
	// Minimal suppresses the banner and the Show header.
	Minimal bool
	// Marker is printed every ~10s of idling. Default '.'.
	Marker byte
	// CRLF terminates lines with "\r\n" instead of "\n".
	CRLF bool
	// DisableHeartbeat turns off idle markers and blinking even when an
	// Indicator is present.
	DisableHeartbeat bool
	// Indicator is the status output blinked while idle. Nil disables the
	// heartbeat.
	Indicator Indicator
	// Store resolves bulk labels. Bulk labels print empty without one.
	Store Store
	// ReadyPoll is the interval between Readier checks in New. Default 10ms.
	ReadyPoll time.Duration
}

func (c Config) withDefaults() Config {
	if c.Baud == 0 {
		c.Baud = DefaultBaud
	}
	if c.ChunkSize < minChunkSize {
		c.ChunkSize = DefaultChunkSize
	}
	if c.Banner == "" {
		c.Banner = DefaultBanner
	}
	if c.Header == "" {
		c.Header = DefaultHeader
	}
	if c.Marker == 0 {
		c.Marker = DefaultMarker
	}
	if c.ReadyPoll <= 0 {
		c.ReadyPoll = DefaultReadyPoll
	}
	return c
}
