// Package menu implements a single-character serial console menu: an active
// list of entries, a per-iteration Run that dispatches key presses, blocking
// character and number input for actions, and an idle heartbeat.
//
// The engine is driven by one control loop. Actions run synchronously inside
// Run and may call Load and Show to switch menus; Run captures the active
// entries before dispatch and stops scanning once an action returns.
package menu

import (
	"context"
	"time"

	"serialmenu/errcode"
)

// InvalidChoice follows the echoed byte when no entry matches.
const InvalidChoice = ": Invalid menu choice."

// Engine holds the active menu and idle state for one port.
type Engine struct {
	ctx  context.Context
	port Port
	cfg  Config
	eol  []byte

	entries []Entry // caller-owned, never copied
	size    int

	idle  uint32 // consecutive Run calls without input
	chunk []byte
}

// New prepares the port and returns an engine with an empty menu.
// It sets the baud rate on ports implementing BaudSetter, waits until a
// Readier port reports ready (bounded by ctx), and writes the banner.
// ctx is kept and returned by Context for use by actions' blocking reads.
func New(ctx context.Context, port Port, cfg Config) (*Engine, error) {
	const op = "menu.New"
	if port == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: op, Msg: "nil port"}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg = cfg.withDefaults()

	if bs, ok := port.(BaudSetter); ok {
		if err := bs.SetBaudRate(cfg.Baud); err != nil {
			return nil, errcode.Wrap(errcode.NotReady, op, err)
		}
	}
	if r, ok := port.(Readier); ok {
		for !r.Ready() {
			select {
			case <-ctx.Done():
				return nil, errcode.Wrap(errcode.NotReady, op, ctx.Err())
			case <-time.After(cfg.ReadyPoll):
			}
		}
	}

	e := &Engine{
		ctx:   ctx,
		port:  port,
		cfg:   cfg,
		eol:   []byte("\n"),
		chunk: make([]byte, cfg.ChunkSize),
	}
	if cfg.CRLF {
		e.eol = []byte("\r\n")
	}
	if cfg.Indicator != nil {
		cfg.Indicator.Set(false)
	}
	if !cfg.Minimal {
		e.Println(cfg.Banner)
	}
	return e, nil
}

// Context returns the context the engine was created with.
func (e *Engine) Context() context.Context { return e.ctx }

// Load makes entries[:count] the active menu. The slice is referenced, not
// copied, and must stay valid while loaded.
func (e *Engine) Load(entries []Entry, count int) error {
	if count < 0 || count > len(entries) {
		return &errcode.E{C: errcode.InvalidMenu, Op: "menu.Load"}
	}
	e.entries = entries
	e.size = count
	return nil
}

// Active returns the loaded entries.
func (e *Engine) Active() []Entry { return e.entries[:e.size] }

// Show writes the header and one line per active entry.
func (e *Engine) Show() {
	if !e.cfg.Minimal {
		e.Println("")
		e.Println(e.cfg.Header)
	}
	entries, size := e.entries, e.size
	for i := 0; i < size; i++ {
		l := entries[i].Label()
		if l.InBulk {
			e.writeBulk(l.Addr)
		} else {
			e.Print(l.Text)
		}
		e.write(e.eol)
	}
}

// writeBulk streams a stored label through the chunk buffer. A copy that
// fills the buffer means more may follow.
func (e *Engine) writeBulk(addr uint32) {
	if e.cfg.Store == nil {
		return
	}
	for {
		n := e.cfg.Store.CopyChunk(e.chunk, addr)
		if n > 0 {
			e.write(e.chunk[:n])
		}
		if n < len(e.chunk) {
			return
		}
		addr += uint32(n)
	}
}

// ReadChar blocks until a byte is available and returns it. The wait parks
// on the port's readable edge; cancelling ctx is the only way out without
// input.
func (e *Engine) ReadChar(ctx context.Context) (byte, error) {
	for {
		if e.port.Buffered() > 0 {
			return e.port.ReadByte()
		}
		select {
		case <-e.port.Readable():
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// Run performs one control-loop iteration. elapsedMs is the time since the
// previous call and paces the idle heartbeat. Run reports whether input was
// acted on; a line feed is input but not activity, an unknown key is
// activity and gets a diagnostic line.
func (e *Engine) Run(elapsedMs uint16) bool {
	avail := e.port.Buffered() > 0

	if e.heartbeatEnabled(elapsedMs) {
		e.beat(avail, elapsedMs)
	}
	if !avail {
		return false
	}

	c, err := e.port.ReadByte()
	if err != nil || c == '\n' {
		return false
	}

	entries, size := e.entries, e.size
	for i := 0; i < size; i++ {
		if entries[i].Matches(c) {
			entries[i].Invoke()
			return true
		}
	}
	e.write([]byte{c})
	e.Println(InvalidChoice)
	return true
}

// Print writes s without a line ending.
func (e *Engine) Print(s string) {
	if s != "" {
		e.write([]byte(s))
	}
}

// Println writes s followed by the configured line ending.
func (e *Engine) Println(s string) {
	e.Print(s)
	e.write(e.eol)
}

func (e *Engine) write(p []byte) {
	_, _ = e.port.Write(p)
}
