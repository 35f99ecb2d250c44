package transport

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"serialmenu/errcode"
	"serialmenu/menu"
)

// waitBuffered polls until n bytes reached the RX ring.
func waitBuffered(t *testing.T, p *Port, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for p.Buffered() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timeout: %d of %d bytes buffered", p.Buffered(), n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPort_PumpAndRead(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lb := NewLoopback(64)
	p := NewPort(lb, 16)
	if p.Ready() {
		t.Fatalf("ready before Start")
	}
	if _, err := p.ReadByte(); !errors.Is(err, errcode.NotReady) {
		t.Fatalf("ReadByte on empty = %v", err)
	}
	p.Start(ctx)

	// Larger than the ring: the pump must wait for space.
	in := strings.Repeat("0123456789", 4)
	lb.Feed(in)
	var got []byte
	deadline := time.Now().Add(time.Second)
	for len(got) < len(in) && time.Now().Before(deadline) {
		if p.Buffered() == 0 {
			select {
			case <-p.Readable():
			case <-time.After(5 * time.Millisecond):
			}
			continue
		}
		b, err := p.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte: %v", err)
		}
		got = append(got, b)
	}
	if string(got) != in {
		t.Fatalf("got %q want %q", got, in)
	}
	if !p.Ready() {
		t.Fatalf("not ready while pumping")
	}

	if _, err := p.Write([]byte("out")); err != nil || lb.Output() != "out" {
		t.Fatalf("Write: %v, output %q", err, lb.Output())
	}

	cancel()
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatalf("pump did not stop")
	}
	if p.Ready() {
		t.Fatalf("ready after stop")
	}
}

type baudDev struct {
	*Loopback
	br uint32
}

func (b *baudDev) SetBaudRate(br uint32) error { b.br = br; return nil }

func TestPort_SetBaudRate(t *testing.T) {
	d := &baudDev{Loopback: NewLoopback(8)}
	p := NewPort(d, 0)
	if err := p.SetBaudRate(115200); err != nil || d.br != 115200 {
		t.Fatalf("SetBaudRate: %v br=%d", err, d.br)
	}
	if err := NewPort(NewLoopback(8), 0).SetBaudRate(9600); err != nil {
		t.Fatalf("SetBaudRate without support: %v", err)
	}
}

// eofReader ends the stream after its data.
type eofReader struct {
	mu   sync.Mutex
	data []byte
}

func (r *eofReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestStream_EOFStopsPump(t *testing.T) {
	var out strings.Builder
	p := NewPort(Stream{R: &eofReader{data: []byte("ab")}, W: &out}, 0)
	p.Start(context.Background())
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatalf("pump did not stop on EOF")
	}
	if p.Buffered() != 2 {
		t.Fatalf("buffered = %d", p.Buffered())
	}
}

func TestPort_DrivesMenuEngine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lb := NewLoopback(64)
	p := NewPort(lb, 64)
	p.Start(ctx)

	e, err := menu.New(ctx, p, menu.Config{Minimal: true})
	if err != nil {
		t.Fatalf("menu.New: %v", err)
	}
	var set int
	m := []menu.Entry{
		menu.NewEntry(menu.Text("S - set value"), 's', menu.ActionFunc(func() {
			v, err := menu.ReadNumber[int](e.Context(), e, "value? ")
			if err == nil {
				set = v
			}
		})),
	}
	if err := e.Load(m, len(m)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	lb.Feed("S\n-17\n")
	waitBuffered(t, p, 1)
	if !e.Run(100) {
		t.Fatalf("Run reported no activity")
	}
	if set != -17 {
		t.Fatalf("set = %d", set)
	}
	if got := lb.Output(); got != "value? -17\n" {
		t.Fatalf("output = %q", got)
	}
}
