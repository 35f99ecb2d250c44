package store

import (
	"context"
	"strings"
	"testing"

	"serialmenu/menu"
	"serialmenu/transport"
)

func TestCopyChunk(t *testing.T) {
	var img Image
	a := img.Add("short")
	b := img.Add("a label longer than one chunk")
	s := img.Store()

	buf := make([]byte, 8)
	if n := s.CopyChunk(buf, a); string(buf[:n]) != "short" {
		t.Fatalf("short label = %q", buf[:n])
	}
	if n := s.CopyChunk(buf, b); n != 8 || string(buf[:n]) != "a label " {
		t.Fatalf("first chunk = %q", buf[:n])
	}
	// Past the end of the image.
	if n := s.CopyChunk(buf, uint32(len(img.Bytes()))); n != 0 {
		t.Fatalf("past end = %d", n)
	}
}

type memWriter struct{ mem []byte }

func (w *memWriter) WriteAt(p []byte, off int64) (int, error) {
	return copy(w.mem[off:], p), nil
}

func (w *memWriter) ReadAt(p []byte, off int64) (int, error) {
	return copy(p, w.mem[off:]), nil
}

func TestProvisionWithBase(t *testing.T) {
	var img Image
	addr := img.Add("stored")
	dev := &memWriter{mem: make([]byte, 64)}
	if err := img.Provision(dev, 16); err != nil {
		t.Fatalf("Provision: %v", err)
	}
	s := ReaderAt{R: dev, Base: 16}
	buf := make([]byte, 8)
	if n := s.CopyChunk(buf, addr); string(buf[:n]) != "stored" {
		t.Fatalf("got %q", buf[:n])
	}
}

func TestShowAssemblesLongLabel(t *testing.T) {
	var img Image
	long := strings.Repeat("0123456789", 5)
	addr := img.Add(long)

	lb := transport.NewLoopback(16)
	p := transport.NewPort(lb, 16)
	p.Start(context.Background())
	e, err := menu.New(context.Background(), p, menu.Config{Minimal: true, Store: img.Store()})
	if err != nil {
		t.Fatalf("menu.New: %v", err)
	}
	m := []menu.Entry{menu.NewEntry(menu.Bulk(addr), 'l', nil)}
	_ = e.Load(m, len(m))
	e.Show()
	if got := lb.Output(); got != long+"\n" {
		t.Fatalf("show = %q", got)
	}
}
