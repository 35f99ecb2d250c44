package menu

import (
	"bytes"
	"sync"
)

// --- minimal fake port implementing Port, BaudSetter and Readier ---

type fakePort struct {
	mu    sync.Mutex
	rx    []byte
	out   bytes.Buffer
	rd    chan struct{}
	baud  uint32
	ready bool
}

func newFakePort() *fakePort { return &fakePort{rd: make(chan struct{}, 1), ready: true} }

func (f *fakePort) inject(s string) {
	f.mu.Lock()
	f.rx = append(f.rx, s...)
	f.mu.Unlock()
	select {
	case f.rd <- struct{}{}:
	default:
	}
}

func (f *fakePort) output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.String()
}

func (f *fakePort) reset() {
	f.mu.Lock()
	f.out.Reset()
	f.mu.Unlock()
}

func (f *fakePort) Buffered() int { f.mu.Lock(); n := len(f.rx); f.mu.Unlock(); return n }
func (f *fakePort) ReadByte() (byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.rx[0]
	f.rx = f.rx[1:]
	return b, nil
}
func (f *fakePort) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.Write(p)
}
func (f *fakePort) Readable() <-chan struct{}   { return f.rd }
func (f *fakePort) SetBaudRate(br uint32) error { f.baud = br; return nil }
func (f *fakePort) Ready() bool                 { f.mu.Lock(); r := f.ready; f.mu.Unlock(); return r }
func (f *fakePort) setReady(r bool)             { f.mu.Lock(); f.ready = r; f.mu.Unlock() }

// --- indicator recording every Set ---

type fakeLED struct{ sets []bool }

func (l *fakeLED) Set(on bool) { l.sets = append(l.sets, on) }

// --- store over a byte image of NUL-terminated labels ---

type fakeStore struct {
	img    []byte
	copies int
}

func (s *fakeStore) add(label string) uint32 {
	addr := uint32(len(s.img))
	s.img = append(s.img, label...)
	s.img = append(s.img, 0)
	return addr
}

func (s *fakeStore) CopyChunk(dst []byte, addr uint32) int {
	s.copies++
	n := 0
	for n < len(dst) && int(addr)+n < len(s.img) && s.img[int(addr)+n] != 0 {
		dst[n] = s.img[int(addr)+n]
		n++
	}
	return n
}
