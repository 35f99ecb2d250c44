package shmring

import (
	"testing"
	"time"
)

func TestOrderAcrossWrap(t *testing.T) {
	r := New(16)
	const N = 1000
	src := make([]byte, N)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, 0, N)
	tmp := make([]byte, 5)
	p := src
	for len(dst) < N {
		if len(p) > 0 {
			step := min(7, len(p))
			p = p[r.WriteFrom(p[:step]):]
		}
		n := r.ReadInto(tmp)
		dst = append(dst, tmp[:n]...)
	}
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("mismatch at %d: got %d want %d", i, dst[i], src[i])
		}
	}
}

func TestReadByteAndCounts(t *testing.T) {
	r := New(4)
	if _, ok := r.ReadByte(); ok {
		t.Fatalf("ReadByte on empty ring reported ok")
	}
	if n := r.WriteFrom([]byte("abcdef")); n != 4 {
		t.Fatalf("WriteFrom = %d, want 4", n)
	}
	if r.Space() != 0 || r.Available() != 4 {
		t.Fatalf("space=%d avail=%d", r.Space(), r.Available())
	}
	b, ok := r.ReadByte()
	if !ok || b != 'a' {
		t.Fatalf("ReadByte = %q,%v", b, ok)
	}
	select {
	case <-r.Writable():
	default:
		t.Fatalf("expected writable edge after draining a full ring")
	}
}

func TestReadableEdge(t *testing.T) {
	r := New(8)
	go func() {
		time.Sleep(10 * time.Millisecond)
		r.WriteFrom([]byte{'x'})
	}()
	select {
	case <-r.Readable():
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for readable edge")
	}
	if b, ok := r.ReadByte(); !ok || b != 'x' {
		t.Fatalf("ReadByte = %q,%v", b, ok)
	}
}

func TestNewRejectsNonPow2(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	New(12)
}
