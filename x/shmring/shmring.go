// Package shmring is a single-producer, single-consumer byte ring with
// edge-notification channels, shared between a transport pump goroutine
// and the menu control loop.
package shmring

import (
	"sync/atomic"
)

// Ring is a single-producer, single-consumer byte ring.
// Indices are monotonic; size must be a power of two.
type Ring struct {
	buf  []byte
	mask uint32
	rd   atomic.Uint32 // consumer index
	wr   atomic.Uint32 // producer index

	readable chan struct{} // empty->non-empty edge
	writable chan struct{} // full->non-full edge
}

// New allocates a ring of the given power-of-two size (>= 2).
func New(size int) *Ring {
	if size < 2 || (size&(size-1)) != 0 {
		panic("shmring: size must be power of two >= 2")
	}
	return &Ring{
		buf:      make([]byte, size),
		mask:     uint32(size - 1),
		readable: make(chan struct{}, 1),
		writable: make(chan struct{}, 1),
	}
}

func (r *Ring) size() uint32 { return uint32(len(r.buf)) }

// Space reports free bytes (producer side).
func (r *Ring) Space() int {
	return int(r.size() - (r.wr.Load() - r.rd.Load()))
}

// Available reports buffered bytes (consumer side).
func (r *Ring) Available() int {
	return int(r.wr.Load() - r.rd.Load())
}

// WriteFrom copies as much of src as fits and returns the count.
func (r *Ring) WriteFrom(src []byte) (n int) {
	if len(src) == 0 {
		return 0
	}
	rd := r.rd.Load()
	wr := r.wr.Load()
	before := wr - rd
	space := int(r.size() - before)
	if space <= 0 {
		return 0
	}
	n = min(space, len(src))

	idx := wr & r.mask
	first := min(int(r.size()-idx), n)
	copy(r.buf[idx:idx+uint32(first)], src[:first])
	if second := n - first; second > 0 {
		copy(r.buf[:second], src[first:n])
	}
	r.wr.Store(wr + uint32(n))

	if before == 0 {
		notify(r.readable)
	}
	return n
}

// ReadInto copies up to len(dst) buffered bytes and returns the count.
func (r *Ring) ReadInto(dst []byte) (n int) {
	if len(dst) == 0 {
		return 0
	}
	rd := r.rd.Load()
	wr := r.wr.Load()
	avail := int(wr - rd)
	if avail <= 0 {
		return 0
	}
	n = min(avail, len(dst))

	idx := rd & r.mask
	first := min(int(r.size()-idx), n)
	copy(dst[:first], r.buf[idx:idx+uint32(first)])
	if second := n - first; second > 0 {
		copy(dst[first:n], r.buf[:second])
	}
	r.rd.Store(rd + uint32(n))

	if wr-rd == r.size() {
		notify(r.writable)
	}
	return n
}

// ReadByte consumes one byte. ok is false when the ring is empty.
func (r *Ring) ReadByte() (b byte, ok bool) {
	rd := r.rd.Load()
	wr := r.wr.Load()
	if wr == rd {
		return 0, false
	}
	b = r.buf[rd&r.mask]
	r.rd.Store(rd + 1)
	if wr-rd == r.size() {
		notify(r.writable)
	}
	return b, true
}

// Readable fires after the ring goes from empty to non-empty.
// Consumers must re-check Available after waking.
func (r *Ring) Readable() <-chan struct{} { return r.readable }

// Writable fires after the ring goes from full to non-full.
func (r *Ring) Writable() <-chan struct{} { return r.writable }

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
