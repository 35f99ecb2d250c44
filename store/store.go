// Package store resolves bulk menu labels: NUL-terminated strings addressed
// by offset inside EEPROM, flash or an in-memory image.
package store

import (
	"bytes"
	"io"
)

// ReaderAt serves labels from any io.ReaderAt. Base is added to every
// label address, so an image can sit at an offset inside a larger device.
type ReaderAt struct {
	R    io.ReaderAt
	Base int64
}

// CopyChunk copies the label bytes at addr into dst, stopping at the NUL
// terminator, the end of the device or a read error.
func (s ReaderAt) CopyChunk(dst []byte, addr uint32) int {
	n, _ := s.R.ReadAt(dst, s.Base+int64(addr))
	if i := bytes.IndexByte(dst[:n], 0); i >= 0 {
		return i
	}
	return n
}

// Image builds a label image for provisioning EEPROM or flash, or to serve
// bulk labels directly from RAM on the host.
type Image struct {
	buf []byte
}

// Add appends a label and returns its address.
func (m *Image) Add(label string) uint32 {
	addr := uint32(len(m.buf))
	m.buf = append(m.buf, label...)
	m.buf = append(m.buf, 0)
	return addr
}

// Bytes returns the encoded image.
func (m *Image) Bytes() []byte { return m.buf }

// ReadAt implements io.ReaderAt over the image.
func (m *Image) ReadAt(p []byte, off int64) (int, error) {
	return bytes.NewReader(m.buf).ReadAt(p, off)
}

// Store returns a label store reading from the image.
func (m *Image) Store() ReaderAt { return ReaderAt{R: m} }

// Provision writes the image to w at base, e.g. an EEPROM.
func (m *Image) Provision(w io.WriterAt, base int64) error {
	_, err := w.WriteAt(m.buf, base)
	return err
}
