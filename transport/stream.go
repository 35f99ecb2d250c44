package transport

import (
	"context"
	"io"
)

// Stream is a Device over a plain reader and writer, such as a process's
// stdin and stdout. Reads are not interruptible; a cancelled context only
// takes effect once the pending Read returns.
type Stream struct {
	R io.Reader
	W io.Writer
}

func (s Stream) Write(p []byte) (int, error) { return s.W.Write(p) }

func (s Stream) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.R.Read(p)
}
