package transport

import (
	"context"
	"io"
)

type readResult struct {
	n   int
	err error
}

// ContextReader makes reads from a blocking source return once ctx is done.
// A read in flight when ctx ends is abandoned; its goroutine exits when the
// source next returns.
type ContextReader struct {
	ctx context.Context
	src io.Reader
}

func NewContextReader(ctx context.Context, src io.Reader) *ContextReader {
	return &ContextReader{ctx: ctx, src: src}
}

func (r *ContextReader) Read(b []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	buf := make([]byte, len(b))
	ch := make(chan readResult, 1)
	go func() {
		n, err := r.src.Read(buf)
		ch <- readResult{n: n, err: err}
	}()

	select {
	case <-r.ctx.Done():
		return 0, r.ctx.Err()
	case res := <-ch:
		return copy(b, buf[:res.n]), res.err
	}
}
