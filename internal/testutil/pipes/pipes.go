// Package pipes provides small in-memory transports for exercising
// internal/sender, internal/receiver, and internal/channel without a real
// socket: a synchronous net.Pipe-backed duplex, and a cooperative transport
// that always reports "not ready" after every single byte, for the
// dual-mode scenarios a cooperative codec has to survive.
package pipes

import (
	"io"
	"net"
	"sync"

	"github.com/danmuck/chanwire/internal/wireio"
)

// Duplex returns a pair of connected, in-memory blocking transports. Each
// end's Reader/Writer sees only what was written to the other end.
func Duplex() (a, b net.Conn) {
	return net.Pipe()
}

// OneByteAtATime wraps a blocking io.Reader/io.Writer pair into a
// cooperative AsyncReader/AsyncWriter that moves at most one byte per call
// and answers every other call with wireio.ErrWouldBlock; reads and writes
// share that alternation. Reads never block: a background goroutine drains
// the underlying reader into an internal buffer, and a read that finds the
// buffer empty reports wireio.ErrWouldBlock. Writes go straight to the
// underlying writer and block for as long as its Write does.
type OneByteAtATime struct {
	mu    sync.Mutex
	buf   []byte
	err   error
	ready bool

	src io.Reader
	dst io.Writer
}

// NewOneByteAtATime starts a background reader draining src one byte at a
// time into an internal, growing buffer, and wraps dst for writes.
func NewOneByteAtATime(src io.Reader, dst io.Writer) *OneByteAtATime {
	t := &OneByteAtATime{src: src, dst: dst}
	go t.pump()
	return t
}

func (t *OneByteAtATime) pump() {
	one := make([]byte, 1)
	for {
		n, err := t.src.Read(one)
		t.mu.Lock()
		if n > 0 {
			t.buf = append(t.buf, one[0])
		}
		if err != nil {
			t.err = err
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
	}
}

// ReadAsync implements wireio.AsyncReader: it delivers at most one buffered
// byte per call that isn't a WouldBlock, alternating with a WouldBlock
// report even when a byte is already available, to force callers through
// at least one extra resumption per byte.
func (t *OneByteAtATime) ReadAsync(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.ready {
		t.ready = true
		return 0, wireio.ErrWouldBlock
	}
	t.ready = false

	if len(t.buf) == 0 {
		if t.err != nil {
			return 0, t.err
		}
		return 0, wireio.ErrWouldBlock
	}
	p[0] = t.buf[0]
	t.buf = t.buf[1:]
	return 1, nil
}

// WriteAsync implements wireio.AsyncWriter, forwarding one byte per call
// that isn't a WouldBlock report.
func (t *OneByteAtATime) WriteAsync(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	t.mu.Lock()
	ready := t.ready
	t.ready = !ready
	t.mu.Unlock()

	if !ready {
		return 0, wireio.ErrWouldBlock
	}
	n, err := t.dst.Write(p[:1])
	if err != nil {
		return 0, err
	}
	return n, nil
}
