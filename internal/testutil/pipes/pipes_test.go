package pipes

import (
	"bytes"
	"testing"
	"time"

	"github.com/danmuck/chanwire/internal/wireio"
)

func TestDuplexDeliversWrittenBytes(t *testing.T) {
	a, b := Duplex()
	defer a.Close()
	defer b.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := a.Write([]byte("hello")); err != nil {
			t.Errorf("write: %v", err)
		}
	}()

	buf := make([]byte, 5)
	if _, err := readFull(b, buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	<-done
	if !bytes.Equal(buf, []byte("hello")) {
		t.Fatalf("got %q, want %q", buf, "hello")
	}
}

func readFull(r interface{ Read([]byte) (int, error) }, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func TestOneByteAtATimeTransfersEveryByte(t *testing.T) {
	src := bytes.NewReader([]byte("abc"))
	var dst bytes.Buffer
	transport := NewOneByteAtATime(src, &dst)

	var received []byte
	deadline := time.After(time.Second)
	for len(received) < 3 {
		select {
		case <-deadline:
			t.Fatalf("timed out; received so far: %q", received)
		default:
		}
		one := make([]byte, 1)
		n, err := transport.ReadAsync(one)
		if err != nil {
			if err == wireio.ErrWouldBlock {
				continue
			}
			t.Fatalf("ReadAsync: %v", err)
		}
		received = append(received, one[:n]...)
	}
	if !bytes.Equal(received, []byte("abc")) {
		t.Fatalf("got %q, want %q", received, "abc")
	}
}

func TestOneByteAtATimeWriteAsyncEventuallyFlushesEveryByte(t *testing.T) {
	var dst bytes.Buffer
	transport := NewOneByteAtATime(bytes.NewReader(nil), &dst)

	payload := []byte("xyz")
	deadline := time.After(time.Second)
	for i := 0; i < len(payload); {
		select {
		case <-deadline:
			t.Fatalf("timed out; wrote so far: %q", dst.Bytes())
		default:
		}
		n, err := transport.WriteAsync(payload[i:])
		if err != nil {
			if err == wireio.ErrWouldBlock {
				continue
			}
			t.Fatalf("WriteAsync: %v", err)
		}
		i += n
	}
	if dst.String() != "xyz" {
		t.Fatalf("got %q, want %q", dst.String(), "xyz")
	}
}
