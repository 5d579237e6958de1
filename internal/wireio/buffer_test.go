package wireio

import "testing"

func TestReadBufferTakeAdvance(t *testing.T) {
	b := NewReadBuffer([]byte("abcdef"))
	if b.Len() != 6 {
		t.Fatalf("expected len 6, got %d", b.Len())
	}
	head := b.Take(2)
	if string(head) != "ab" {
		t.Fatalf("got %q", head)
	}
	if string(b.Remaining()) != "cdef" {
		t.Fatalf("got %q", b.Remaining())
	}
	b.Advance(4)
	if b.Len() != 0 {
		t.Fatalf("expected len 0, got %d", b.Len())
	}
}

func TestReadBufferAdvanceOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	b := NewReadBuffer([]byte("ab"))
	b.Advance(3)
}

func TestWriteBufferGrowsAndResets(t *testing.T) {
	b := NewWriteBuffer(2)
	b.Write([]byte("hello"))
	b.Write([]byte(" world"))
	if string(b.Bytes()) != "hello world" {
		t.Fatalf("got %q", b.Bytes())
	}
	if b.Len() != 11 {
		t.Fatalf("expected len 11, got %d", b.Len())
	}
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("expected len 0 after reset, got %d", b.Len())
	}
}
