package byteio

import "testing"

func TestWriteAndBytes(t *testing.T) {
	b := NewBuffer()
	b.Write([]byte("hello"))
	b.WriteByte(' ')
	b.Write([]byte("world"))

	if got := string(b.Bytes()); got != "hello world" {
		t.Fatalf("Bytes() = %q, want %q", got, "hello world")
	}
	if b.Len() != len("hello world") {
		t.Fatalf("Len() = %d, want %d", b.Len(), len("hello world"))
	}
}

func TestWriteUint32LE(t *testing.T) {
	b := NewBuffer()
	b.WriteUint32LE(0x01020304)

	want := []byte{0x04, 0x03, 0x02, 0x01}
	got := b.Bytes()
	if len(got) != 4 {
		t.Fatalf("Len() = %d, want 4", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestGrowsBeyondInitialCapacity(t *testing.T) {
	b := NewBufferSize(4)
	for i := 0; i < 1000; i++ {
		b.WriteByte(byte(i))
	}
	if b.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", b.Len())
	}
	for i := 0; i < 1000; i++ {
		if b.Bytes()[i] != byte(i) {
			t.Fatalf("byte %d = %#x, want %#x", i, b.Bytes()[i], byte(i))
		}
	}
}

func TestEmptyBuffer(t *testing.T) {
	b := NewBuffer()
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
	if len(b.Bytes()) != 0 {
		t.Fatalf("Bytes() = %v, want empty", b.Bytes())
	}
}
