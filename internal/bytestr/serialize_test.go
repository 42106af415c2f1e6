package bytestr

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/bytestr/internal/serial"
)

func TestSerializeFormat(t *testing.T) {
	s := NewFromString("abc")
	var buf bytes.Buffer

	if err := s.Serialize(&buf); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.Bytes()
	if len(out) != 4+3 {
		t.Fatalf("wrote %d bytes, want 7", len(out))
	}
	if n := binary.LittleEndian.Uint32(out[:4]); n != 3 {
		t.Errorf("length field = %d, want 3", n)
	}
	if string(out[4:]) != "abc" {
		t.Errorf("content = %q, want %q; no terminator may be persisted", out[4:], "abc")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", "hello"},
		{"interior zero", "a\x00b"},
		{"long", strings.Repeat("payload", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewFromBytesLen([]byte(tt.input), len(tt.input))
			var buf bytes.Buffer
			if err := src.Serialize(&buf); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}

			dst := New()
			if err := dst.DeSerialize(false, &buf); err != nil {
				t.Fatalf("DeSerialize failed: %v", err)
			}
			if !dst.Equal(src) {
				t.Errorf("round trip = %q, want %q", dst.String(), tt.input)
			}
		})
	}
}

func TestDeSerializeSwapped(t *testing.T) {
	// A writer of differing endianness produces a big-endian length field.
	var buf bytes.Buffer
	var frame [4]byte
	binary.BigEndian.PutUint32(frame[:], 5)
	buf.Write(frame[:])
	buf.WriteString("hello")

	s := New()
	if err := s.DeSerialize(true, &buf); err != nil {
		t.Fatalf("DeSerialize failed: %v", err)
	}
	if s.String() != "hello" {
		t.Errorf("String() = %q, want %q", s.String(), "hello")
	}
}

func TestDeSerializeRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	var frame [4]byte
	binary.LittleEndian.PutUint32(frame[:], MaxRecordLen+1)
	buf.Write(frame[:])

	s := New()
	capBefore := s.Cap()
	err := s.DeSerialize(false, &buf)
	if !errors.Is(err, ErrRecordTooLarge) {
		t.Fatalf("err = %v, want ErrRecordTooLarge", err)
	}
	if s.Cap() != capBefore {
		t.Errorf("Cap() grew to %d on a rejected record", s.Cap())
	}
}

func TestDeSerializeShortContentLeavesValidBuffer(t *testing.T) {
	var buf bytes.Buffer
	var frame [4]byte
	binary.LittleEndian.PutUint32(frame[:], 100)
	buf.Write(frame[:])
	buf.WriteString("only a little") // fewer than the declared 100 bytes

	s := NewFromString("previous")
	if err := s.DeSerialize(false, &buf); err == nil {
		t.Fatal("short content read should fail")
	}

	// Content is indeterminate but the buffer must remain usable.
	if s.Len() < 0 || s.Len() > s.Cap() {
		t.Errorf("invariants violated after failed deserialize: len %d cap %d", s.Len(), s.Cap())
	}
	s.SetString("recovered")
	if s.String() != "recovered" {
		t.Errorf("buffer unusable after failed deserialize: %q", s.String())
	}
}

func TestSerializeFileRoundTrip(t *testing.T) {
	f := serial.New()
	inputs := []string{"first", "", "third record", "a,b,c"}

	for _, in := range inputs {
		if err := NewFromString(in).SerializeFile(f); err != nil {
			t.Fatalf("SerializeFile(%q) failed: %v", in, err)
		}
	}

	got, err := serial.NewReader(bytes.NewReader(fileBytes(t, f)), false)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	s := New()
	for i, in := range inputs {
		if err := s.DeSerializeFile(got); err != nil {
			t.Fatalf("record %d: DeSerializeFile failed: %v", i, err)
		}
		if s.String() != in {
			t.Errorf("record %d = %q, want %q", i, s.String(), in)
		}
	}
	if got.Remaining() != 0 {
		t.Errorf("%d bytes left over", got.Remaining())
	}
}

func TestSkipDeSerialize(t *testing.T) {
	f := serial.New()
	for _, in := range []string{"skip me", "keep me"} {
		if err := NewFromString(in).SerializeFile(f); err != nil {
			t.Fatalf("SerializeFile failed: %v", err)
		}
	}
	f.Rewind()

	if err := SkipDeSerialize(f); err != nil {
		t.Fatalf("SkipDeSerialize failed: %v", err)
	}

	s := New()
	if err := s.DeSerializeFile(f); err != nil {
		t.Fatalf("DeSerializeFile failed: %v", err)
	}
	if s.String() != "keep me" {
		t.Errorf("String() = %q, want %q", s.String(), "keep me")
	}
}

func TestSkipDeSerializeTruncatedFile(t *testing.T) {
	f := serial.New()
	f.WriteUint32(50) // declares 50 content bytes that never follow
	f.Rewind()

	if err := SkipDeSerialize(f); err == nil {
		t.Error("skipping past the end should fail")
	}
}

// fileBytes drains a write-side File through its WriterTo.
func fileBytes(t *testing.T, f *serial.File) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	return buf.Bytes()
}
