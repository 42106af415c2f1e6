package serial

import (
	"encoding/binary"
	"io"
	"math/bits"
	"os"
)

// File is an in-memory record file. Writes append to the buffered data;
// reads consume from a cursor. The swap flag is fixed when the file is
// opened and applies to every multi-byte primitive read.
type File struct {
	data []byte
	off  int
	swap bool
}

// New returns an empty File for writing.
func New() *File {
	return &File{}
}

// NewReader buffers everything from r into a File ready for reading. If
// swap is true, multi-byte primitives are byte-reversed as they are read.
func NewReader(r io.Reader, swap bool) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &File{data: data, swap: swap}, nil
}

// Open buffers the named file's contents into a File ready for reading.
func Open(path string, swap bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{data: data, swap: swap}, nil
}

// Save writes the buffered data to the named file.
func (f *File) Save(path string) error {
	return os.WriteFile(path, f.data, 0o644)
}

// WriteTo writes the buffered data to w. It implements io.WriterTo.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.data)
	return int64(n), err
}

// Offset returns the current read cursor position.
func (f *File) Offset() int {
	return f.off
}

// Remaining returns the number of unread bytes.
func (f *File) Remaining() int {
	return len(f.data) - f.off
}

// Len returns the total buffered size.
func (f *File) Len() int {
	return len(f.data)
}

// Rewind moves the read cursor back to the start.
func (f *File) Rewind() {
	f.off = 0
}

// ReadBytes fills p exactly from the cursor. If fewer than len(p) bytes
// remain it fails with ErrShortRead and does not advance.
func (f *File) ReadBytes(p []byte) error {
	if len(p) > f.Remaining() {
		return ErrShortRead
	}
	copy(p, f.data[f.off:])
	f.off += len(p)
	return nil
}

// WriteBytes appends p to the buffered data. In-memory writes cannot fail;
// the error return keeps the signature uniform with the read side.
func (f *File) WriteBytes(p []byte) error {
	f.data = append(f.data, p...)
	return nil
}

// ReadUint32 reads a 4-byte little-endian value, byte-reversing it if the
// file was opened with the swap flag.
func (f *File) ReadUint32() (uint32, error) {
	var b [4]byte
	if err := f.ReadBytes(b[:]); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(b[:])
	if f.swap {
		v = bits.ReverseBytes32(v)
	}
	return v, nil
}

// WriteUint32 appends v as 4 little-endian bytes.
func (f *File) WriteUint32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return f.WriteBytes(b[:])
}

// Skip advances the cursor n bytes without copying. A negative n is a
// contract violation and panics; skipping past the end fails with
// ErrShortRead and does not advance.
func (f *File) Skip(n int64) error {
	if n < 0 {
		panic("serial: negative skip")
	}
	if n > int64(f.Remaining()) {
		return ErrShortRead
	}
	f.off += int(n)
	return nil
}
