package bytestr

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/dshills/bytestr/internal/serial"
)

// Persisted format: a 4-byte unsigned little-endian length N followed by N
// content bytes. No terminator is persisted. Records written on a
// foreign-endian system are read back by passing swap=true (or opening the
// serial.File with its swap flag), which byte-reverses the length field.

// MaxRecordLen is the largest content length a deserialize accepts. Declared
// lengths above it mark the record as corrupt, protecting against unbounded
// allocation from bad data.
const MaxRecordLen = 65535

// Serialize writes the content to w in the persisted format.
func (s *String) Serialize(w io.Writer) error {
	s.fixLength()
	n := uint32(s.used - 1)
	var frame [4]byte
	binary.LittleEndian.PutUint32(frame[:], n)
	if _, err := w.Write(frame[:]); err != nil {
		return fmt.Errorf("write record length: %w", err)
	}
	if _, err := w.Write(s.data[:n]); err != nil {
		return fmt.Errorf("write record content: %w", err)
	}
	return nil
}

// DeSerialize replaces the content with the next record from r. If swap is
// true the length field is byte-reversed before use. A declared length above
// MaxRecordLen fails with ErrRecordTooLarge before any allocation. On a
// short content read the String has already been resized but remains valid;
// callers must treat its content as indeterminate.
func (s *String) DeSerialize(swap bool, r io.Reader) error {
	var frame [4]byte
	if _, err := io.ReadFull(r, frame[:]); err != nil {
		return fmt.Errorf("read record length: %w", err)
	}
	n := binary.LittleEndian.Uint32(frame[:])
	if swap {
		n = bits.ReverseBytes32(n)
	}
	if n > MaxRecordLen {
		return ErrRecordTooLarge
	}
	s.TruncateAt(int(n))
	if _, err := io.ReadFull(r, s.data[:n]); err != nil {
		return fmt.Errorf("read record content: %w", err)
	}
	return nil
}

// SerializeFile writes the content as one record to f.
func (s *String) SerializeFile(f *serial.File) error {
	s.fixLength()
	n := uint32(s.used - 1)
	if err := f.WriteUint32(n); err != nil {
		return err
	}
	return f.WriteBytes(s.data[:n])
}

// DeSerializeFile replaces the content with the next record from f. The
// file's swap flag, fixed when it was opened, governs the length field.
func (s *String) DeSerializeFile(f *serial.File) error {
	n, err := f.ReadUint32()
	if err != nil {
		return err
	}
	if n > MaxRecordLen {
		return ErrRecordTooLarge
	}
	s.TruncateAt(int(n))
	return f.ReadBytes(s.data[:n])
}

// SkipDeSerialize advances f past the next record without materializing its
// content, for scanning past records that are not needed.
func SkipDeSerialize(f *serial.File) error {
	n, err := f.ReadUint32()
	if err != nil {
		return err
	}
	return f.Skip(int64(n))
}
