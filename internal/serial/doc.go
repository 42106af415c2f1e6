// Package serial provides File, an in-memory record file with a read cursor
// and endianness-aware primitive I/O. It is the stream endpoint the bytestr
// serialization methods read from and write to: whole files are buffered in
// memory, reads consume from a cursor that can also skip forward without
// copying, and a byte-swap flag fixed at open time handles records written
// on a system of differing endianness.
//
// Writing and reading back:
//
//	f := serial.New()
//	f.WriteUint32(uint32(len(payload)))
//	f.WriteBytes(payload)
//	if err := f.Save(path); err != nil { ... }
//
//	f, err := serial.Open(path, false)
//	n, err := f.ReadUint32()
//	buf := make([]byte, n)
//	err = f.ReadBytes(buf)
//
// File is not thread-safe; it follows the same single-owner discipline as
// bytestr.String.
package serial
