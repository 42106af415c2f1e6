package bytestr

import "strconv"

// Mutation operators. Every operator follows the same shape: normalize any
// stale length, ensure capacity for the new total, copy or overwrite, then
// update the used count. The terminator invariant holds on every exit path.

// Set replaces the content with a deep copy of other, growing if needed.
func (s *String) Set(other *String) {
	other.fixLength()
	n := other.used
	s.used, s.stale = 0, false // old content need not survive the realloc
	s.ensureCap(n)
	copy(s.data, other.data[:n])
	s.used = n
}

// SetString replaces the content with str, growing if needed.
func (s *String) SetString(str string) {
	n := len(str) + 1
	s.used, s.stale = 0, false
	s.ensureCap(n)
	copy(s.data, str)
	s.data[n-1] = 0
	s.used = n
}

// SetBytes replaces the content with a copy of src. A nil src resets the
// String to its default-constructed state, releasing the old allocation for
// a fresh MinCapacity one.
func (s *String) SetBytes(src []byte) {
	if src == nil {
		s.data = make([]byte, MinCapacity)
		s.used = 1
		s.stale = false
		return
	}
	n := len(src) + 1
	s.used, s.stale = 0, false
	s.ensureCap(n)
	copy(s.data, src)
	s.data[n-1] = 0
	s.used = n
}

// Assign replaces the content with exactly length bytes copied from src,
// which need not be terminated. A negative length is a contract violation
// and panics.
func (s *String) Assign(src []byte, length int) {
	if length < 0 {
		panic("bytestr: negative length")
	}
	s.used, s.stale = 0, false
	s.ensureCap(length + 1)
	copy(s.data, src[:length])
	s.data[length] = 0
	s.used = length + 1
}

// Append concatenates other onto s. The two terminators collapse into one:
// the new used count is s.used + other.used - 1. Appending to an empty
// String equals a straight copy of other.
func (s *String) Append(other *String) {
	s.fixLength()
	other.fixLength()
	thisUsed, otherUsed := s.used, other.used
	s.ensureCap(thisUsed + otherUsed)
	if thisUsed > 1 {
		copy(s.data[thisUsed-1:], other.data[:otherUsed])
		s.used = thisUsed + otherUsed - 1
	} else {
		copy(s.data, other.data[:otherUsed])
		s.used = otherUsed
	}
}

// AppendString appends str. An empty argument has no effect.
func (s *String) AppendString(str string) {
	if str == "" {
		return
	}
	s.fixLength()
	s.ensureCap(s.used + len(str) + 1)
	copy(s.data[s.used-1:], str)
	s.data[s.used-1+len(str)] = 0
	s.used += len(str)
}

// AppendBytes appends src. A nil or empty argument has no effect.
func (s *String) AppendBytes(src []byte) {
	if len(src) == 0 {
		return
	}
	s.fixLength()
	s.ensureCap(s.used + len(src) + 1)
	copy(s.data[s.used-1:], src)
	s.data[s.used-1+len(src)] = 0
	s.used += len(src)
}

// AppendByte appends a single byte. Appending the terminator value (0) is a
// no-op; otherwise the existing terminator is overwritten by c and a fresh
// terminator follows it.
func (s *String) AppendByte(c byte) {
	if c == 0 {
		return
	}
	s.fixLength()
	s.ensureCap(s.used + 1)
	s.data[s.used-1] = c
	s.data[s.used] = 0
	s.used++
}

// Concat returns a new String holding s followed by other. Neither operand
// is mutated.
func (s *String) Concat(other *String) *String {
	out := s.Clone()
	out.Append(other)
	return out
}

// ConcatByte returns a new String holding s followed by byte c. Appending
// the terminator value follows AppendByte semantics and is a no-op.
func (s *String) ConcatByte(c byte) *String {
	out := s.Clone()
	out.AppendByte(c)
	return out
}

// TruncateAt sets the logical length to index, forcing a terminator there.
// A negative index is a contract violation and panics. Truncating beyond the
// current length is permitted and extends the content; the gap is
// zero-filled rather than exposing whatever the allocation previously held.
func (s *String) TruncateAt(index int) {
	if index < 0 {
		panic("bytestr: negative truncate index")
	}
	s.fixLength()
	s.ensureCap(index + 1)
	if index+1 > s.used {
		clear(s.data[s.used-1 : index])
	}
	s.data[index] = 0
	s.used = index + 1
}

// Split partitions the content on every occurrence of delimiter c and
// appends each non-empty segment to out as a fresh String. Runs of
// delimiters, and delimiters at either end, contribute no empty segments.
// Splitting an empty String appends nothing.
func (s *String) Split(c byte, out *[]*String) {
	length := s.Len()
	start := 0
	for i := 0; i < length; i++ {
		if s.data[i] == c {
			if i != start {
				*out = append(*out, NewFromBytesLen(s.data[start:i], i-start))
			}
			start = i + 1
		}
	}
	if start != length {
		*out = append(*out, NewFromBytesLen(s.data[start:length], length-start))
	}
}

// Formatting appends

// AddStrInt appends prefix and then n formatted in decimal.
func (s *String) AddStrInt(prefix string, n int) {
	s.AppendString(prefix)
	s.AppendString(strconv.Itoa(n))
}

// AddStrFloat appends prefix and then f formatted with 8 significant digits.
func (s *String) AddStrFloat(prefix string, f float64) {
	s.AppendString(prefix)
	s.AppendString(strconv.FormatFloat(f, 'g', 8, 64))
}
