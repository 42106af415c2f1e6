package bytestr

import (
	"bytes"
)

// MinCapacity is the smallest backing allocation a String will hold. Empty
// strings created by New (or reset via SetBytes(nil)) start at this size so
// early appends do not reallocate.
const MinCapacity = 16

// String is an owning, growable byte-string buffer. Content is tracked by an
// explicit used count that includes a single zero terminator at the end; the
// terminator marks the logical end of content for external raw-access
// callers, but the used count is authoritative and interior zero bytes are
// permitted.
//
// The used count has two states: known, or stale. It goes stale whenever
// external code could have changed the content length behind the String's
// back (Raw, SetAt). Every length-dependent operation first normalizes a
// stale count by rescanning for the terminator.
type String struct {
	data  []byte // single backing allocation; len(data) is the capacity
	used  int    // bytes in use, including the terminator; valid when !stale
	stale bool   // used cannot be trusted until the next rescan
}

// Construction

// New returns an empty String with MinCapacity reserved.
func New() *String {
	return &String{data: make([]byte, MinCapacity), used: 1}
}

// NewFromString returns a String holding s, allocated exact-fit.
func NewFromString(s string) *String {
	b := &String{data: make([]byte, len(s)+1), used: len(s) + 1}
	copy(b.data, s)
	return b
}

// NewFromBytes returns a String holding a copy of src, allocated exact-fit.
// A nil src behaves as New.
func NewFromBytes(src []byte) *String {
	if src == nil {
		return New()
	}
	b := &String{data: make([]byte, len(src)+1), used: len(src) + 1}
	copy(b.data, src)
	return b
}

// NewFromBytesLen returns a String holding exactly length bytes copied from
// src, which need not be terminated. A negative length is a contract
// violation and panics. A nil src behaves as New.
func NewFromBytesLen(src []byte, length int) *String {
	if length < 0 {
		panic("bytestr: negative length")
	}
	if src == nil {
		return New()
	}
	b := &String{data: make([]byte, length+1), used: length + 1}
	copy(b.data, src[:length])
	return b
}

// Clone returns a deep copy of s. The copy owns a fresh exact-fit allocation
// and never shares storage with s.
func (s *String) Clone() *String {
	s.fixLength()
	c := &String{data: make([]byte, s.used), used: s.used}
	copy(c.data, s.data[:s.used])
	return c
}

// Length tracking

// fixLength normalizes a stale used count by rescanning for the terminator.
// If an external writer removed the terminator entirely, one is reinstated
// at the end of capacity so the damage stays bounded.
func (s *String) fixLength() {
	if !s.stale {
		return
	}
	n := bytes.IndexByte(s.data, 0)
	if n < 0 {
		n = len(s.data) - 1
		s.data[n] = 0
	}
	s.used = n + 1
	s.stale = false
}

// Len returns the logical content length in bytes, excluding the terminator.
// A stale length is recomputed and re-cached first.
func (s *String) Len() int {
	s.fixLength()
	return s.used - 1
}

// IsEmpty returns true if the String holds no content bytes.
func (s *String) IsEmpty() bool {
	return s.Len() == 0
}

// Cap returns the total bytes of the current backing allocation.
func (s *String) Cap() int {
	return len(s.data)
}

// Accessors

// String returns a copy of the logical content. It never invalidates the
// cached length.
func (s *String) String() string {
	s.fixLength()
	return string(s.data[:s.used-1])
}

// Bytes returns a copy of the logical content. Use Raw for the live view.
func (s *String) Bytes() []byte {
	s.fixLength()
	out := make([]byte, s.used-1)
	copy(out, s.data)
	return out
}

// Raw returns the live backing slice, bounded to the current capacity, for
// direct in-place editing by external code. Because the caller may change
// the content length without going through this API, the cached length is
// marked stale immediately; the next length-dependent operation rescans for
// the terminator. Callers must keep a terminator within the returned slice.
func (s *String) Raw() []byte {
	s.stale = true
	return s.data
}

// At returns the byte at index i. The index is bounded by capacity, not by
// the logical length; reading past the content yields whatever the backing
// store holds, as with raw access.
func (s *String) At(i int) byte {
	return s.data[i]
}

// SetAt overwrites the byte at index i. A write at used-1 can overwrite the
// terminator, so the cached length is conservatively marked stale.
func (s *String) SetAt(i int, c byte) {
	s.data[i] = c
	s.stale = true
}

// Contains reports whether the content holds byte c. The terminator value
// never matches.
func (s *String) Contains(c byte) bool {
	if c == 0 {
		return false
	}
	s.fixLength()
	return bytes.IndexByte(s.data[:s.used-1], c) >= 0
}

// Growth

// Ensure grows the backing allocation so at least minCapacity bytes are
// available, preserving current content. It never shrinks.
func (s *String) Ensure(minCapacity int) {
	s.fixLength()
	s.ensureCap(minCapacity)
}

// ensureCap is the growth primitive every mutation calls before writing.
// Growth doubles the current capacity, floored at minCapacity, and copies
// only the used bytes so the copy cost is bounded by live data. The caller
// must have normalized used first (or zeroed it when the old content is
// about to be discarded anyway).
func (s *String) ensureCap(minCapacity int) {
	if minCapacity <= len(s.data) {
		return
	}
	if minCapacity < 2*len(s.data) {
		minCapacity = 2 * len(s.data)
	}
	next := make([]byte, minCapacity)
	copy(next, s.data[:s.used])
	s.data = next
}
