// Package bytestr provides String, an owning, heap-backed byte-string buffer
// used as the fundamental text container in the engine. It stores raw bytes
// with a single zero terminator, tracks its allocation metadata (capacity and
// used length) alongside the payload, and grows in place by doubling so that
// appends are amortized O(1).
//
// The bytestr package provides:
//
//   - Value-semantics storage: every String exclusively owns its allocation,
//     and copies are always deep (Clone, Set)
//   - In-place mutation operators (Set, Assign, Append, AppendByte,
//     TruncateAt) that transparently reallocate when content outgrows the
//     current capacity
//   - A raw-access escape hatch (Raw) for callers that edit content in place,
//     with explicit stale-length tracking and rescan on the next length query
//   - Delimiter splitting into caller-supplied output slices
//   - A bit-exact binary serialization format (4-byte length frame plus
//     content) over plain io streams and over serial.File record files
//
// Basic usage:
//
//	s := bytestr.NewFromString("hello")
//	s.AppendString(", world")
//	s.AppendByte('!')
//
//	var parts []*bytestr.String
//	s.Split(',', &parts) // ["hello", " world!"]
//
// Length Tracking:
//
// A String knows its own length and does not rely on terminator scanning:
// content may contain interior zero bytes, and the cached used count is
// authoritative. The one exception is raw access. Raw returns the live
// backing slice so external code can edit bytes directly, which means the
// cached length can no longer be trusted; the String marks it stale and the
// next length-dependent operation rescans for the terminator before
// proceeding.
//
// Thread Safety:
//
// String is not thread-safe. Each instance has exactly one logical owner;
// callers that share an instance across goroutines must synchronize
// externally or give each goroutine its own Clone.
package bytestr
