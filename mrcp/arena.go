package mrcp

import uuid "github.com/satori/go.uuid"

// Arena is the scoped allocation region a Message borrows all of its string
// and byte-slice fields from (invariant 5, §3). It never shrinks. A Parser
// allocates every message from one Arena and resets it whenever Run starts a
// new message, so the previous message's storage is reused, the same way the
// teacher recycles a pooled *bytes.Buffer between runs of ParserStream
// (sip/parser_stream.go). A Generator holds an Arena but neither allocates
// from it nor resets it.
//
// Arena is not safe for concurrent use.
type Arena struct {
	slab    []byte
	traceID string
}

// NewArena returns an Arena pre-sized for a typical MRCP message. Growth
// beyond that is handled by append, exactly like bytes.Buffer.
func NewArena() *Arena {
	return &Arena{slab: make([]byte, 0, 512)}
}

// Copy appends a copy of src to the arena and returns the stable slice.
// Callers must never retain src itself once it may be overwritten by the
// stream (e.g. after a scroll).
func (a *Arena) Copy(src []byte) []byte {
	start := len(a.slab)
	a.slab = append(a.slab, src...)
	return a.slab[start:len(a.slab):len(a.slab)]
}

// CopyString is Copy for a string source. The result is converted to a new
// Go string, which does not alias the arena's storage.
func (a *Arena) CopyString(s string) string {
	return string(a.Copy([]byte(s)))
}

// Alloc returns a zeroed slice of length n backed by the arena.
func (a *Arena) Alloc(n int) []byte {
	start := len(a.slab)
	a.slab = append(a.slab, make([]byte, n)...)
	return a.slab[start : start+n : start+n]
}

// Reset releases the arena's storage for reuse by the next message without
// returning memory to the runtime, mirroring bytes.Buffer.Reset semantics.
func (a *Arena) Reset() {
	a.slab = a.slab[:0]
	a.traceID = ""
}

// TraceID lazily generates a per-message correlation id, used only in
// Debug-level log output (§4.8). This is a distinct concern from the
// channel session-id (DOMAIN STACK table of SPEC_FULL.md): a trace id identifies one
// parse/generate attempt for log correlation, not a protocol session.
func (a *Arena) TraceID() string {
	if a.traceID == "" {
		a.traceID = uuid.Must(uuid.NewV4()).String()
	}
	return a.traceID
}
