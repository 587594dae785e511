package mrcp

// TextStream is a cursor over a bounded, externally-owned byte buffer. It
// never allocates and never frees buf; all growth is the caller's
// responsibility. This is the Go counterpart of the original apt_text_stream_t
// (original_source/libs/mrcp/control/src/mrcp_stream.c): buf/length/pos
// rather than a bytes.Buffer, because the Generator must be able to
// back-patch bytes that lie behind pos (§4.5 step 9) and the Parser must be
// able to rewind pos to an arbitrary earlier offset (§4.4 step 3's
// checkpoint) — neither of which bytes.Buffer supports.
//
// Invariant when parsing: pos is always within [0, length]; reading from pos
// yields at most length-pos bytes. When generating, length is the furthest
// offset written so far and pos stays within [0, len(buf)]; a failed Write
// moves pos to len(buf), which may lie past length.
type TextStream struct {
	buf    []byte
	length int
	pos    int
}

// NewTextStream wraps buf for reading or writing starting at offset 0.
// length bounds how much of buf is considered filled (for parsing, the
// number of valid bytes already written into buf by the caller; for
// generating, normally 0, after which length grows as bytes are written —
// the capacity available to be written is len(buf)).
func NewTextStream(buf []byte, length int) *TextStream {
	if length > len(buf) {
		length = len(buf)
	}
	return &TextStream{buf: buf, length: length}
}

// Bytes returns the full underlying buffer (not just the filled portion).
func (s *TextStream) Bytes() []byte { return s.buf }

// Len returns the number of bytes considered filled/usable in the stream.
func (s *TextStream) Len() int { return s.length }

// Pos returns the current cursor offset from the start of buf.
func (s *TextStream) Pos() int { return s.pos }

// SetPos moves the cursor to an absolute offset. Used to rewind to a
// checkpoint (§4.4's break policy) or to reset after a walk (§4.6).
func (s *TextStream) SetPos(pos int) { s.pos = pos }

// SetLen updates how much of buf is considered filled. Used by callers that
// append more bytes to buf before the next Parser.Run.
func (s *TextStream) SetLen(length int) {
	if length > len(s.buf) {
		length = len(s.buf)
	}
	s.length = length
}

// Remaining returns the number of unconsumed bytes between pos and the end
// of the filled region.
func (s *TextStream) Remaining() int { return s.length - s.pos }

// AtEnd reports whether the cursor has consumed every filled byte.
func (s *TextStream) AtEnd() bool { return s.pos == s.length }

// Peek returns the unconsumed portion of the stream without advancing pos.
func (s *TextStream) Peek() []byte { return s.buf[s.pos:s.length] }

// Advance moves pos forward by n bytes. Callers must ensure n <= Remaining().
func (s *TextStream) Advance(n int) { s.pos += n }

// WriteRemaining returns how much capacity is left to write into, from pos to
// the end of the underlying buffer (used by the Generator, where length
// tracks what has been written so far rather than what was prefilled).
func (s *TextStream) WriteRemaining() int { return len(s.buf) - s.pos }

// WriteAtEnd is the write-direction counterpart of AtEnd: it reports whether
// the cursor has reached the end of the underlying buffer's capacity. A
// failed Write drives pos there (mirroring readLine's consume-on-failure
// behaviour), so Generator.breakGenerate can tell "ran out of room" apart
// from "the data itself was malformed" the same way Parser.breakParse uses
// AtEnd.
func (s *TextStream) WriteAtEnd() bool { return s.pos == len(s.buf) }

// Write appends p at pos, advances pos and length, and reports whether it
// fit. It never grows buf. Used by the Generator's collaborators. On
// failure it advances pos to the end of buf rather than leaving it where it
// was, so WriteAtEnd reports the exhaustion.
func (s *TextStream) Write(p []byte) bool {
	if len(p) > s.WriteRemaining() {
		s.pos = len(s.buf)
		return false
	}
	n := copy(s.buf[s.pos:], p)
	s.pos += n
	if s.pos > s.length {
		s.length = s.pos
	}
	return true
}

// WriteString is Write for a string source.
func (s *TextStream) WriteString(str string) bool {
	return s.Write([]byte(str))
}

// PatchAt overwrites length(p) bytes starting at an absolute offset that lies
// behind the current pos, without moving pos. Used by Generator finalization
// to back-patch the content-length placeholder reserved in the start line
// (§4.5 step 9).
func (s *TextStream) PatchAt(offset int, p []byte) bool {
	if offset < 0 || offset+len(p) > len(s.buf) {
		return false
	}
	copy(s.buf[offset:], p)
	return true
}

// Scroll compacts the stream by moving the unconsumed tail [pos, length) to
// the front of buf, freeing space after it for more bytes to be appended.
// It returns false, leaving the stream as it is, when pos is already 0 and
// so no consumed bytes can be freed. If the unconsumed data then fills the
// whole buffer, StreamWalker drops it and resets the stream (§4.6).
func (s *TextStream) Scroll() bool {
	if s.pos == 0 {
		return false
	}
	n := copy(s.buf, s.buf[s.pos:s.length])
	s.length = n
	s.pos = 0
	return true
}
