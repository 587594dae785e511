package mrcp

// readBody is BodyTransfer's read_body (§4.2): while the body is not yet
// fully filled and the stream has unconsumed bytes, copy as much as fits of
// each into the other. Resumable: a second call continues from
// message.BodyLen exactly where the first left off.
//
// On the first call for a given message it allocates the body buffer sized
// content_length+1 (§4.2's NUL-terminator convention: reserved, never
// written by the transfer itself).
func readBody(msg *Message, s *TextStream) Result {
	if !msg.Header.Generic.HasContentLength || msg.Header.Generic.ContentLength == 0 {
		return ResultComplete
	}
	contentLength := msg.Header.Generic.ContentLength
	if msg.Body == nil {
		full := msg.arena.Alloc(contentLength + 1)
		msg.Body = full[:contentLength]
	}

	for msg.BodyLen < contentLength && s.Remaining() > 0 {
		n := min(contentLength-msg.BodyLen, s.Remaining())
		copy(msg.Body[msg.BodyLen:msg.BodyLen+n], s.Peek()[:n])
		msg.BodyLen += n
		s.Advance(n)
	}

	if msg.BodyLen >= contentLength {
		return ResultComplete
	}
	return ResultTruncated
}

// writeBody is BodyTransfer's write_body (§4.2): the mirror of readBody,
// copying from the message body into the stream.
func writeBody(msg *Message, s *TextStream) Result {
	if !msg.Header.Generic.HasContentLength || msg.Header.Generic.ContentLength == 0 {
		return ResultComplete
	}
	contentLength := msg.Header.Generic.ContentLength

	for msg.BodyLen < contentLength && s.WriteRemaining() > 0 {
		n := min(contentLength-msg.BodyLen, s.WriteRemaining())
		if !s.Write(msg.Body[msg.BodyLen : msg.BodyLen+n]) {
			break
		}
		msg.BodyLen += n
	}

	if msg.BodyLen >= contentLength {
		return ResultComplete
	}
	return ResultTruncated
}
