package mrcp

// Header is the message header split into its two-level schema (§3.1, §9):
// Generic carries version-independent fields, Resource carries the
// resource-specific tagged-union variant attached once the message's
// resource has been resolved.
type Header struct {
	Generic  GenericHeader
	Resource ResourceHeader
}

// Message is a protocol message (§3). It is created either by a Parser (fed
// from a stream) or by application code preparing to call Generator.Run.
// Once Complete the codec does not change its fields, but the Body of a
// parsed message is backed by the Parser's arena, which the Parser reuses
// when Run starts its next message.
type Message struct {
	Start   StartLine
	Channel ChannelID
	Header  Header

	Body    []byte
	BodyLen int // bytes transferred so far; resumable cursor for BodyTransfer

	resource Resource
	arena    *Arena
}

// newMessage allocates a Message in arena, matching invariant 5 (§3): every
// field the message references is owned by that arena and released with it.
func newMessage(arena *Arena) *Message {
	return &Message{arena: arena}
}

// SetBody installs body as the full payload and keeps the generic
// Content-Length header in sync, exactly as sip.MessageData.SetBody does
// (sip/message.go) so callers preparing a message for Generator.Run cannot
// forget to set Content-Length themselves.
func (m *Message) SetBody(body []byte) {
	m.Body = body
	m.Header.Generic.HasContentLength = true
	m.Header.Generic.ContentLength = len(body)
	m.BodyLen = 0
}

// Resource returns the resource resolved for this message, if any.
func (m *Message) Resource() Resource { return m.resource }

// validateMessage is the §6.3 collaborator message_validate, called by
// Generator.Run before serialization (§4.5 step 4): method/event id must be
// set, request-id must be present, and a response must carry a status code.
// Request-ids are minted starting at 1 (§6.1), so the zero value doubles as
// "never set" the same way HasMethodID/HasEventID flag the other two fields.
func validateMessage(msg *Message) bool {
	if msg.resource == nil {
		return false
	}
	if msg.Start.RequestID == 0 {
		return false
	}
	switch msg.Start.Kind {
	case StartLineRequest:
		return msg.Start.HasMethodID
	case StartLineEvent:
		return msg.Start.HasEventID
	case StartLineResponse:
		return msg.Start.StatusCode != 0
	default:
		return false
	}
}
