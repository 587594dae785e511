package mrcp

import (
	"strings"

	"github.com/google/uuid"
)

// ChannelID identifies the media-resource channel a message belongs to. It is
// carried on the wire only in V2 (the channel-id line); in V1 ResourceName is
// supplied out-of-band via Parser.SetV1ResourceName (§6.1, §6.2).
type ChannelID struct {
	SessionID    string
	ResourceName string
}

// NewSessionID generates an RFC 4122 session identifier for a newly
// established channel. Channel/session establishment itself is a transport
// concern out of this module's scope, but callers assembling a ChannelID
// before generating a request need a concrete way to mint one.
func NewSessionID() string {
	return uuid.New().String()
}

// String renders "session-id@resource-name", the V2 wire form.
func (c ChannelID) String() string {
	var b strings.Builder
	b.WriteString(c.SessionID)
	b.WriteByte('@')
	b.WriteString(c.ResourceName)
	return b.String()
}

// parseChannelID parses a single "session-id@resource-name" line already
// stripped of its trailing CRLF, optionally preceded by a
// "Channel-Identifier:" field name. It is one of the §6.3 collaborator
// tokenizers: the Parser only ever looks at its boolean success.
func parseChannelID(line []byte, arena *Arena) (ChannelID, bool) {
	const fieldName = "channel-identifier:"
	if len(line) >= len(fieldName) && strings.EqualFold(string(line[:len(fieldName)]), fieldName) {
		line = []byte(strings.TrimSpace(string(line[len(fieldName):])))
	}
	at := indexByte(line, '@')
	if at <= 0 || at == len(line)-1 {
		return ChannelID{}, false
	}
	return ChannelID{
		SessionID:    arena.CopyString(string(line[:at])),
		ResourceName: arena.CopyString(string(line[at+1:])),
	}, true
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

// generateChannelID writes the channel-id line (without CRLF) to the stream
// in the bare "session-id@resource-name" form, with no field name.
func generateChannelID(c ChannelID, s *TextStream) bool {
	if c.SessionID == "" || c.ResourceName == "" {
		return false
	}
	return s.WriteString(c.String())
}
