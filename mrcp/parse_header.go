package mrcp

import (
	"bytes"
	"strconv"
	"strings"
)

var crlf = []byte("\r\n")

// readLine scans the unconsumed portion of s for the next CRLF-terminated
// line and returns it without the CRLF, advancing pos past it. When no CRLF
// is present in the data currently available, it consumes everything that is
// available (mirroring bytes.Buffer.ReadString's behaviour on io.EOF, which
// sip/parser.go's nextLine relies on) so that the caller's AtEnd() check
// correctly reports "genuinely truncated" rather than "malformed mid-line".
func readLine(s *TextStream) (line []byte, ok bool) {
	rem := s.Peek()
	idx := bytes.Index(rem, crlf)
	if idx < 0 {
		s.Advance(len(rem))
		return nil, false
	}
	line = rem[:idx]
	s.Advance(idx + 2)
	return line, true
}

// parseHeader is the §6.3 collaborator message_header_parse. It consumes
// header lines up to and including the blank line that terminates the
// header section (§6.1), splitting each field into message.Header.Generic or
// message.Header.Resource (the two-level schema of §3.1/§9). Resource must
// already be attached (resourcify_by_name runs before this, §4.4 step 5/6).
func parseHeader(msg *Message, s *TextStream) bool {
	for {
		line, ok := readLine(s)
		if !ok {
			return false
		}
		if len(line) == 0 {
			return true
		}
		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			return false
		}
		name := strings.TrimSpace(string(line[:colon]))
		value := strings.TrimSpace(string(line[colon+1:]))
		if !setHeaderField(msg, name, value) {
			return false
		}
	}
}

func setHeaderField(msg *Message, name, value string) bool {
	g := &msg.Header.Generic
	switch strings.ToLower(name) {
	case "content-type":
		g.HasContentType, g.ContentType = true, value
	case "content-id":
		g.HasContentID, g.ContentID = true, value
	case "content-base":
		g.HasContentBase, g.ContentBase = true, value
	case "content-location":
		g.HasContentLocation, g.ContentLocation = true, value
	case "content-encoding":
		g.HasContentEncoding, g.ContentEncoding = true, value
	case "cache-control":
		g.HasCacheControl, g.CacheControl = true, value
	case "logging-tag":
		g.HasLoggingTag, g.LoggingTag = true, value
	case "content-length":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return false
		}
		g.HasContentLength, g.ContentLength = true, n
	case "vendor-specific-parameters":
		g.VendorSpecific = append(g.VendorSpecific, HeaderField{Name: name, Value: value})
	default:
		if msg.Header.Resource != nil && msg.Header.Resource.SetField(name, value) {
			return true
		}
		// Unrecognized fields are accepted and discarded, the same way
		// the teacher falls back to a GenericHeader catch-all for headers
		// it has no typed parser for (sip/parse_header.go).
	}
	return true
}

// generateHeader is the §6.3 collaborator message_header_generate. It emits
// every populated generic field except Content-Length, then every populated
// resource field, then Content-Length, each as "Name: Value\r\n", followed
// by the blank line terminating the header
// section (§6.1). Content-Length is kept in sync with the body by
// Message.SetBody, mirroring sip.MessageData.SetBody (sip/message.go).
func generateHeader(msg *Message, s *TextStream) bool {
	g := msg.Header.Generic
	fields := make(HeaderFields, 0, 8)
	if g.HasContentType {
		fields.Add("Content-Type", g.ContentType)
	}
	if g.HasContentID {
		fields.Add("Content-ID", g.ContentID)
	}
	if g.HasContentBase {
		fields.Add("Content-Base", g.ContentBase)
	}
	if g.HasContentLocation {
		fields.Add("Content-Location", g.ContentLocation)
	}
	if g.HasContentEncoding {
		fields.Add("Content-Encoding", g.ContentEncoding)
	}
	if g.HasCacheControl {
		fields.Add("Cache-Control", g.CacheControl)
	}
	if g.HasLoggingTag {
		fields.Add("Logging-Tag", g.LoggingTag)
	}
	for _, f := range g.VendorSpecific {
		fields = append(fields, f)
	}
	if msg.Header.Resource != nil {
		fields = msg.Header.Resource.AppendFields(fields)
	}
	if g.HasContentLength {
		fields.Add("Content-Length", strconv.Itoa(g.ContentLength))
	}

	for _, f := range fields {
		if !s.WriteString(f.Name) || !s.WriteString(": ") ||
			!s.WriteString(f.Value) || !s.WriteString("\r\n") {
			return false
		}
	}
	return s.WriteString("\r\n")
}
