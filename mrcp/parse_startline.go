package mrcp

import (
	"strconv"
	"strings"
)

// parseStartLine is the §6.3 collaborator start_line_parse. line has already
// been stripped of its trailing CRLF by the caller (mirrors
// sip/parser.go's nextLine + ParseLine split).
func parseStartLine(line string, sl *StartLine) bool {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return false
	}

	version, ok := ParseVersion(fields[0])
	if !ok {
		return false
	}
	// fields[1] is the length placeholder; its value is not meaningful on
	// parse (DESIGN.md's first Open-Question decision: it mirrors
	// Content-Length and is recomputed by the Generator, never trusted from
	// the wire).
	if !isAllDigits(fields[1]) {
		return false
	}

	sl.Version = version

	switch len(fields) {
	case 4:
		// Request: version length method request-id
		reqID, err := strconv.Atoi(fields[3])
		if err != nil {
			return false
		}
		sl.Kind = StartLineRequest
		sl.MethodName = strings.ToUpper(fields[2])
		sl.RequestID = reqID
		return true
	case 5:
		if isAllDigits(fields[2]) {
			// Response: version length request-id status-code request-state
			reqID, err := strconv.Atoi(fields[2])
			if err != nil {
				return false
			}
			status, err := strconv.Atoi(fields[3])
			if err != nil {
				return false
			}
			sl.Kind = StartLineResponse
			sl.RequestID = reqID
			sl.StatusCode = status
			sl.RequestState = RequestState(fields[4])
			return true
		}
		// Event: version length event-name request-id request-state
		reqID, err := strconv.Atoi(fields[3])
		if err != nil {
			return false
		}
		sl.Kind = StartLineEvent
		sl.EventName = strings.ToUpper(fields[2])
		sl.RequestID = reqID
		sl.RequestState = RequestState(fields[4])
		return true
	default:
		return false
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// generateStartLine is the §6.3 collaborator start_line_generate. It writes
// the start line (without trailing CRLF) with a zero-filled placeholder
// where the length field belongs, and returns the absolute stream offset of
// that placeholder so finalizeStartLine can patch it later.
func generateStartLine(sl *StartLine, s *TextStream) (placeholder int, ok bool) {
	if !s.WriteString(sl.Version.String()) || !s.WriteString(" ") {
		return 0, false
	}
	placeholder = s.Pos()
	if !s.WriteString(strings.Repeat("0", startLineLengthWidth)) {
		return 0, false
	}

	switch sl.Kind {
	case StartLineRequest:
		if sl.MethodName == "" {
			return 0, false
		}
		if !s.WriteString(" ") || !s.WriteString(sl.MethodName) ||
			!s.WriteString(" ") || !s.WriteString(strconv.Itoa(sl.RequestID)) {
			return 0, false
		}
	case StartLineResponse:
		if !s.WriteString(" ") || !s.WriteString(strconv.Itoa(sl.RequestID)) ||
			!s.WriteString(" ") || !s.WriteString(strconv.Itoa(sl.StatusCode)) ||
			!s.WriteString(" ") || !s.WriteString(string(sl.RequestState)) {
			return 0, false
		}
	case StartLineEvent:
		if sl.EventName == "" {
			return 0, false
		}
		if !s.WriteString(" ") || !s.WriteString(sl.EventName) ||
			!s.WriteString(" ") || !s.WriteString(strconv.Itoa(sl.RequestID)) ||
			!s.WriteString(" ") || !s.WriteString(string(sl.RequestState)) {
			return 0, false
		}
	default:
		return 0, false
	}

	return placeholder, true
}

// finalizeStartLine is the §6.3 collaborator start_line_finalize: it
// back-patches the length placeholder reserved by generateStartLine with the
// true body length, zero-padded to startLineLengthWidth digits so no bytes
// after it need to shift (§4.5 design note).
func finalizeStartLine(placeholder int, bodyLength int, s *TextStream) bool {
	digits := strconv.Itoa(bodyLength)
	if len(digits) > startLineLengthWidth {
		return false
	}
	padded := strings.Repeat("0", startLineLengthWidth-len(digits)) + digits
	return s.PatchAt(placeholder, []byte(padded))
}
