package mrcp

// Limits bounds the codec's otherwise-unbounded behaviour. MaxMessageLength
// mirrors sip.Parser.MaxMessageLength (sip/parser_stream.go) — the one piece
// of caller-tunable configuration the core codec genuinely has (§A.1 of
// SPEC_FULL.md); transport-level limits are out of scope.
type Limits struct {
	// MaxMessageLength bounds the combined size of a message's start line,
	// channel-id line and header section. It is checked once the header
	// section has been parsed in full, and a message over the bound is
	// Invalid; the body is not counted, and an incomplete header section is
	// not checked. Zero means unbounded.
	MaxMessageLength int
}

// Parser is the MRCP stream parser (§3 "Parser state", §4.4). One instance
// is owned by exactly one logical connection; it must not be reused across
// messages that overlap in time (§5).
type Parser struct {
	factory         *ResourceFactory
	v1ResourceName  string
	limits          Limits
	lastResult      Result
	checkpointPos   int
	currentMessage  *Message
	arena           *Arena
}

// NewParser creates a Parser bound to factory. Every message the Parser
// produces is allocated from the Parser's own arena, which is reset whenever
// Run starts a new message, so a message's Body is only valid until the next
// Run that begins another message.
func NewParser(factory *ResourceFactory, limits Limits) *Parser {
	return &Parser{
		factory:    factory,
		limits:     limits,
		lastResult: ResultInvalid,
		arena:      NewArena(),
	}
}

// SetV1ResourceName presets the resource name used for V1 messages, which
// carry no channel-id line on the wire (§6.1, §6.2). Must be called before
// the first Run if V1 traffic is expected.
func (p *Parser) SetV1ResourceName(name string) {
	p.v1ResourceName = name
}

// CurrentMessage returns the message produced (Complete) or in progress
// (Truncated mid-body) by the most recent Run.
func (p *Parser) CurrentMessage() *Message {
	return p.currentMessage
}

// Run advances the parser state machine over stream (§4.4).
func (p *Parser) Run(stream *TextStream) Result {
	if p.currentMessage != nil && p.lastResult == ResultTruncated {
		// Resume: only the body remains (invariant 1, §3).
		p.lastResult = readBody(p.currentMessage, stream)
		return p.lastResult
	}

	p.arena.Reset()
	msg := newMessage(p.arena)
	if p.v1ResourceName != "" {
		msg.Channel.ResourceName = p.v1ResourceName
	}
	p.currentMessage = msg
	p.checkpointPos = stream.Pos()

	line, ok := readLine(stream)
	if !ok || !parseStartLine(string(line), &msg.Start) {
		return p.breakParse(stream)
	}

	if msg.Start.Version == V2 {
		idLine, ok := readLine(stream)
		if !ok {
			return p.breakParse(stream)
		}
		id, ok := parseChannelID(idLine, p.arena)
		if !ok {
			// §9's open question: a malformed V2 channel-id line is
			// rejected strictly rather than silently proceeding, the
			// safer of the two behaviours the design note calls out.
			return p.breakParse(stream)
		}
		msg.Channel = id
	}

	if err := p.factory.resourcifyByName(msg); err != nil {
		p.lastResult = ResultInvalid
		p.currentMessage = nil
		return ResultInvalid
	}

	if !parseHeader(msg, stream) {
		return p.breakParse(stream)
	}

	if p.limits.MaxMessageLength > 0 && stream.Pos()-p.checkpointPos > p.limits.MaxMessageLength {
		// The header section alone already exceeds the configured bound;
		// treat it as malformed rather than buffering an unbounded body.
		p.lastResult = ResultInvalid
		p.currentMessage = nil
		return ResultInvalid
	}

	p.lastResult = readBody(msg, stream)
	return p.lastResult
}

// breakParse implements the shared break() policy of §4.4/§4.5: genuine
// truncation rewinds to the checkpoint and discards the message; anything
// else is a structural parse failure.
func (p *Parser) breakParse(stream *TextStream) Result {
	if stream.AtEnd() {
		stream.SetPos(p.checkpointPos)
		p.currentMessage = nil
		p.lastResult = ResultTruncated
		return ResultTruncated
	}
	p.lastResult = ResultInvalid
	p.currentMessage = nil
	return ResultInvalid
}
