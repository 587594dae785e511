package mrcp

import "github.com/mrcpgo/mrcp/internal/metrics"

// Generator is the MRCP stream generator (§3 "Generator state", §4.5): the
// mirror of Parser, serializing a Message built by application code into a
// TextStream. One instance is owned by exactly one logical connection (§5).
type Generator struct {
	factory        *ResourceFactory
	lastResult     Result
	checkpointPos  int
	currentMessage *Message
	arena          *Arena
}

// NewGenerator creates a Generator bound to factory. arena is reserved for
// parity with Parser's state (§3) and whatever scratch allocation a future
// resource-header might need while generating; nothing in this package's
// current header set requires it, since a Message's own fields already own
// their storage once the application built it.
func NewGenerator(factory *ResourceFactory) *Generator {
	return &Generator{
		factory:    factory,
		lastResult: ResultInvalid,
		arena:      NewArena(),
	}
}

// SetMessage attaches the message the next Run call will serialize,
// mirroring mrcp_generator_message_set (mrcp_stream.c). It must be called
// again for each new message; Run never advances to the "next" message on
// its own the way Parser.Run does, since the application controls when a new
// message exists.
func (g *Generator) SetMessage(msg *Message) bool {
	if msg == nil {
		return false
	}
	g.currentMessage = msg
	g.lastResult = ResultInvalid
	return true
}

// CurrentMessage returns the message most recently attached with SetMessage.
func (g *Generator) CurrentMessage() *Message {
	return g.currentMessage
}

// Run advances the generator state machine over stream (§4.5). Only body
// generation is resumable across calls: start-line and header generation
// either complete within one call or the whole message is broken, the same
// asymmetry Parser.Run has for parsing.
func (g *Generator) Run(stream *TextStream) (result Result) {
	defer func() {
		switch result {
		case ResultComplete:
			metrics.GeneratorRuns.WithLabelValues("complete").Inc()
		case ResultTruncated:
			metrics.GeneratorRuns.WithLabelValues("truncated").Inc()
		case ResultInvalid:
			metrics.GeneratorRuns.WithLabelValues("invalid").Inc()
		}
	}()

	msg := g.currentMessage
	if msg == nil {
		// ErrNoMessage's condition (§4.5 step 1): nothing to generate.
		return ResultInvalid
	}

	if g.lastResult == ResultTruncated {
		// Resume: only the body remains (invariant 1, §3).
		g.lastResult = writeBody(msg, stream)
		return g.lastResult
	}

	if err := g.factory.resourcifyByID(msg); err != nil {
		// Unlike the parser's Invalid, current_message is left attached
		// here (§7's error table): the message itself may still be fixed
		// up and re-run, since nothing was written to the stream yet.
		g.lastResult = ResultInvalid
		return ResultInvalid
	}

	if !validateMessage(msg) {
		g.lastResult = ResultInvalid
		return ResultInvalid
	}

	g.checkpointPos = stream.Pos()

	placeholder, ok := generateStartLine(&msg.Start, stream)
	if !ok || !stream.WriteString("\r\n") {
		return g.breakGenerate(stream)
	}

	if msg.Start.Version == V2 {
		if !generateChannelID(msg.Channel, stream) || !stream.WriteString("\r\n") {
			// §9's open question resolved the same way as the parser: a
			// channel that cannot be serialized fails the message rather
			// than silently writing a malformed line.
			return g.breakGenerate(stream)
		}
	}

	if !generateHeader(msg, stream) {
		return g.breakGenerate(stream)
	}

	if !finalizeStartLine(placeholder, len(msg.Body), stream) {
		// The source never checks this call's return value, implicitly
		// assuming the fixed-width field never overflows; we check it
		// and fail closed rather than silently truncating the digits.
		g.lastResult = ResultInvalid
		g.currentMessage = nil
		return ResultInvalid
	}

	g.lastResult = writeBody(msg, stream)
	return g.lastResult
}

// breakGenerate is Generator's half of the shared break() policy (§4.4/§4.5).
// Both outcomes discard current_message: on Truncated the stream is also
// rewound to the checkpoint, since partial start-line/header bytes may already
// be written and nothing was committed. The caller must SetMessage again —
// with a larger stream or a corrected message — before the next Run.
func (g *Generator) breakGenerate(stream *TextStream) Result {
	if stream.WriteAtEnd() {
		stream.SetPos(g.checkpointPos)
		g.currentMessage = nil
		g.lastResult = ResultTruncated
		return ResultTruncated
	}
	g.lastResult = ResultInvalid
	g.currentMessage = nil
	return ResultInvalid
}
