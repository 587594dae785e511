package mrcp

import "github.com/mrcpgo/mrcp/internal/metrics"

// Handler is invoked once per Parser.Run outcome, including Invalid, so
// callers can log or tear down a session on malformed input (§4.6). Returning
// false aborts the walk immediately; per §5's cancellation model, the caller
// is then expected to discard the Parser along with whatever message is
// in progress.
type Handler func(ctx any, msg *Message, result Result) bool

// StreamWalk drives parser repeatedly over stream, invoking handler after
// every outcome, until the handler aborts, the stream is exhausted, or a
// message comes back Truncated (§4.6). It returns false only when handler
// aborted the walk.
func StreamWalk(parser *Parser, stream *TextStream, handler Handler, ctx any) bool {
	var result Result
	ok := true
	for {
		result = parser.Run(stream)
		msg := parser.CurrentMessage()
		logWalkResult(result, stream, msg)
		switch result {
		case ResultComplete:
			metrics.ParserRuns.WithLabelValues("complete").Inc()
		case ResultTruncated:
			metrics.ParserRuns.WithLabelValues("truncated").Inc()
		case ResultInvalid:
			metrics.ParserRuns.WithLabelValues("invalid").Inc()
		}

		if !handler(ctx, msg, result) {
			metrics.StreamWalksAborted.Inc()
			ok = false
			break
		}
		if stream.AtEnd() || result == ResultTruncated {
			break
		}
	}

	if result == ResultTruncated {
		// Scroll has nothing to do when pos is already 0: the unconsumed
		// tail then already sits at the front of buf and is kept.
		if !stream.Scroll() && stream.Len() == len(stream.Bytes()) {
			// Overflow: the unconsumed tail fills the whole buffer and
			// there is nowhere left to scroll it to. Drop it; the caller
			// must refill from scratch.
			stream.SetPos(0)
			stream.SetLen(0)
		}
	} else {
		// The walk ended on Complete or Invalid, at the end of the stream or
		// because the handler aborted it. Any bytes not yet consumed are
		// dropped; the whole buffer is free for the caller to refill.
		stream.SetPos(0)
		stream.SetLen(0)
	}
	return ok
}

// logWalkResult mirrors mrcp_stream_walk's apt_log calls (mrcp_stream.c).
// Complete and Truncated are deliberately logged with the same phrasing the
// source uses — a harmless quirk (§9) kept here rather than "fixed", since
// distinguishing them isn't this log line's job; the result value passed to
// handler already does that. The trace id comes from msg's own arena (§4.8)
// so a Debug line can be correlated back to the parse attempt that produced
// it; msg is nil after a mid-header break, in which case the field is empty.
func logWalkResult(result Result, stream *TextStream, msg *Message) {
	switch result {
	case ResultComplete, ResultTruncated:
		var traceID string
		if msg != nil && msg.arena != nil {
			traceID = msg.arena.TraceID()
		}
		DefaultLogger().Debug("parsed MRCP message", "offset", stream.Pos(), "trace_id", traceID)
	case ResultInvalid:
		DefaultLogger().Warn("failed to parse MRCP message")
	}
}
