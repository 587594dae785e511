package mrcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSpeakRequest() *Message {
	msg := &Message{}
	msg.Start = StartLine{
		Version:     V2,
		Kind:        StartLineRequest,
		MethodID:    SynthMethodSpeak,
		HasMethodID: true,
		RequestID:   1,
	}
	msg.Channel = ChannelID{SessionID: "sess1", ResourceName: "speechsynth"}
	msg.Header.Generic.HasContentType = true
	msg.Header.Generic.ContentType = "application/synthesis+ssml"
	msg.SetBody([]byte("hello"))
	return msg
}

func TestGeneratorCompleteV2Request(t *testing.T) {
	msg := buildSpeakRequest()
	g := NewGenerator(DefaultResourceFactory())
	require.True(t, g.SetMessage(msg))

	buf := make([]byte, 256)
	stream := NewTextStream(buf, 0)
	result := g.Run(stream)
	require.Equal(t, ResultComplete, result)
	require.Equal(t, "SPEAK", msg.Start.MethodName)

	out := string(stream.Bytes()[:stream.Len()])
	require.Contains(t, out, "MRCP/2.0 0000000005 SPEAK 1\r\n")
	require.Contains(t, out, "sess1@speechsynth\r\n")
	require.Contains(t, out, "Content-Length: 5\r\n")
	require.Contains(t, out, "hello")
}

func TestGeneratorRoundTrip(t *testing.T) {
	msg := buildSpeakRequest()
	g := NewGenerator(DefaultResourceFactory())
	g.SetMessage(msg)

	buf := make([]byte, 256)
	stream := NewTextStream(buf, 0)
	require.Equal(t, ResultComplete, g.Run(stream))

	p := newTestParser()
	parseStream := NewTextStream(stream.Bytes(), stream.Len())
	require.Equal(t, ResultComplete, p.Run(parseStream))

	parsed := p.CurrentMessage()
	require.Equal(t, msg.Start.MethodID, parsed.Start.MethodID)
	require.Equal(t, msg.Channel.SessionID, parsed.Channel.SessionID)
	require.Equal(t, msg.Channel.ResourceName, parsed.Channel.ResourceName)
	require.Equal(t, string(msg.Body), string(parsed.Body))
	require.Equal(t, msg.Header.Generic.ContentType, parsed.Header.Generic.ContentType)
}

func TestGeneratorChunkedGenerateEquivalence(t *testing.T) {
	msg := buildSpeakRequest()
	g := NewGenerator(DefaultResourceFactory())
	g.SetMessage(msg)

	oneShotBuf := make([]byte, 256)
	oneShot := NewTextStream(oneShotBuf, 0)
	require.Equal(t, ResultComplete, g.Run(oneShot))
	want := string(oneShot.Bytes()[:oneShot.Len()])

	// A buffer exactly large enough fits in one call; there is nowhere to
	// grow a write-direction TextStream mid-generate (unlike the parser,
	// start-line/header generation is not resumable, §4.5), so chunked
	// generation here means retrying with a bigger buffer after Truncated.
	small := make([]byte, 8)
	stream := NewTextStream(small, 0)
	g2 := NewGenerator(DefaultResourceFactory())
	g2.SetMessage(buildSpeakRequest())
	result := g2.Run(stream)
	require.Equal(t, ResultTruncated, result)
	require.Equal(t, 0, stream.Pos())

	bigger := make([]byte, len(want))
	stream2 := NewTextStream(bigger, 0)
	require.True(t, g2.SetMessage(buildSpeakRequest()))
	require.Equal(t, ResultComplete, g2.Run(stream2))
	require.Equal(t, want, string(stream2.Bytes()[:stream2.Len()]))
}

func TestGeneratorUnknownResourceIsInvalid(t *testing.T) {
	msg := buildSpeakRequest()
	msg.Channel.ResourceName = "not-a-resource"
	g := NewGenerator(DefaultResourceFactory())
	g.SetMessage(msg)

	buf := make([]byte, 256)
	stream := NewTextStream(buf, 0)
	result := g.Run(stream)
	require.Equal(t, ResultInvalid, result)
	// Unlike the parser's Invalid, the message stays attached (§7):
	// nothing was written to the stream yet, so it can be fixed and retried.
	require.Same(t, msg, g.CurrentMessage())
}

func TestGeneratorValidateRejectsMissingMethodID(t *testing.T) {
	msg := buildSpeakRequest()
	msg.Start.HasMethodID = false
	g := NewGenerator(DefaultResourceFactory())
	g.SetMessage(msg)

	buf := make([]byte, 256)
	stream := NewTextStream(buf, 0)
	require.Equal(t, ResultInvalid, g.Run(stream))
}

func TestGeneratorValidateRejectsMissingRequestID(t *testing.T) {
	msg := buildSpeakRequest()
	msg.Start.RequestID = 0
	g := NewGenerator(DefaultResourceFactory())
	g.SetMessage(msg)

	buf := make([]byte, 256)
	stream := NewTextStream(buf, 0)
	require.Equal(t, ResultInvalid, g.Run(stream))
}

func TestGeneratorContentLengthExactness(t *testing.T) {
	msg := buildSpeakRequest()
	g := NewGenerator(DefaultResourceFactory())
	g.SetMessage(msg)

	buf := make([]byte, 256)
	stream := NewTextStream(buf, 0)
	require.Equal(t, ResultComplete, g.Run(stream))

	out := string(stream.Bytes()[:stream.Len()])
	headerEnd := strings.Index(out, "\r\n\r\n")
	require.NotEqual(t, -1, headerEnd)
	bodyBytes := out[headerEnd+4:]
	require.Equal(t, len(msg.Body), len(bodyBytes))
}
