package mrcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamWalkDeliversCompleteMessages(t *testing.T) {
	raw := v2SpeakRequest() + v2SpeakRequest()
	buf := make([]byte, len(raw))
	copy(buf, raw)
	stream := NewTextStream(buf, len(raw))
	p := newTestParser()

	var results []Result
	ok := StreamWalk(p, stream, func(_ any, msg *Message, result Result) bool {
		results = append(results, result)
		return true
	}, nil)

	require.True(t, ok)
	require.Equal(t, []Result{ResultComplete, ResultComplete}, results)
	require.Equal(t, 0, stream.Pos())
}

func TestStreamWalkStopsOnTruncatedAndScrolls(t *testing.T) {
	raw := v2SpeakRequest()
	buf := make([]byte, len(raw))
	copy(buf, raw[:len(raw)-2])
	stream := NewTextStream(buf, len(raw)-2)
	p := newTestParser()

	var results []Result
	StreamWalk(p, stream, func(_ any, msg *Message, result Result) bool {
		results = append(results, result)
		return true
	}, nil)

	require.Equal(t, []Result{ResultTruncated}, results)
}

func TestStreamWalkHandlerAbortReturnsFalse(t *testing.T) {
	raw := v2SpeakRequest() + v2SpeakRequest()
	stream := NewTextStream([]byte(raw), len(raw))
	p := newTestParser()

	calls := 0
	ok := StreamWalk(p, stream, func(_ any, msg *Message, result Result) bool {
		calls++
		return false
	}, nil)

	require.False(t, ok)
	require.Equal(t, 1, calls)
}

func TestStreamWalkInvokesHandlerOnInvalid(t *testing.T) {
	lines := []string{
		"MRCP/2.0 0000000000 SPEAK 1",
		"sess1@not-a-resource",
		"Content-Length: 0",
		"",
	}
	raw := strings.Join(lines, "\r\n") + "\r\n"
	stream := NewTextStream([]byte(raw), len(raw))
	p := newTestParser()

	var got Result
	StreamWalk(p, stream, func(_ any, msg *Message, result Result) bool {
		got = result
		return true
	}, nil)

	require.Equal(t, ResultInvalid, got)
}
