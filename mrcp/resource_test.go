package mrcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourceFactoryResolvesByName(t *testing.T) {
	f := DefaultResourceFactory()
	msg := &Message{}
	msg.Start = StartLine{Kind: StartLineRequest, MethodName: "speak"}
	msg.Channel.ResourceName = "speechsynth"

	require.NoError(t, f.resourcifyByName(msg))
	require.True(t, msg.Start.HasMethodID)
	require.Equal(t, SynthMethodSpeak, msg.Start.MethodID)
	require.NotNil(t, msg.Header.Resource)
	require.Equal(t, "speechsynth", msg.Header.Resource.ResourceName())
}

func TestResourceFactoryUnknownResource(t *testing.T) {
	f := DefaultResourceFactory()
	msg := &Message{}
	msg.Start = StartLine{Kind: StartLineRequest, MethodName: "SPEAK"}
	msg.Channel.ResourceName = "does-not-exist"

	require.ErrorIs(t, f.resourcifyByName(msg), ErrUnknownResource)
}

func TestResourceFactoryResolvesByID(t *testing.T) {
	f := DefaultResourceFactory()
	msg := &Message{}
	msg.Start = StartLine{Kind: StartLineEvent, EventID: SynthEventSpeakComplete, HasEventID: true}
	msg.Channel.ResourceName = "speechsynth"

	require.NoError(t, f.resourcifyByID(msg))
	require.Equal(t, "SPEAK-COMPLETE", msg.Start.EventName)
}

func TestSpeechRecogHeaderRoundTrip(t *testing.T) {
	h := &SpeechRecogHeader{}
	require.True(t, h.SetField("Confidence-Threshold", "0.5"))
	require.True(t, h.SetField("No-Input-Timeout", "3000"))
	require.False(t, h.SetField("Not-A-Field", "x"))

	fields := h.AppendFields(nil)
	v, ok := fields.Get("Confidence-Threshold")
	require.True(t, ok)
	require.Equal(t, "0.5", v)
}

func TestRecorderHeaderRoundTrip(t *testing.T) {
	h := &RecorderHeader{}
	require.True(t, h.SetField("Capture-On-Speech", "true"))
	fields := h.AppendFields(nil)
	v, ok := fields.Get("Capture-On-Speech")
	require.True(t, ok)
	require.Equal(t, "true", v)
}
