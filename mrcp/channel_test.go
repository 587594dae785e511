package mrcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseChannelID(t *testing.T) {
	a := NewArena()
	id, ok := parseChannelID([]byte("abc123@speechsynth"), a)
	require.True(t, ok)
	require.Equal(t, "abc123", id.SessionID)
	require.Equal(t, "speechsynth", id.ResourceName)
}

func TestParseChannelIDMalformed(t *testing.T) {
	a := NewArena()
	cases := []string{"", "@speechsynth", "abc123@", "noatsign"}
	for _, c := range cases {
		_, ok := parseChannelID([]byte(c), a)
		require.False(t, ok, c)
	}
}

func TestGenerateChannelIDRejectsEmpty(t *testing.T) {
	buf := make([]byte, 64)
	s := NewTextStream(buf, 0)
	require.False(t, generateChannelID(ChannelID{}, s))
	require.True(t, generateChannelID(ChannelID{SessionID: "a", ResourceName: "b"}, s))
}

func TestNewSessionIDIsUnique(t *testing.T) {
	require.NotEqual(t, NewSessionID(), NewSessionID())
}
