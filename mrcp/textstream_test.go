package mrcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextStreamWriteAndPatch(t *testing.T) {
	buf := make([]byte, 32)
	s := NewTextStream(buf, 0)

	require.True(t, s.WriteString("hello "))
	require.True(t, s.WriteString("0000000000"))
	require.True(t, s.WriteString(" world"))
	require.True(t, s.PatchAt(6, []byte("1234567890")))
	require.Equal(t, "hello 1234567890 world", string(s.Bytes()[:s.Len()]))
	require.Equal(t, s.Len(), s.Pos())
}

func TestTextStreamWriteRejectsOverflow(t *testing.T) {
	buf := make([]byte, 4)
	s := NewTextStream(buf, 0)
	require.False(t, s.WriteString("toolong"))
}

func TestTextStreamScroll(t *testing.T) {
	buf := []byte("abcdefgh")
	s := NewTextStream(buf, 8)
	s.Advance(5)
	require.True(t, s.Scroll())
	require.Equal(t, 0, s.Pos())
	require.Equal(t, 3, s.Len())
	require.Equal(t, "fgh", string(s.Bytes()[:s.Len()]))
}

func TestTextStreamScrollNothingToDo(t *testing.T) {
	buf := []byte("abcd")
	s := NewTextStream(buf, 4)
	require.False(t, s.Scroll())
}

func TestTextStreamAtEnd(t *testing.T) {
	buf := []byte("ab")
	s := NewTextStream(buf, 2)
	require.False(t, s.AtEnd())
	s.Advance(2)
	require.True(t, s.AtEnd())
}
