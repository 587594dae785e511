package mrcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaCopyIsStable(t *testing.T) {
	a := NewArena()
	src := []byte("hello")
	copied := a.Copy(src)
	src[0] = 'H'
	require.Equal(t, "hello", string(copied))
}

func TestArenaAllocIsZeroed(t *testing.T) {
	a := NewArena()
	b := a.Alloc(4)
	require.Equal(t, []byte{0, 0, 0, 0}, b)
}

func TestArenaResetReleasesStorage(t *testing.T) {
	a := NewArena()
	a.Copy([]byte("first"))
	before := a.TraceID()
	a.Reset()
	after := a.TraceID()
	require.NotEqual(t, before, after)
	second := a.Copy([]byte("second"))
	require.Equal(t, "second", string(second))
}

func TestArenaTraceIDStable(t *testing.T) {
	a := NewArena()
	id1 := a.TraceID()
	id2 := a.TraceID()
	require.Equal(t, id1, id2)
}
