package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayPushAndAt(t *testing.T) {
	a := NewArray[int](0)
	a.Push(1)
	a.Push(2)
	a.Push(3)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 2, a.At(1))
}

func TestArraySet(t *testing.T) {
	a := NewArray[string](0)
	a.Push("x")
	a.Set(0, "y")
	assert.Equal(t, "y", a.At(0))
}

func TestArrayAtOutOfRangePanics(t *testing.T) {
	a := NewArray[int](0)
	assert.Panics(t, func() { a.At(0) })
}

func TestMapPutGetHasRemove(t *testing.T) {
	m := NewMap[int](4)
	assert.True(t, m.Put("a", 1))
	assert.True(t, m.Put("b", 2))
	assert.False(t, m.Put("a", 3)) // update, not a fresh insert

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	assert.True(t, m.Has("b"))
	assert.True(t, m.Remove("b"))
	assert.False(t, m.Has("b"))
}

func TestMapRehashesUnderLoad(t *testing.T) {
	m := NewMap[int](4)
	for i := 0; i < 100; i++ {
		m.Put(string(rune('a'+i%26))+string(rune('A'+i/26)), i)
	}
	assert.Equal(t, 100, m.Len())
	for i := 0; i < 100; i++ {
		key := string(rune('a'+i%26)) + string(rune('A'+i/26))
		v, ok := m.Get(key)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}
