package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSource(t *testing.T) {
	a := NewRandomSource(42)
	b := NewRandomSource(42)

	seen := make(map[PieceType]int)
	for i := 0; i < 700; i++ {
		typ := a.Next()
		assert.True(t, typ.Valid())
		assert.Equal(t, typ, b.Next())
		seen[typ]++
	}
	assert.Len(t, seen, 7)
}

func TestQueueSource(t *testing.T) {
	q := NewQueueSource(NewRandomSource(1), PieceO, PieceI)
	q.Push(PieceZ)
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, PieceO, q.Next())
	assert.Equal(t, PieceI, q.Next())
	assert.Equal(t, PieceZ, q.Next())
	assert.Equal(t, 0, q.Len())

	fallback := NewRandomSource(1)
	assert.Equal(t, fallback.Next(), q.Next())
}
