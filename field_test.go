package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(f *Field, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < f.width; x++ {
		if !skip[x] {
			f.cells[f.index(x, y)] = PieceJ
		}
	}
}

func dot(x, y int) *Piece {
	return &Piece{Grid: NewGrid([]int{0}, 1), Type: PieceT, X: x, Y: y}
}

func TestNewFieldPanicsOnBadSize(t *testing.T) {
	assert.Panics(t, func() { NewField(0, 20) })
	assert.Panics(t, func() { NewField(10, -1) })
	assert.NotPanics(t, func() { NewField(1, 1) })
}

func TestFieldCheckBounds(t *testing.T) {
	for width := 1; width <= 5; width++ {
		for height := 1; height <= 5; height++ {
			f := NewField(width, height)
			for x := -2; x <= width+1; x++ {
				for y := -2; y <= height+1; y++ {
					want := x >= 0 && x < width && y < height
					assert.Equal(t, want, f.Check(dot(x, y)), "%dx%d at (%d,%d)", width, height, x, y)
				}
			}
		}
	}
}

func TestFieldCheckWholePiece(t *testing.T) {
	f := NewField(10, 20)

	p := NewPiece(PieceI, 10)
	assert.True(t, f.Check(p))

	p.X = -1
	assert.False(t, f.Check(p), "one cell left of the wall")

	p.X = 7
	assert.False(t, f.Check(p), "one cell right of the wall")

	p.X = 6
	p.Y = 18
	assert.True(t, f.Check(p))

	p.Y = 19
	assert.False(t, f.Check(p), "below the floor")
}

func TestFieldCheckOverlap(t *testing.T) {
	f := NewField(10, 20)
	f.cells[f.index(5, 0)] = PieceZ

	assert.False(t, f.Check(NewPiece(PieceT, 10)))
	assert.True(t, f.Check(NewPiece(PieceI, 10)), "I spawns entirely above row 0")
}

func TestFieldCommit(t *testing.T) {
	f := NewField(10, 20)
	p := NewPiece(PieceO, 10)
	p.X, p.Y = 0, 18

	require.True(t, f.Check(p))
	f.Commit(p)

	assert.False(t, f.Check(p))
	assert.Equal(t, 4, f.Filled())
	for _, c := range []Point{{0, 18}, {1, 18}, {0, 19}, {1, 19}} {
		assert.Equal(t, PieceO, f.Cell(c.X, c.Y))
	}
}

func TestFieldCommitDropsHiddenRows(t *testing.T) {
	f := NewField(10, 20)
	p := NewPiece(PieceO, 10)

	f.Commit(p)

	assert.Equal(t, 2, f.Filled())
	assert.Equal(t, PieceO, f.Cell(4, 0))
	assert.Equal(t, PieceO, f.Cell(5, 0))
}

func TestFieldFullRows(t *testing.T) {
	f := NewField(4, 6)
	assert.Empty(t, f.FullRows())

	fillRow(f, 5)
	fillRow(f, 4, 2)
	fillRow(f, 2)
	assert.Equal(t, []int{2, 5}, f.FullRows())
}

func TestFieldCompact(t *testing.T) {
	f := NewField(4, 6)
	fillRow(f, 5, 0)
	fillRow(f, 4)
	fillRow(f, 3, 1, 2)
	f.cells[f.index(2, 1)] = PieceS
	f.cells[f.index(0, 0)] = PieceZ

	before := f.Rows()
	f.Compact(4)
	after := f.Rows()

	assert.Equal(t, make([]PieceType, 4), after[0])
	for y := 1; y <= 4; y++ {
		assert.Equal(t, before[y-1], after[y], "row %d", y)
	}
	assert.Equal(t, before[5], after[5], "rows below are untouched")
	assert.Equal(t, PieceZ, f.Cell(0, 1))
	assert.Equal(t, PieceS, f.Cell(2, 2))
}

func TestFieldCompactTopRow(t *testing.T) {
	f := NewField(3, 3)
	fillRow(f, 0)
	fillRow(f, 2, 1)

	f.Compact(0)

	assert.Equal(t, make([]PieceType, 3), f.Row(0))
	assert.Equal(t, 2, f.Filled())
}

func TestFieldClearFullRows(t *testing.T) {
	f := NewField(4, 6)
	fillRow(f, 5)
	fillRow(f, 4, 3)
	fillRow(f, 3)
	f.cells[f.index(1, 2)] = PieceL

	assert.Equal(t, 2, f.ClearFullRows())

	assert.Empty(t, f.FullRows())
	assert.Equal(t, []PieceType{PieceJ, PieceJ, PieceJ, PieceNone}, f.Row(5))
	assert.Equal(t, PieceL, f.Cell(1, 4))
	assert.Equal(t, 4, f.Filled())
	assert.Equal(t, 0, f.ClearFullRows())
}

func TestFieldAccessors(t *testing.T) {
	f := NewField(3, 2)
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, 2, f.Height())
	assert.Equal(t, PieceNone, f.Cell(-1, 0))
	assert.Equal(t, PieceNone, f.Cell(0, 5))
	assert.Equal(t, make([]PieceType, 3), f.Row(-1))

	rows := f.Rows()
	rows[0][0] = PieceI
	assert.Equal(t, PieceNone, f.Cell(0, 0))
}
