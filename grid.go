package tetris

type Point struct {
	X, Y int
}

// Grid is a square s*s index space. cells holds the occupied local indices,
// not a bitmap: rotating a grid permutes the stored indices.
type Grid struct {
	cells []int
	size  int
}

func NewGrid(cells []int, size int) Grid {
	c := make([]int, len(cells))
	copy(c, cells)
	return Grid{cells: c, size: size}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) Cells() []int {
	c := make([]int, len(g.cells))
	copy(c, g.cells)
	return c
}

func (g *Grid) X(index int) int {
	return index % g.size
}

func (g *Grid) Y(index int) int {
	return index / g.size
}

func (g *Grid) Position(index int) Point {
	return Point{X: g.X(index), Y: g.Y(index)}
}

func (g *Grid) Index(x, y int) int {
	return g.size*y + x
}

// RotateIndex maps index to its position after a quarter turn around the
// grid centre, clockwise unless reverse is set.
func (g *Grid) RotateIndex(index int, reverse bool) int {
	x, y, s := g.X(index), g.Y(index), g.size
	if reverse {
		return s*(s-1) - x*s + y
	}
	return (s - 1) + x*s - y
}

func (g *Grid) Rotate(reverse bool) {
	for i, index := range g.cells {
		g.cells[i] = g.RotateIndex(index, reverse)
	}
}

func (g *Grid) clone() Grid {
	return NewGrid(g.cells, g.size)
}
