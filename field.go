package tetris

import "fmt"

// Field is the playfield. Each cell holds PieceNone or the type of the piece
// that was locked there. Rows above 0 do not exist; pieces may hang there
// while they fall in.
type Field struct {
	cells         []PieceType
	width, height int
}

func NewField(width, height int) *Field {
	if width < 1 || height < 1 {
		panic(fmt.Errorf("field size must be positive, got %dx%d", width, height))
	}
	return &Field{
		cells:  make([]PieceType, width*height),
		width:  width,
		height: height,
	}
}

func (f *Field) Width() int {
	return f.width
}

func (f *Field) Height() int {
	return f.height
}

func (f *Field) inside(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

func (f *Field) index(x, y int) int {
	return f.width*y + x
}

// Cell returns the content at x, y, or PieceNone outside the field.
func (f *Field) Cell(x, y int) PieceType {
	if !f.inside(x, y) {
		return PieceNone
	}
	return f.cells[f.index(x, y)]
}

func (f *Field) Row(y int) []PieceType {
	row := make([]PieceType, f.width)
	if y >= 0 && y < f.height {
		copy(row, f.cells[f.index(0, y):f.index(0, y+1)])
	}
	return row
}

// Rows returns a row-major copy of the whole field.
func (f *Field) Rows() [][]PieceType {
	rows := make([][]PieceType, f.height)
	for y := range rows {
		rows[y] = f.Row(y)
	}
	return rows
}

// Filled counts the non-empty cells.
func (f *Field) Filled() int {
	n := 0
	for _, c := range f.cells {
		if c != PieceNone {
			n++
		}
	}
	return n
}

// Check reports whether p fits: every cell inside the side walls, above the
// floor and over an empty cell. Cells above row 0 are allowed.
func (f *Field) Check(p *Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= f.width || c.Y >= f.height {
			return false
		}
		if c.Y >= 0 && f.cells[f.index(c.X, c.Y)] != PieceNone {
			return false
		}
	}
	return true
}

// Commit writes p's type into every cell it occupies. p must have passed
// Check at its current anchor; cells above row 0 are dropped.
func (f *Field) Commit(p *Piece) {
	for _, c := range p.Cells() {
		if f.inside(c.X, c.Y) {
			f.cells[f.index(c.X, c.Y)] = p.Type
		}
	}
}

func (f *Field) rowFull(y int) bool {
	for x := 0; x < f.width; x++ {
		if f.cells[f.index(x, y)] == PieceNone {
			return false
		}
	}
	return true
}

// FullRows returns the completed rows, top to bottom.
func (f *Field) FullRows() []int {
	var rows []int
	for y := 0; y < f.height; y++ {
		if f.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Compact removes row and shifts every row above it down by one. Row 0
// becomes empty.
func (f *Field) Compact(row int) {
	if row < 0 || row >= f.height {
		return
	}
	copy(f.cells[f.width:f.index(0, row+1)], f.cells[:f.index(0, row)])
	for x := 0; x < f.width; x++ {
		f.cells[x] = PieceNone
	}
}

// ClearFullRows compacts every completed row and returns how many there were.
func (f *Field) ClearFullRows() int {
	rows := f.FullRows()
	for _, y := range rows {
		f.Compact(y)
	}
	return len(rows)
}
