package tetris

import "image/color"

// PieceType identifies one of the seven tetrominoes. Its value is also what
// the field stores in a cell once a piece of that type is locked.
type PieceType int

const (
	PieceNone PieceType = iota
	PieceI
	PieceO
	PieceL
	PieceJ
	PieceT
	PieceS
	PieceZ
)

type pieceTemplate struct {
	name  string
	cells []int
	size  int
	row   int
	color color.RGBA
}

var catalog = [...]pieceTemplate{
	PieceI: {name: "I", cells: []int{4, 5, 6, 7}, size: 4, row: -2, color: color.RGBA{R: 63, G: 175, B: 175, A: 255}},
	PieceO: {name: "O", cells: []int{0, 1, 2, 3}, size: 2, row: -1, color: color.RGBA{R: 239, G: 175, B: 127, A: 255}},
	PieceL: {name: "L", cells: []int{3, 4, 5, 6}, size: 3, row: -2, color: color.RGBA{R: 239, G: 123, B: 107, A: 255}},
	PieceJ: {name: "J", cells: []int{3, 4, 5, 8}, size: 3, row: -2, color: color.RGBA{R: 0, G: 87, B: 158, A: 255}},
	PieceT: {name: "T", cells: []int{3, 4, 5, 7}, size: 3, row: -2, color: color.RGBA{R: 87, G: 63, B: 159, A: 255}},
	PieceS: {name: "S", cells: []int{4, 5, 6, 7}, size: 3, row: -2, color: color.RGBA{R: 95, G: 175, B: 127, A: 255}},
	PieceZ: {name: "Z", cells: []int{3, 4, 7, 8}, size: 3, row: -2, color: color.RGBA{R: 239, G: 79, B: 119, A: 255}},
}

// PieceTypes returns the seven playable types in catalog order.
func PieceTypes() []PieceType {
	return []PieceType{PieceI, PieceO, PieceL, PieceJ, PieceT, PieceS, PieceZ}
}

func (t PieceType) Valid() bool {
	return t > PieceNone && int(t) < len(catalog)
}

func (t PieceType) String() string {
	if !t.Valid() {
		return "-"
	}
	return catalog[t].name
}

func (t PieceType) Color() color.RGBA {
	if !t.Valid() {
		return color.RGBA{R: 223, G: 223, B: 223, A: 255}
	}
	return catalog[t].color
}

// Piece is a Grid anchored at X, Y on the playfield. Only the anchor and the
// rotation state change over its lifetime.
type Piece struct {
	Grid
	Type PieceType
	X, Y int
}

// NewPiece builds a fresh piece of type t at its spawn anchor for a field
// of the given width. It panics on an unknown type.
func NewPiece(t PieceType, fieldWidth int) *Piece {
	if !t.Valid() {
		panic("tetris: unknown piece type")
	}
	tmpl := catalog[t]
	return &Piece{
		Grid: NewGrid(tmpl.cells, tmpl.size),
		Type: t,
		X:    (fieldWidth - tmpl.size + 1) / 2,
		Y:    tmpl.row,
	}
}

func (p *Piece) Clone() *Piece {
	return &Piece{
		Grid: p.Grid.clone(),
		Type: p.Type,
		X:    p.X,
		Y:    p.Y,
	}
}

// AbsPosition translates a local index into playfield coordinates.
func (p *Piece) AbsPosition(index int) Point {
	pos := p.Position(index)
	return Point{X: p.X + pos.X, Y: p.Y + pos.Y}
}

// Cells returns the playfield coordinates of every occupied cell.
func (p *Piece) Cells() []Point {
	points := make([]Point, len(p.cells))
	for i, index := range p.cells {
		points[i] = p.AbsPosition(index)
	}
	return points
}

// Blocks returns the occupied cells in the piece's local grid.
func (p *Piece) Blocks() []Point {
	points := make([]Point, len(p.cells))
	for i, index := range p.cells {
		points[i] = p.Position(index)
	}
	return points
}
