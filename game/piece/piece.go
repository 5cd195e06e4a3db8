// Package piece contains the shapes of the pieces players place on the board.
package piece

type (
	// Name identifies a piece.
	Name string

	// Offset is the position of a cell relative to the anchor of a piece.
	Offset struct {
		DX int
		DY int
	}

	// Cell is a single square of a piece.
	Cell struct {
		Offset Offset `json:"cell"`
		ID     Name   `json:"id"`
	}

	// Piece is a named shape and the number of times it can be in a game.
	Piece struct {
		Name     Name
		Shape    []Offset
		MaxCount int
	}
)

// Anchor is the origin that the offsets of a shape are relative to.
var Anchor Offset

// Cells returns the shape of the piece with each offset tagged by the piece name.
func (p Piece) Cells() []Cell {
	cells := make([]Cell, len(p.Shape))
	for i, o := range p.Shape {
		cells[i] = Cell{
			Offset: o,
			ID:     p.Name,
		}
	}
	return cells
}

// Size is the number of cells the piece covers.
func (p Piece) Size() int {
	return len(p.Shape)
}

// HasAnchor reports whether the anchor is one of the cells of the piece.
func (p Piece) HasAnchor() bool {
	for _, o := range p.Shape {
		if o == Anchor {
			return true
		}
	}
	return false
}

// Bounds returns the smallest and largest offsets in each axis.
// The zero Offsets are returned for pieces without cells.
func (p Piece) Bounds() (min, max Offset) {
	for i, o := range p.Shape {
		if i == 0 {
			min, max = o, o
			continue
		}
		if o.DX < min.DX {
			min.DX = o.DX
		}
		if o.DY < min.DY {
			min.DY = o.DY
		}
		if o.DX > max.DX {
			max.DX = o.DX
		}
		if o.DY > max.DY {
			max.DY = o.DY
		}
	}
	return min, max
}

// clone copies the piece so the shape does not share memory.
func (p Piece) clone() Piece {
	shape := make([]Offset, len(p.Shape))
	copy(shape, p.Shape)
	p.Shape = shape
	return p
}
