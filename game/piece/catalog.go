package piece

import (
	"errors"
	"fmt"
	"sync"
)

// Catalog is an immutable, ordered table of pieces.
// It is safe for concurrent reads.
type Catalog struct {
	pieces []Piece
	byName map[Name]int
}

var (
	// ErrDuplicateDefinition is returned when two pieces share a name.
	ErrDuplicateDefinition = errors.New("duplicate piece definition")
	// ErrEmptyShape is returned when a piece has no cells.
	ErrEmptyShape = errors.New("empty piece shape")
	// ErrDuplicateCell is returned when a shape lists the same offset more than once.
	ErrDuplicateCell = errors.New("duplicate cell in piece shape")
	// ErrInvalidCount is returned when a piece cannot be in a game at least once.
	ErrInvalidCount = errors.New("piece max count must be positive")
	// ErrEmptyName is returned when a piece has no name.
	ErrEmptyName = errors.New("piece name required")
)

var standard = sync.OnceValue(func() *Catalog {
	c, err := New(Definitions()...)
	if err != nil {
		panic("creating standard piece catalog: " + err.Error())
	}
	return c
})

// Standard is the catalog of the pieces in a game.
// It is built the first time it is requested and shared afterwards.
func Standard() *Catalog {
	return standard()
}

// New creates a catalog from the pieces, in order.
// The pieces are copied, so later changes to them do not affect the catalog.
func New(pieces ...Piece) (*Catalog, error) {
	c := Catalog{
		pieces: make([]Piece, len(pieces)),
		byName: make(map[Name]int, len(pieces)),
	}
	for i, p := range pieces {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("creating catalog: piece %v: %w", i, err)
		}
		if _, ok := c.byName[p.Name]; ok {
			return nil, fmt.Errorf("creating catalog: %w: %q", ErrDuplicateDefinition, p.Name)
		}
		c.byName[p.Name] = i
		c.pieces[i] = p.clone()
	}
	return &c, nil
}

// validate checks the name, count, and cells of the piece.
func (p Piece) validate() error {
	switch {
	case len(p.Name) == 0:
		return ErrEmptyName
	case len(p.Shape) == 0:
		return fmt.Errorf("%w: %q", ErrEmptyShape, p.Name)
	case p.MaxCount < 1:
		return fmt.Errorf("%w: %q has %v", ErrInvalidCount, p.Name, p.MaxCount)
	}
	seen := make(map[Offset]struct{}, len(p.Shape))
	for _, o := range p.Shape {
		if _, ok := seen[o]; ok {
			return fmt.Errorf("%w: %q lists %v more than once", ErrDuplicateCell, p.Name, o)
		}
		seen[o] = struct{}{}
	}
	return nil
}

// Len is the number of distinct pieces.
func (c *Catalog) Len() int {
	return len(c.pieces)
}

// Pieces returns copies of all the pieces in declaration order.
func (c *Catalog) Pieces() []Piece {
	pieces := make([]Piece, len(c.pieces))
	for i, p := range c.pieces {
		pieces[i] = p.clone()
	}
	return pieces
}

// Names returns the piece names in declaration order.
func (c *Catalog) Names() []Name {
	names := make([]Name, len(c.pieces))
	for i, p := range c.pieces {
		names[i] = p.Name
	}
	return names
}

// Lookup returns a copy of the piece with the name.
func (c *Catalog) Lookup(name Name) (Piece, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Piece{}, false
	}
	return c.pieces[i].clone(), true
}

// MaxCount returns how many of the named piece can be in a game.
func (c *Catalog) MaxCount(name Name) (int, bool) {
	i, ok := c.byName[name]
	if !ok {
		return 0, false
	}
	return c.pieces[i].MaxCount, true
}

// Cells flattens the shapes of every piece, in declaration order.
func (c *Catalog) Cells() []Cell {
	n := 0
	for _, p := range c.pieces {
		n += len(p.Shape)
	}
	cells := make([]Cell, 0, n)
	for _, p := range c.pieces {
		cells = append(cells, p.Cells()...)
	}
	return cells
}

// TotalCount is the number of pieces in a full set when every piece is used as often as allowed.
func (c *Catalog) TotalCount() int {
	total := 0
	for _, p := range c.pieces {
		total += p.MaxCount
	}
	return total
}
