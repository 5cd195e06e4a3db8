package server

import "github.com/jacobpatterson1549/cathedral/game/piece"

type mockCatalog struct {
	piecesFunc func() []piece.Piece
	cellsFunc  func() []piece.Cell
}

func (m mockCatalog) Pieces() []piece.Piece {
	return m.piecesFunc()
}

func (m mockCatalog) Cells() []piece.Cell {
	return m.cellsFunc()
}

// twoPieceCatalog is a small catalog with a single-use piece and a piece that can be used twice.
func twoPieceCatalog() mockCatalog {
	pieces := []piece.Piece{
		{Name: "Bridge", Shape: []piece.Offset{{DX: 0, DY: 0}, {DX: 1, DY: 0}, {DX: 2, DY: 0}}, MaxCount: 1},
		{Name: "Tavern", Shape: []piece.Offset{{DX: 0, DY: 0}}, MaxCount: 2},
	}
	return mockCatalog{
		piecesFunc: func() []piece.Piece {
			return pieces
		},
		cellsFunc: func() []piece.Cell {
			var cells []piece.Cell
			for _, p := range pieces {
				cells = append(cells, p.Cells()...)
			}
			return cells
		},
	}
}
