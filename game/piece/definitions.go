package piece

// Names of the pieces in the standard catalog.
const (
	Cathedral Name = "Cathedral"
	Castle    Name = "Castle"
	Infirmary Name = "Infirmary"
	Academy   Name = "Academy"
	Abbey     Name = "Abbey"
	Manor     Name = "Manor"
	Square    Name = "Square"
	Bridge    Name = "Bridge"
	Inn       Name = "Inn"
	Stable    Name = "Stable"
	Tavern    Name = "Tavern"
)

// Definitions returns a new copy of the pieces of the standard catalog.
// The Cathedral is the only piece without a cell at the anchor.
func Definitions() []Piece {
	return []Piece{
		{
			Name:     Cathedral,
			Shape:    []Offset{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}, {1, 3}},
			MaxCount: 1,
		},
		{
			Name:     Castle,
			Shape:    []Offset{{0, 0}, {1, 0}, {0, 1}, {0, 2}, {1, 2}},
			MaxCount: 1,
		},
		{
			Name:     Infirmary,
			Shape:    []Offset{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, -1}},
			MaxCount: 1,
		},
		{
			Name:     Academy,
			Shape:    []Offset{{0, 0}, {1, -1}, {1, 0}, {2, 0}, {0, 1}},
			MaxCount: 1,
		},
		{
			Name:     Abbey,
			Shape:    []Offset{{0, 0}, {1, 0}, {0, 1}, {1, -1}},
			MaxCount: 1,
		},
		{
			Name:     Manor,
			Shape:    []Offset{{0, 0}, {1, 0}, {1, 1}, {2, 0}},
			MaxCount: 1,
		},
		{
			Name:     Square,
			Shape:    []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			MaxCount: 1,
		},
		{
			Name:     Bridge,
			Shape:    []Offset{{0, 0}, {1, 0}, {2, 0}},
			MaxCount: 1,
		},
		{
			Name:     Inn,
			Shape:    []Offset{{0, 0}, {1, 0}, {0, 1}},
			MaxCount: 2,
		},
		{
			Name:     Stable,
			Shape:    []Offset{{0, 0}, {1, 0}},
			MaxCount: 2,
		},
		{
			Name:     Tavern,
			Shape:    []Offset{{0, 0}},
			MaxCount: 2,
		},
	}
}
