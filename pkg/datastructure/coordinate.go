package datastructure

// Coordinate is an immutable (row, col) pair of grid indices. Value
// semantics, equality by field comparison.
type Coordinate struct {
	row int
	col int
}

func NewCoordinate(row, col int) Coordinate {
	return Coordinate{row: row, col: col}
}

func (c Coordinate) GetRow() int {
	return c.row
}

func (c Coordinate) GetCol() int {
	return c.col
}

func (c Coordinate) Equal(other Coordinate) bool {
	return c.row == other.row && c.col == other.col
}
