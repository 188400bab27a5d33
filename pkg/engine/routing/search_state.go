package routing

import (
	da "github.com/gridnav/gridrouter/pkg/datastructure"
	"github.com/gridnav/gridrouter/pkg/util"
)

// enum of cell_status
type CellStatus uint8

const (
	Unvisited CellStatus = iota
	Frontier
	Settled
)

// SearchState is the authoritative per-cell visitation record of one search:
// which cells are undiscovered, pending in the frontier, or finalized. Once a
// cell is Settled it stays Settled for the remainder of the search. Owned
// exclusively by one search engine instance.
type SearchState struct {
	side   int
	status []CellStatus // row-major
}

func NewSearchState(side int) *SearchState {
	return &SearchState{
		side:   side,
		status: make([]CellStatus, side*side),
	}
}

func (ss *SearchState) Side() int {
	return ss.side
}

// out-of-range coordinates indicate a neighbor-generation bug in the caller,
// not a recoverable condition
func (ss *SearchState) assertInBounds(c da.Coordinate) {
	util.AssertPanic(c.GetRow() >= 0 && c.GetRow() < ss.side &&
		c.GetCol() >= 0 && c.GetCol() < ss.side,
		"search state: coordinate outside grid bounds")
}

func (ss *SearchState) StatusOf(c da.Coordinate) CellStatus {
	ss.assertInBounds(c)
	return ss.status[c.GetRow()*ss.side+c.GetCol()]
}

// MarkFrontier transition Unvisited -> Frontier. Settled cells are never
// re-admitted, the caller checks status first.
func (ss *SearchState) MarkFrontier(c da.Coordinate) {
	ss.assertInBounds(c)
	util.AssertPanic(ss.status[c.GetRow()*ss.side+c.GetCol()] != Settled,
		"search state: settled cell cannot rejoin the frontier")
	ss.status[c.GetRow()*ss.side+c.GetCol()] = Frontier
}

// MarkSettled transition Frontier -> Settled. Terminal for the cell.
func (ss *SearchState) MarkSettled(c da.Coordinate) {
	ss.assertInBounds(c)
	ss.status[c.GetRow()*ss.side+c.GetCol()] = Settled
}

// Reset restore every cell to Unvisited.
func (ss *SearchState) Reset() {
	for i := range ss.status {
		ss.status[i] = Unvisited
	}
}
