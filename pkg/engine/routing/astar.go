package routing

import (
	"errors"
	"math"
	"sync/atomic"

	da "github.com/gridnav/gridrouter/pkg/datastructure"
	"github.com/gridnav/gridrouter/pkg/util"
	"go.uber.org/zap"
)

var (
	// ErrEndpointsNotSet start or goal was not set before ComputePath.
	ErrEndpointsNotSet = errors.New("path start and goal must be set before computing a path")
	// ErrSearchRunning ComputePath was re-entered while a search is in
	// progress on the same engine instance.
	ErrSearchRunning = errors.New("a search is already running on this engine")
)

// 4 orthogonal + 4 diagonal neighbor offsets
var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

const invalidNode int32 = -1

// searchNode is one discovered state. Nodes live in the engine's arena slice
// and reference their predecessor by arena index, so the predecessor chain is
// a tree rooted at the start node with stable O(1) handles.
type searchNode struct {
	loc           da.Coordinate
	predecessor   int32
	costFromStart float64
}

// AstarSearch runs heuristic-guided best-first search between two cells of a
// square terrain grid. One instance owns its visitation state and frontier
// exclusively; a finished search can be rerun after Reset. Not safe for
// concurrent use.
//
// The frontier tolerates duplicate entries per cell instead of decreasing
// keys in place: when a cheaper route to a frontier cell is found, a new
// entry is inserted and the stale one is discarded lazily when popped, the
// Settled check prevents reprocessing. Among equal estimated total costs the
// entry with the lower cost-from-start is extracted first.
type AstarSearch struct {
	terrain Terrain
	log     *zap.Logger

	state *SearchState
	pq    *da.MinHeap[int32]
	nodes []searchNode

	// best known cost from start per cell, row-major
	bestCost []float64

	start, goal       da.Coordinate
	startSet, goalSet bool
	heuristicWeight   float64

	endNode    int32
	searchSize int

	running atomic.Bool
}

func NewAstarSearch(terrain Terrain, log *zap.Logger) *AstarSearch {
	side := terrain.GridSide()
	us := &AstarSearch{
		terrain:  terrain,
		log:      log,
		state:    NewSearchState(side),
		pq:       da.NewFourAryHeap[int32](),
		nodes:    make([]searchNode, 0, side*side),
		bestCost: make([]float64, side*side),
		endNode:  invalidNode,
	}
	us.clearLabels()
	us.pq.Preallocate(side * side)
	return us
}

func (us *AstarSearch) clearLabels() {
	for i := range us.bestCost {
		us.bestCost[i] = math.Inf(1)
	}
}

func (us *AstarSearch) SetPathStart(c da.Coordinate) {
	us.start = c
	us.startSet = true
}

func (us *AstarSearch) SetPathEnd(c da.Coordinate) {
	us.goal = c
	us.goalSet = true
}

func (us *AstarSearch) GetPathStart() (da.Coordinate, bool) {
	return us.start, us.startSet
}

func (us *AstarSearch) GetPathEnd() (da.Coordinate, bool) {
	return us.goal, us.goalSet
}

// SetHeuristicWeight scale of the heuristic term. 0 degrades to uniform-cost
// search, 1 is admissible A* when the terrain distance never overestimates,
// >1 trades optimality for speed.
func (us *AstarSearch) SetHeuristicWeight(w float64) {
	us.heuristicWeight = w
}

func (us *AstarSearch) GetHeuristicWeight() float64 {
	return us.heuristicWeight
}

// Reset restore the engine for a fresh search: every cell back to Unvisited,
// frontier and node arena cleared. Required between two ComputePath calls on
// the same instance.
func (us *AstarSearch) Reset() {
	us.state.Reset()
	us.pq.Clear()
	us.pq.Preallocate(us.state.Side() * us.state.Side())
	us.nodes = us.nodes[:0]
	us.clearLabels()
	us.endNode = invalidNode
	us.searchSize = 0
}

func (us *AstarSearch) cellIndex(c da.Coordinate) int {
	return c.GetRow()*us.state.Side() + c.GetCol()
}

func (us *AstarSearch) fValue(c da.Coordinate, costFromStart float64) float64 {
	h := us.terrain.HeuristicDistance(
		float64(c.GetRow()), float64(c.GetCol()),
		float64(us.goal.GetRow()), float64(us.goal.GetCol()))
	return costFromStart + us.heuristicWeight*h
}

// ComputePath run one complete search from start to goal. The loop pops the
// lowest estimated-total-cost frontier entry, settles it, relaxes its up to 8
// in-bounds neighbors and re-admits improved ones, until the goal is settled
// or the frontier empties. An exhausted frontier is the defined "no path"
// outcome, not an error.
func (us *AstarSearch) ComputePath() error {
	if !us.running.CompareAndSwap(false, true) {
		return ErrSearchRunning
	}
	defer us.running.Store(false)

	if !us.startSet || !us.goalSet {
		return ErrEndpointsNotSet
	}

	startNode := us.addNode(us.start, invalidNode, 0)
	us.pq.Insert(da.NewPriorityQueueNodeWithTieRank(us.fValue(us.start, 0), 0, startNode))
	us.state.MarkFrontier(us.start)
	us.searchSize = 0

	for !us.pq.IsEmpty() {
		qn, _ := us.pq.ExtractMin()
		current := qn.GetItem()
		currentLoc := us.nodes[current].loc
		us.searchSize++

		if us.state.StatusOf(currentLoc) == Settled {
			// stale duplicate, a cheaper entry already settled this cell
			continue
		}

		us.state.MarkSettled(currentLoc)

		if currentLoc.Equal(us.goal) {
			us.endNode = current
			break
		}

		us.expand(current)
	}

	if us.log != nil {
		us.log.Debug("grid search finished",
			zap.Bool("found", us.PathFound()),
			zap.Int("searchSize", us.searchSize))
	}
	return nil
}

func (us *AstarSearch) addNode(loc da.Coordinate, predecessor int32, costFromStart float64) int32 {
	id := int32(len(us.nodes))
	us.nodes = append(us.nodes, searchNode{
		loc:           loc,
		predecessor:   predecessor,
		costFromStart: costFromStart,
	})
	us.bestCost[us.cellIndex(loc)] = costFromStart
	return id
}

// expand relax the up-to-8 neighbors of a just-settled node.
func (us *AstarSearch) expand(current int32) {
	currentLoc := us.nodes[current].loc
	currentCost := us.nodes[current].costFromStart
	maxIndex := us.state.Side() - 1

	for _, dir := range neighborOffsets {
		newRow := currentLoc.GetRow() + dir[0]
		newCol := currentLoc.GetCol() + dir[1]
		if newRow < 0 || newRow > maxIndex || newCol < 0 || newCol > maxIndex {
			continue
		}

		neighbor := da.NewCoordinate(newRow, newCol)
		status := us.state.StatusOf(neighbor)
		if status == Settled {
			continue
		}

		candidateCost := currentCost + us.terrain.TravelCost(currentLoc, neighbor)
		if math.IsInf(candidateCost, 1) {
			// impassable edge, the neighbor stays undiscovered on this route
			continue
		}

		i := us.cellIndex(neighbor)
		if status == Unvisited || da.Lt(candidateCost, us.bestCost[i]) {
			id := us.addNode(neighbor, current, candidateCost)
			us.pq.Insert(da.NewPriorityQueueNodeWithTieRank(
				us.fValue(neighbor, candidateCost), candidateCost, id))
			if status != Frontier {
				us.state.MarkFrontier(neighbor)
			}
		}
	}
}

// PathFound true iff the goal cell was settled by the last search.
func (us *AstarSearch) PathFound() bool {
	if !us.goalSet {
		return false
	}
	return us.state.StatusOf(us.goal) == Settled && us.endNode != invalidNode
}

// PathCost total travel cost of the reconstructed path, +Inf when no path
// was found. Recomputed fresh from the predecessor chain on every call.
func (us *AstarSearch) PathCost() float64 {
	if !us.PathFound() {
		return math.Inf(1)
	}
	_, cost := us.reconstructPath()
	return cost
}

// SearchSize number of frontier extractions of the last search, diagnostic.
func (us *AstarSearch) SearchSize() int {
	return us.searchSize
}

// WasVisited true iff the cell was discovered by the last search, for
// visualizing the explored area.
func (us *AstarSearch) WasVisited(c da.Coordinate) bool {
	return us.state.StatusOf(c) != Unvisited
}

// SolutionPath ordered start-to-goal coordinates, nil when no path exists.
func (us *AstarSearch) SolutionPath() []da.Coordinate {
	if !us.PathFound() {
		return nil
	}
	path, _ := us.reconstructPath()
	return path
}

// reconstructPath walk the predecessor chain backward from the terminal node,
// summing the step costs, then reverse so the path runs start to goal.
func (us *AstarSearch) reconstructPath() ([]da.Coordinate, float64) {
	path := make([]da.Coordinate, 0)
	cost := 0.0

	for cur := us.endNode; cur != invalidNode; cur = us.nodes[cur].predecessor {
		path = append(path, us.nodes[cur].loc)
		if pred := us.nodes[cur].predecessor; pred != invalidNode {
			cost += us.terrain.TravelCost(us.nodes[pred].loc, us.nodes[cur].loc)
		}
	}

	return util.ReverseG(path), cost
}
