package routing

import (
	"errors"
	"math"
	"testing"

	da "github.com/gridnav/gridrouter/pkg/datastructure"
	"github.com/gridnav/gridrouter/pkg/geo"
	"github.com/gridnav/gridrouter/pkg/terrain"
)

// uniformTerrain every step between adjacent cells costs 1, diagonals
// included, with a plain Euclidean heuristic.
type uniformTerrain struct {
	side int
}

func (t uniformTerrain) GridSide() int {
	return t.side
}

func (t uniformTerrain) TravelCost(from, to da.Coordinate) float64 {
	return 1
}

func (t uniformTerrain) HeuristicDistance(rowA, colA, rowB, colB float64) float64 {
	return geo.EuclideanDistance(rowA, colA, rowB, colB)
}

// blockedTerrain every edge is impassable
type blockedTerrain struct {
	side int
}

func (t blockedTerrain) GridSide() int {
	return t.side
}

func (t blockedTerrain) TravelCost(from, to da.Coordinate) float64 {
	return math.Inf(1)
}

func (t blockedTerrain) HeuristicDistance(rowA, colA, rowB, colB float64) float64 {
	return geo.EuclideanDistance(rowA, colA, rowB, colB)
}

func newSearch(t *testing.T, terr Terrain, start, goal da.Coordinate, weight float64) *AstarSearch {
	t.Helper()
	search := NewAstarSearch(terr, nil)
	search.SetPathStart(start)
	search.SetPathEnd(goal)
	search.SetHeuristicWeight(weight)
	return search
}

func TestDiagonalPathAcrossUniformGrid(t *testing.T) {
	search := newSearch(t, uniformTerrain{side: 3},
		da.NewCoordinate(0, 0), da.NewCoordinate(2, 2), 1.0)

	if err := search.ComputePath(); err != nil {
		t.Fatalf("err: %v", err)
	}

	if !search.PathFound() {
		t.Fatal("expected a path on a uniform 3x3 grid")
	}
	if !da.Eq(search.PathCost(), 2.0) {
		t.Fatalf("expected path cost 2.0, got %v", search.PathCost())
	}

	want := []da.Coordinate{
		da.NewCoordinate(0, 0),
		da.NewCoordinate(1, 1),
		da.NewCoordinate(2, 2),
	}
	got := search.SolutionPath()
	if len(got) != len(want) {
		t.Fatalf("expected path %v, got %v", want, got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("path step %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if !search.WasVisited(da.NewCoordinate(0, 0)) {
		t.Fatal("start must always be visited")
	}
	if search.SearchSize() == 0 {
		t.Fatal("search size must count frontier extractions")
	}
}

func TestStartEqualsGoal(t *testing.T) {
	start := da.NewCoordinate(1, 1)
	search := newSearch(t, uniformTerrain{side: 3}, start, start, 1.0)

	if err := search.ComputePath(); err != nil {
		t.Fatalf("err: %v", err)
	}

	if !search.PathFound() {
		t.Fatal("expected the trivial path")
	}
	if !da.Eq(search.PathCost(), 0) {
		t.Fatalf("expected cost 0, got %v", search.PathCost())
	}
	path := search.SolutionPath()
	if len(path) != 1 || !path[0].Equal(start) {
		t.Fatalf("expected single-element path [%v], got %v", start, path)
	}
}

func TestUnreachableGoal(t *testing.T) {
	search := newSearch(t, blockedTerrain{side: 3},
		da.NewCoordinate(0, 0), da.NewCoordinate(2, 2), 1.0)

	if err := search.ComputePath(); err != nil {
		t.Fatalf("err: %v", err)
	}

	if search.PathFound() {
		t.Fatal("no path should exist when every edge is impassable")
	}
	if !math.IsInf(search.PathCost(), 1) {
		t.Fatalf("expected +Inf path cost, got %v", search.PathCost())
	}
	if search.SolutionPath() != nil {
		t.Fatalf("expected nil solution path, got %v", search.SolutionPath())
	}
	if !search.WasVisited(da.NewCoordinate(0, 0)) {
		t.Fatal("start must be visited even when no path exists")
	}
}

func TestComputePathWithoutEndpoints(t *testing.T) {
	search := NewAstarSearch(uniformTerrain{side: 3}, nil)

	if err := search.ComputePath(); !errors.Is(err, ErrEndpointsNotSet) {
		t.Fatalf("expected ErrEndpointsNotSet, got %v", err)
	}

	search.SetPathStart(da.NewCoordinate(0, 0))
	if err := search.ComputePath(); !errors.Is(err, ErrEndpointsNotSet) {
		t.Fatalf("expected ErrEndpointsNotSet with only a start set, got %v", err)
	}
}

// exhaustiveShortestPath Bellman-Ford style relaxation over every
// 8-neighbor edge, the reference answer for uniform-cost correctness.
func exhaustiveShortestPath(terr Terrain, start, goal da.Coordinate) float64 {
	side := terr.GridSide()
	dist := make([]float64, side*side)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start.GetRow()*side+start.GetCol()] = 0

	for iter := 0; iter < side*side; iter++ {
		changed := false
		for row := 0; row < side; row++ {
			for col := 0; col < side; col++ {
				from := da.NewCoordinate(row, col)
				if math.IsInf(dist[row*side+col], 1) {
					continue
				}
				for _, dir := range neighborOffsets {
					nr, nc := row+dir[0], col+dir[1]
					if nr < 0 || nr >= side || nc < 0 || nc >= side {
						continue
					}
					cand := dist[row*side+col] + terr.TravelCost(from, da.NewCoordinate(nr, nc))
					if da.Lt(cand, dist[nr*side+nc]) {
						dist[nr*side+nc] = cand
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist[goal.GetRow()*side+goal.GetCol()]
}

func TestUniformCostMatchesExhaustiveSearch(t *testing.T) {
	terr, err := terrain.ParseGridMap([]string{
		"..f.sh",
		".w.f..",
		"r.w..h",
		".rw.s.",
		"r..f..",
		".r...r",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	queries := []struct {
		start, goal da.Coordinate
	}{
		{da.NewCoordinate(0, 0), da.NewCoordinate(5, 5)},
		{da.NewCoordinate(5, 0), da.NewCoordinate(0, 5)},
		{da.NewCoordinate(2, 0), da.NewCoordinate(2, 5)},
		{da.NewCoordinate(4, 4), da.NewCoordinate(0, 0)},
	}

	for _, q := range queries {
		search := newSearch(t, terr, q.start, q.goal, 0)
		if err := search.ComputePath(); err != nil {
			t.Fatalf("err: %v", err)
		}

		expected := exhaustiveShortestPath(terr, q.start, q.goal)
		if !search.PathFound() {
			t.Fatalf("%v -> %v: expected a path", q.start, q.goal)
		}
		if !da.Eq(search.PathCost(), expected) {
			t.Fatalf("%v -> %v: expected cost %v, got %v", q.start, q.goal, expected, search.PathCost())
		}
	}
}

func TestReconstructionCostRoundTrip(t *testing.T) {
	terr, err := terrain.ParseGridMap([]string{
		"..f.sh",
		".w.f..",
		"r.w..h",
		".rw.s.",
		"r..f..",
		".r...r",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	search := newSearch(t, terr, da.NewCoordinate(0, 0), da.NewCoordinate(5, 5), 1.0)
	if err := search.ComputePath(); err != nil {
		t.Fatalf("err: %v", err)
	}
	if !search.PathFound() {
		t.Fatal("expected a path")
	}

	path := search.SolutionPath()

	forward := 0.0
	for i := 1; i < len(path); i++ {
		forward += terr.TravelCost(path[i-1], path[i])
	}
	if !da.Eq(forward, search.PathCost()) {
		t.Fatalf("pairwise travel cost sum %v != PathCost %v", forward, search.PathCost())
	}

	// walking the reversed path accumulates the same total
	backward := 0.0
	for i := len(path) - 1; i > 0; i-- {
		backward += terr.TravelCost(path[i], path[i-1])
	}
	if !da.Eq(backward, forward) {
		t.Fatalf("reversed walk cost %v != forward walk cost %v", backward, forward)
	}
}

func TestRerunAfterReset(t *testing.T) {
	terr := uniformTerrain{side: 5}
	search := newSearch(t, terr, da.NewCoordinate(0, 0), da.NewCoordinate(4, 4), 1.0)

	if err := search.ComputePath(); err != nil {
		t.Fatalf("err: %v", err)
	}
	if !da.Eq(search.PathCost(), 4.0) {
		t.Fatalf("first run: expected cost 4, got %v", search.PathCost())
	}

	search.Reset()
	if search.PathFound() {
		t.Fatal("reset must clear the previous outcome")
	}
	if search.WasVisited(da.NewCoordinate(0, 0)) {
		t.Fatal("reset must clear visitation state")
	}

	search.SetPathEnd(da.NewCoordinate(0, 4))
	if err := search.ComputePath(); err != nil {
		t.Fatalf("err: %v", err)
	}
	if !da.Eq(search.PathCost(), 4.0) {
		t.Fatalf("second run: expected cost 4, got %v", search.PathCost())
	}
}

// recursiveTerrain calls back into its own engine from the middle of a
// relaxation, to exercise the re-entrancy guard.
type recursiveTerrain struct {
	side     int
	search   *AstarSearch
	innerErr error
	called   bool
}

func (t *recursiveTerrain) GridSide() int {
	return t.side
}

func (t *recursiveTerrain) TravelCost(from, to da.Coordinate) float64 {
	if !t.called && t.search != nil {
		t.called = true
		t.innerErr = t.search.ComputePath()
	}
	return 1
}

func (t *recursiveTerrain) HeuristicDistance(rowA, colA, rowB, colB float64) float64 {
	return geo.EuclideanDistance(rowA, colA, rowB, colB)
}

func TestReentrantComputePath(t *testing.T) {
	terr := &recursiveTerrain{side: 3}
	search := NewAstarSearch(terr, nil)
	terr.search = search

	search.SetPathStart(da.NewCoordinate(0, 0))
	search.SetPathEnd(da.NewCoordinate(2, 2))
	search.SetHeuristicWeight(1.0)

	if err := search.ComputePath(); err != nil {
		t.Fatalf("err: %v", err)
	}

	if !terr.called {
		t.Fatal("terrain never called back into the engine")
	}
	if !errors.Is(terr.innerErr, ErrSearchRunning) {
		t.Fatalf("expected ErrSearchRunning from the nested call, got %v", terr.innerErr)
	}

	// the nested rejection must not disturb the outer search
	if !search.PathFound() {
		t.Fatal("outer search must still complete")
	}
	if !da.Eq(search.PathCost(), 2.0) {
		t.Fatalf("outer search: expected cost 2.0, got %v", search.PathCost())
	}
}

func TestGreedierWeightExpandsNoMoreNodes(t *testing.T) {
	terr := uniformTerrain{side: 12}
	start, goal := da.NewCoordinate(0, 0), da.NewCoordinate(11, 11)

	uniformCost := newSearch(t, terr, start, goal, 0)
	if err := uniformCost.ComputePath(); err != nil {
		t.Fatalf("err: %v", err)
	}

	greedy := newSearch(t, terr, start, goal, 2.0)
	if err := greedy.ComputePath(); err != nil {
		t.Fatalf("err: %v", err)
	}

	if greedy.SearchSize() > uniformCost.SearchSize() {
		t.Fatalf("greedy search expanded %d nodes, uniform-cost %d",
			greedy.SearchSize(), uniformCost.SearchSize())
	}
	if !greedy.PathFound() || !uniformCost.PathFound() {
		t.Fatal("both searches must reach the goal")
	}
}
