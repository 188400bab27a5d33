package controllers

import (
	da "github.com/gridnav/gridrouter/pkg/datastructure"
	"github.com/gridnav/gridrouter/pkg/http/usecases"
)

type routeRequest struct {
	StartRow int     `json:"start_row" validate:"gte=0"`
	StartCol int     `json:"start_col" validate:"gte=0"`
	GoalRow  int     `json:"goal_row" validate:"gte=0"`
	GoalCol  int     `json:"goal_col" validate:"gte=0"`
	Weight   float64 `json:"weight" validate:"gte=0"`
}

type cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func newCells(coords []da.Coordinate) []cell {
	cells := make([]cell, 0, len(coords))
	for _, c := range coords {
		cells = append(cells, cell{Row: c.GetRow(), Col: c.GetCol()})
	}
	return cells
}

type routeResponse struct {
	Path       []cell  `json:"path"`
	Polyline   string  `json:"polyline"`
	Cost       float64 `json:"cost"`
	SearchSize int     `json:"search_size"`
	Start      cell    `json:"start"`
	Goal       cell    `json:"goal"`
	Visited    []cell  `json:"visited,omitempty"`
}

func newRouteResponse(res *usecases.RouteResult) routeResponse {
	resp := routeResponse{
		Path:       newCells(res.Path),
		Polyline:   res.Polyline,
		Cost:       res.Cost,
		SearchSize: res.SearchSize,
		Start:      cell{Row: res.SnappedStart.GetRow(), Col: res.SnappedStart.GetCol()},
		Goal:       cell{Row: res.SnappedGoal.GetRow(), Col: res.SnappedGoal.GetCol()},
	}
	if len(res.Visited) != 0 {
		resp.Visited = newCells(res.Visited)
	}
	return resp
}

type terrainResponse struct {
	GridSide int      `json:"grid_side"`
	Rows     []string `json:"rows"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
