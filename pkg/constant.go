package pkg

import "math"

// enum of surface_class
type SurfaceClass uint8

const (
	ROAD SurfaceClass = iota
	PLAIN
	FOREST
	HILL
	SWAMP
	WATER
	UNKNOWN
)

// movement weight per surface class, multiplied by the geometric step length
// when crossing between two adjacent cells. WATER is impassable.
func (sc SurfaceClass) Weight() float64 {
	switch sc {
	case ROAD:
		return 0.5
	case PLAIN:
		return 1.0
	case FOREST:
		return 2.0
	case HILL:
		return 3.0
	case SWAMP:
		return 5.0
	}
	return INF_WEIGHT
}

func (sc SurfaceClass) Passable() bool {
	return sc != WATER && sc != UNKNOWN
}

// GetSurfaceClass map format rune -> surface class
func GetSurfaceClass(cell rune) SurfaceClass {
	switch cell {
	case 'r':
		return ROAD
	case '.':
		return PLAIN
	case 'f':
		return FOREST
	case 'h':
		return HILL
	case 's':
		return SWAMP
	case 'w', '#':
		return WATER
	}
	return UNKNOWN
}

func (sc SurfaceClass) Rune() rune {
	switch sc {
	case ROAD:
		return 'r'
	case PLAIN:
		return '.'
	case FOREST:
		return 'f'
	case HILL:
		return 'h'
	case SWAMP:
		return 's'
	case WATER:
		return 'w'
	}
	return '?'
}

var INF_WEIGHT = math.Inf(1)

const (
	MIN_SURFACE_WEIGHT = 0.5 // ROAD, cheapest passable class

	DEBUG = false
)
