package pkg

import (
	"math"
	"testing"
)

func TestSurfaceClassRuneRoundTrip(t *testing.T) {
	classes := []SurfaceClass{ROAD, PLAIN, FOREST, HILL, SWAMP, WATER}
	for _, sc := range classes {
		if got := GetSurfaceClass(sc.Rune()); got != sc {
			t.Fatalf("%v: rune %q mapped back to %v", sc, sc.Rune(), got)
		}
	}

	if GetSurfaceClass('#') != WATER {
		t.Fatal("'#' must parse as water")
	}
	if GetSurfaceClass('x') != UNKNOWN {
		t.Fatal("unmapped runes must parse as UNKNOWN")
	}
}

func TestSurfaceClassWeights(t *testing.T) {
	if ROAD.Weight() != MIN_SURFACE_WEIGHT {
		t.Fatalf("road weight %v must equal the minimum surface weight", ROAD.Weight())
	}
	if !math.IsInf(WATER.Weight(), 1) {
		t.Fatalf("water weight must be +Inf, got %v", WATER.Weight())
	}
	if WATER.Passable() || UNKNOWN.Passable() {
		t.Fatal("water and unknown cells must be impassable")
	}
	if !SWAMP.Passable() {
		t.Fatal("swamp is slow but passable")
	}

	prev := 0.0
	for _, sc := range []SurfaceClass{ROAD, PLAIN, FOREST, HILL, SWAMP} {
		if sc.Weight() <= prev {
			t.Fatalf("weights must increase across classes, %v broke the order", sc)
		}
		prev = sc.Weight()
	}
}
