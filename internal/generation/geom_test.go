package generation

import (
	"math"
	"testing"
)

func TestExclusionZoneBoundaryInclusive(t *testing.T) {
	zone := ExclusionZone{X: 10, Z: 0, Radius: 5}

	tests := []struct {
		x, z float64
		want bool
	}{
		{10, 0, true},   // center
		{15, 0, true},   // exactly on the boundary
		{10, 5, true},   // boundary, other axis
		{15.1, 0, false},
		{-10, 0, false},
	}
	for _, tt := range tests {
		if got := zone.Contains(tt.x, tt.z); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestSpanValid(t *testing.T) {
	tests := []struct {
		span Span
		want bool
	}{
		{Span{Min: 1, Max: 2}, true},
		{Span{Min: 2, Max: 2}, true},
		{Span{Min: 3, Max: 2}, false},
		{Span{Min: math.NaN(), Max: 2}, false},
		{Span{Min: 1, Max: math.NaN()}, false},
	}
	for _, tt := range tests {
		if got := tt.span.Valid(); got != tt.want {
			t.Errorf("Span{%v, %v}.Valid() = %v, want %v", tt.span.Min, tt.span.Max, got, tt.want)
		}
	}
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{X: 0, Z: 0}
	b := Vec2{X: 3, Z: 4}
	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
}

func TestVec2Add(t *testing.T) {
	v := Vec2{X: 1, Z: -2}.Add(2, 3)
	if v.X != 3 || v.Z != 1 {
		t.Errorf("Add = %v, want {3 1}", v)
	}
}
