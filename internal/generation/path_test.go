package generation

import (
	"math"
	"reflect"
	"testing"
)

func TestCarvePathPointCount(t *testing.T) {
	tests := []struct {
		steps int
		want  int
	}{
		{0, 1},
		{1, 2},
		{75, 76},
	}
	for _, tt := range tests {
		rng := NewRNG(42)
		p := CarvePath(rng, PathSpec{Start: Vec2{X: 10, Z: -5}, Steps: tt.steps, StepLen: 4, Width: 3, TurnChance: 0.4})
		if len(p.Points) != tt.want {
			t.Errorf("steps=%d: got %d points, want %d", tt.steps, len(p.Points), tt.want)
		}
	}
}

func TestCarvePathStartsAtStart(t *testing.T) {
	rng := NewRNG(99)
	start := Vec2{X: -140, Z: -120}
	p := CarvePath(rng, PathSpec{Start: start, Steps: 10, StepLen: 4, Width: 3, TurnChance: 0.4})
	if p.Points[0] != start {
		t.Errorf("first point = %v, want %v", p.Points[0], start)
	}
}

func TestCarvePathStepLength(t *testing.T) {
	rng := NewRNG(7)
	spec := PathSpec{Start: Vec2{}, Steps: 50, StepLen: 3.5, Width: 2, TurnChance: 0.6}
	p := CarvePath(rng, spec)

	for i := 1; i < len(p.Points); i++ {
		d := p.Points[i-1].DistanceTo(p.Points[i])
		if math.Abs(d-spec.StepLen) > 1e-9 {
			t.Fatalf("segment %d length %v, want %v", i, d, spec.StepLen)
		}
	}
}

func TestCarvePathDeterministic(t *testing.T) {
	spec := PathSpec{Start: Vec2{X: 130, Z: -100}, Steps: 75, StepLen: 4, Width: 4, TurnChance: 0.3}

	p1 := CarvePath(NewRNG(12345), spec)
	p2 := CarvePath(NewRNG(12345), spec)
	if !reflect.DeepEqual(p1, p2) {
		t.Error("same seed should carve identical paths")
	}

	p3 := CarvePath(NewRNG(54321), spec)
	if reflect.DeepEqual(p1.Points[1:], p3.Points[1:]) {
		t.Error("different seeds should carve different paths")
	}
}

func TestCarvePathZeroTurnChanceIsStraight(t *testing.T) {
	rng := NewRNG(11)
	p := CarvePath(rng, PathSpec{Start: Vec2{}, Steps: 20, StepLen: 2, Width: 1, TurnChance: 0})

	// With no turns every segment repeats the first one.
	dx := p.Points[1].X - p.Points[0].X
	dz := p.Points[1].Z - p.Points[0].Z
	for i := 2; i < len(p.Points); i++ {
		sx := p.Points[i].X - p.Points[i-1].X
		sz := p.Points[i].Z - p.Points[i-1].Z
		if math.Abs(sx-dx) > 1e-9 || math.Abs(sz-dz) > 1e-9 {
			t.Fatalf("segment %d deviates from straight line", i)
		}
	}
}

func TestCarvePathWidthPassedThrough(t *testing.T) {
	rng := NewRNG(3)
	p := CarvePath(rng, PathSpec{Start: Vec2{}, Steps: 1, StepLen: 1, Width: 5.5, TurnChance: 1})
	if p.Width != 5.5 {
		t.Errorf("width = %v, want 5.5", p.Width)
	}
}

func TestCarvePathZeroStepsStillDrawsHeading(t *testing.T) {
	// The heading draw happens before the step loop, so a zero-step carve
	// advances the generator exactly once.
	r1 := NewRNG(77)
	r2 := NewRNG(77)

	CarvePath(r1, PathSpec{Start: Vec2{}, Steps: 0, StepLen: 1, Width: 1, TurnChance: 0.5})
	r2.Next()

	if r1.Next() != r2.Next() {
		t.Error("zero-step carve should consume exactly one draw")
	}
}
