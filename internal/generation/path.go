package generation

import "math"

// turnJitter scales the centered heading perturbation: a turning step
// shifts the heading by (draw - 0.5) * turnJitter radians, i.e. a value
// in [-0.6, 0.6).
const turnJitter = 1.2

// PathSpec describes one footpath to carve
type PathSpec struct {
	Start      Vec2    `json:"start" yaml:"start"`
	Steps      int     `json:"steps" yaml:"steps"`
	StepLen    float64 `json:"step_len" yaml:"step_len"`
	Width      float64 `json:"width" yaml:"width"`
	TurnChance float64 `json:"turn_chance" yaml:"turn_chance"`
}

// Path is a carved footpath: an ordered polyline with a display width
type Path struct {
	Width  float64 `json:"width"`
	Points []Vec2  `json:"points"`
}

// CarvePath walks a winding polyline from the spec's start point. The
// initial heading is one draw in [0, 2pi); each step first draws against
// TurnChance and, on a turning step, draws the perturbation, then advances
// StepLen along the heading. The result always has Steps+1 points, start
// included, and consecutive points are exactly StepLen apart. A path is
// free to wander outside the display bounds.
func CarvePath(rng *RNG, spec PathSpec) Path {
	heading := rng.Float(0, 2*math.Pi)

	points := make([]Vec2, 0, spec.Steps+1)
	points = append(points, spec.Start)

	x, z := spec.Start.X, spec.Start.Z
	for i := 0; i < spec.Steps; i++ {
		if rng.Next() < spec.TurnChance {
			heading += (rng.Next() - 0.5) * turnJitter
		}
		x += math.Cos(heading) * spec.StepLen
		z += math.Sin(heading) * spec.StepLen
		points = append(points, Vec2{x, z})
	}

	return Path{Width: spec.Width, Points: points}
}
