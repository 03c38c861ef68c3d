package generation

import "math"

// Vec2 is a point on the ground plane. Elevation is a renderer concern,
// so generated data carries x/z only.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns a new point offset by dx, dz
func (v Vec2) Add(dx, dz float64) Vec2 {
	return Vec2{v.X + dx, v.Z + dz}
}

// DistanceTo returns the euclidean distance to another point
func (v Vec2) DistanceTo(o Vec2) float64 {
	dx := o.X - v.X
	dz := o.Z - v.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Span is an inclusive numeric range for config knobs
type Span struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Valid reports whether the span is ordered and free of NaNs
func (s Span) Valid() bool {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return false
	}
	return s.Min <= s.Max
}

// ExclusionZone is a circle in which scatter candidates are thinned out,
// keeping footpath corridors and clearings visible.
type ExclusionZone struct {
	X      float64 `json:"x" yaml:"x"`
	Z      float64 `json:"z" yaml:"z"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Contains reports whether the point lies inside the circle. The boundary
// counts as inside.
func (e ExclusionZone) Contains(x, z float64) bool {
	dx := x - e.X
	dz := z - e.Z
	return dx*dx+dz*dz <= e.Radius*e.Radius
}
