package generation

// ScatterSpec describes one uniform scatter pass
type ScatterSpec struct {
	Count      int
	Extent     float64
	Scale      Span
	ThinChance float64
	Exclusions []ExclusionZone
}

// Instance is one placed scatter element
type Instance struct {
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
	Scale float64 `json:"scale"`
}

// Scatter places up to Count instances uniformly over the square
// [-Extent/2, Extent/2) on both axes. Each candidate draws x then z; a
// candidate inside any exclusion circle (boundary inclusive) draws once
// more and is dropped when that draw is under ThinChance. Survivors draw
// their scale from the configured span.
//
// The placed count varies with the seed; callers must not expect Count
// instances back. Skipped candidates still consumed their draws, so two
// scatters with the same seed but different exclusions diverge from the
// first thinned candidate onward.
func Scatter(rng *RNG, spec ScatterSpec) []Instance {
	half := spec.Extent / 2

	out := make([]Instance, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		x := rng.Float(-half, half)
		z := rng.Float(-half, half)

		if insideAny(spec.Exclusions, x, z) && rng.Next() < spec.ThinChance {
			continue
		}

		out = append(out, Instance{
			X:     x,
			Z:     z,
			Scale: rng.Float(spec.Scale.Min, spec.Scale.Max),
		})
	}
	return out
}

func insideAny(zones []ExclusionZone, x, z float64) bool {
	for _, zone := range zones {
		if zone.Contains(x, z) {
			return true
		}
	}
	return false
}
