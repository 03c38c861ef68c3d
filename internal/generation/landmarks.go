package generation

import "fmt"

// LandmarkType tags a landmark for renderer styling
type LandmarkType string

const (
	LandmarkStone LandmarkType = "stone"
	LandmarkWater LandmarkType = "water"
	LandmarkRock  LandmarkType = "rock"
	LandmarkTree  LandmarkType = "tree"
)

// Landmark is a fixed, named point of interest. Landmarks are authored,
// not generated: they consume no RNG draws and appear identically in
// every world built from the same config.
type Landmark struct {
	ID   string       `json:"id" yaml:"id"`
	Name string       `json:"name" yaml:"name"`
	Type LandmarkType `json:"type" yaml:"type"`
	X    float64      `json:"x" yaml:"x"`
	Z    float64      `json:"z" yaml:"z"`
}

// DefaultLandmarks returns the built-in registry
func DefaultLandmarks() []Landmark {
	return []Landmark{
		{ID: "pond", Name: "Still Pond", Type: LandmarkWater, X: 110, Z: 90},
		{ID: "monolith", Name: "The Monolith", Type: LandmarkStone, X: -120, Z: -60},
		{ID: "cairn", Name: "Wayfarer's Cairn", Type: LandmarkStone, X: -30, Z: -135},
		{ID: "split-rock", Name: "Split Rock", Type: LandmarkRock, X: 45, Z: -80},
		{ID: "elder-tree", Name: "Elder Tree", Type: LandmarkTree, X: -95, Z: 70},
	}
}

// ValidateLandmarks rejects blank or duplicate IDs. IDs are the stable
// keys renderers and the API look landmarks up by, so collisions are a
// config error rather than something to repair silently.
func ValidateLandmarks(marks []Landmark) error {
	seen := make(map[string]bool, len(marks))
	for i, m := range marks {
		if m.ID == "" {
			return fmt.Errorf("landmark %d (%q): empty id", i, m.Name)
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate landmark id %q", m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}
