package generation

import (
	"fmt"
	"math"
)

// Config is the full input to world generation. Identical configs produce
// identical worlds: every knob either feeds the RNG draw sequence or is
// copied through untouched.
type Config struct {
	Seed Seed `json:"seed" yaml:"seed"`

	// WorldSize is the square extent patches and trees are scattered
	// over. Bounds is the half-extent of the overhead map window. The two
	// are independent on purpose: the map is a window onto the world, not
	// a fence around generation.
	WorldSize float64 `json:"world_size" yaml:"world_size"`
	Bounds    float64 `json:"bounds" yaml:"bounds"`

	Theme ThemeType `json:"theme,omitempty" yaml:"theme,omitempty"`

	// Ground patches
	PatchCount  int      `json:"patch_count" yaml:"patch_count"`
	PatchRadius Span     `json:"patch_radius" yaml:"patch_radius"`
	PatchColors []string `json:"patch_colors,omitempty" yaml:"patch_colors,omitempty"` // empty: theme colors

	// Footpaths, carved in configured order
	Paths []PathSpec `json:"paths" yaml:"paths"`

	// Tree scatter
	TreeCount  int             `json:"tree_count" yaml:"tree_count"`
	TreeScale  Span            `json:"tree_scale" yaml:"tree_scale"`
	ThinChance float64         `json:"thin_chance" yaml:"thin_chance"`
	Exclusions []ExclusionZone `json:"exclusions,omitempty" yaml:"exclusions,omitempty"`

	// Landmark registry override; empty means DefaultLandmarks
	Landmarks []Landmark `json:"landmarks,omitempty" yaml:"landmarks,omitempty"`
}

// EffectiveLandmarks returns the registry this config builds with: the
// configured list, or DefaultLandmarks when none is set.
func (c Config) EffectiveLandmarks() []Landmark {
	if len(c.Landmarks) > 0 {
		return c.Landmarks
	}
	return DefaultLandmarks()
}

// DefaultConfig returns the stock glade: three winding footpaths, a
// meadow palette, and the built-in landmark registry.
func DefaultConfig() Config {
	return Config{
		Seed:        SeedFromString(DefaultSeed),
		WorldSize:   400,
		Bounds:      150,
		Theme:       ThemeMeadow,
		PatchCount:  40,
		PatchRadius: Span{Min: 2, Max: 8},
		Paths: []PathSpec{
			{Start: Vec2{X: -140, Z: -120}, Steps: 75, StepLen: 4, Width: 5, TurnChance: 0.4},
			{Start: Vec2{X: 130, Z: -100}, Steps: 75, StepLen: 4, Width: 4, TurnChance: 0.3},
			{Start: Vec2{X: -60, Z: 140}, Steps: 75, StepLen: 3.5, Width: 3.5, TurnChance: 0.5},
		},
		TreeCount:  110,
		TreeScale:  Span{Min: 0.7, Max: 1.4},
		ThinChance: 0.85,
		Exclusions: []ExclusionZone{
			{X: 0, Z: 0, Radius: 45},
			{X: -90, Z: -60, Radius: 40},
			{X: 80, Z: 40, Radius: 40},
			{X: -20, Z: 110, Radius: 35},
		},
	}
}

// World is the complete generated output. It is plain data with stable
// JSON keys; renderers consume it read-only and nothing in it changes
// after Build returns.
type World struct {
	Seed      uint32       `json:"seed"`
	Bounds    float64      `json:"bounds"`
	Palette   WorldPalette `json:"palette"`
	Patches   []Patch      `json:"patches"`
	Paths     []Path       `json:"paths"`
	Trees     []Instance   `json:"trees"`
	Landmarks []Landmark   `json:"landmarks"`
}

// WorldPalette carries the base colors renderers draw ground and paths with
type WorldPalette struct {
	Ground string `json:"ground"`
	Path   string `json:"path"`
}

// Patch is a ground color blotch
type Patch struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// WorldBuilder generates a World from configuration
type WorldBuilder struct {
	cfg   Config
	theme Theme
	rng   *RNG
}

// NewWorldBuilder creates a builder for the given config
func NewWorldBuilder(cfg Config) *WorldBuilder {
	return &WorldBuilder{
		cfg:   cfg,
		theme: GetTheme(cfg.Theme),
	}
}

// BuildWorld is shorthand for NewWorldBuilder(cfg).Build()
func BuildWorld(cfg Config) (*World, error) {
	return NewWorldBuilder(cfg).Build()
}

// Build produces the world. The pass order below is fixed: patches, then
// paths in configured order, then the tree scatter, then landmarks.
// Reordering passes would silently shift every later draw, so treat the
// sequence as part of the output format.
func (wb *WorldBuilder) Build() (*World, error) {
	// 1. Validate everything up front. A bad config fails before the
	// first RNG draw, so no partial world escapes.
	if err := wb.validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}

	// 2. Seed the generator
	seed := wb.cfg.Seed.Resolve()
	wb.rng = NewRNG(seed)

	// 3. Ground patches
	patches := wb.buildPatches()

	// 4. Footpaths
	paths := wb.carvePaths()

	// 5. Tree scatter, thinned inside the exclusion corridors
	trees := wb.scatterTrees()

	// 6. Landmarks (authored, no draws)
	landmarks := wb.buildLandmarks()

	return &World{
		Seed:   seed,
		Bounds: wb.cfg.Bounds,
		Palette: WorldPalette{
			Ground: wb.theme.Ground,
			Path:   wb.theme.Path,
		},
		Patches:   patches,
		Paths:     paths,
		Trees:     trees,
		Landmarks: landmarks,
	}, nil
}

func (wb *WorldBuilder) validate() error {
	cfg := wb.cfg

	// Negated comparisons so NaN fails alongside zero and negative values.
	if !(cfg.WorldSize > 0) {
		return fmt.Errorf("world_size must be positive, got %v", cfg.WorldSize)
	}
	if !(cfg.Bounds > 0) {
		return fmt.Errorf("bounds must be positive, got %v", cfg.Bounds)
	}

	if cfg.PatchCount < 0 {
		return fmt.Errorf("patch_count must be non-negative, got %d", cfg.PatchCount)
	}
	if !cfg.PatchRadius.Valid() || cfg.PatchRadius.Min < 0 {
		return fmt.Errorf("patch_radius span %v..%v is invalid", cfg.PatchRadius.Min, cfg.PatchRadius.Max)
	}

	for i, p := range cfg.Paths {
		if p.Steps < 0 {
			return fmt.Errorf("path %d: steps must be non-negative, got %d", i, p.Steps)
		}
		if !(p.StepLen > 0) {
			return fmt.Errorf("path %d: step_len must be positive, got %v", i, p.StepLen)
		}
		if !(p.Width > 0) {
			return fmt.Errorf("path %d: width must be positive, got %v", i, p.Width)
		}
		if !chance(p.TurnChance) {
			return fmt.Errorf("path %d: turn_chance must be in [0,1], got %v", i, p.TurnChance)
		}
		if math.IsNaN(p.Start.X) || math.IsNaN(p.Start.Z) {
			return fmt.Errorf("path %d: start point is NaN", i)
		}
	}

	if cfg.TreeCount < 0 {
		return fmt.Errorf("tree_count must be non-negative, got %d", cfg.TreeCount)
	}
	if !cfg.TreeScale.Valid() || cfg.TreeScale.Min < 0 {
		return fmt.Errorf("tree_scale span %v..%v is invalid", cfg.TreeScale.Min, cfg.TreeScale.Max)
	}
	if !chance(cfg.ThinChance) {
		return fmt.Errorf("thin_chance must be in [0,1], got %v", cfg.ThinChance)
	}

	for i, e := range cfg.Exclusions {
		if math.IsNaN(e.X) || math.IsNaN(e.Z) || !(e.Radius >= 0) {
			return fmt.Errorf("exclusion %d: bad circle (%v, %v, r=%v)", i, e.X, e.Z, e.Radius)
		}
	}

	if err := ValidateLandmarks(wb.landmarkSource()); err != nil {
		return err
	}

	return nil
}

// chance reports whether v is a usable probability
func chance(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

func (wb *WorldBuilder) buildPatches() []Patch {
	half := wb.cfg.WorldSize / 2
	colors := wb.patchColors()

	// Draw order per patch: x, z, radius, color.
	patches := make([]Patch, 0, wb.cfg.PatchCount)
	for i := 0; i < wb.cfg.PatchCount; i++ {
		patches = append(patches, Patch{
			X:      wb.rng.Float(-half, half),
			Z:      wb.rng.Float(-half, half),
			Radius: wb.rng.Float(wb.cfg.PatchRadius.Min, wb.cfg.PatchRadius.Max),
			Color:  wb.rng.Pick(colors),
		})
	}
	return patches
}

func (wb *WorldBuilder) carvePaths() []Path {
	paths := make([]Path, 0, len(wb.cfg.Paths))
	for _, spec := range wb.cfg.Paths {
		paths = append(paths, CarvePath(wb.rng, spec))
	}
	return paths
}

func (wb *WorldBuilder) scatterTrees() []Instance {
	return Scatter(wb.rng, ScatterSpec{
		Count:      wb.cfg.TreeCount,
		Extent:     wb.cfg.WorldSize,
		Scale:      wb.cfg.TreeScale,
		ThinChance: wb.cfg.ThinChance,
		Exclusions: wb.cfg.Exclusions,
	})
}

func (wb *WorldBuilder) buildLandmarks() []Landmark {
	src := wb.landmarkSource()
	out := make([]Landmark, len(src))
	copy(out, src)
	return out
}

func (wb *WorldBuilder) landmarkSource() []Landmark {
	return wb.cfg.EffectiveLandmarks()
}

func (wb *WorldBuilder) patchColors() []string {
	if len(wb.cfg.PatchColors) > 0 {
		return wb.cfg.PatchColors
	}
	return wb.theme.PatchColors
}
