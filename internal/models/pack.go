package models

// Pack is a world data pack: extra landmarks and an optional patch color
// palette. Packs are fetched into the data directory and merged into the
// generation config when the server loads or reloads.
type Pack struct {
	Name        string         `json:"name" yaml:"name"`
	Version     string         `json:"version,omitempty" yaml:"version,omitempty"`
	Landmarks   []PackLandmark `json:"landmarks,omitempty" yaml:"landmarks,omitempty"`
	PatchColors []string       `json:"patch_colors,omitempty" yaml:"patch_colors,omitempty"`
}

// PackLandmark is one landmark entry in a pack document
type PackLandmark struct {
	ID   string  `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Type string  `json:"type" yaml:"type"`
	X    float64 `json:"x" yaml:"x"`
	Z    float64 `json:"z" yaml:"z"`
}
