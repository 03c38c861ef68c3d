package models

// MapOverlay is the overhead-map projection of a world. Coordinates are
// normalized to [0,1] on both axes with north (negative world z) at the
// top, so a canvas of any size can draw it without knowing world units.
// The overlay carries no player marker: the map shows the world, not
// whoever is looking at it.
type MapOverlay struct {
	Seed      string          `json:"seed"`
	Bounds    float64         `json:"bounds"`
	Padding   float64         `json:"padding"`
	Ground    string          `json:"ground"`
	Paths     []OverlayPath   `json:"paths"`
	Landmarks []OverlayMarker `json:"landmarks"`
}

// OverlayPath is a footpath polyline in map coordinates. Points outside
// the bounds window are clamped to its edge; width stays in world units
// for the client to scale.
type OverlayPath struct {
	Width  float64      `json:"width"`
	Color  string       `json:"color"`
	Points []OverlayVec `json:"points"`
}

// OverlayVec is a normalized map coordinate. U runs west to east, V runs
// north to south, both inside the padded [0,1] square.
type OverlayVec struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// OverlayMarker is a landmark marker in map coordinates
type OverlayMarker struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Color string  `json:"color"`
	U     float64 `json:"u"`
	V     float64 `json:"v"`
}
