package generation

// ThemeType names a built-in color scheme
type ThemeType string

const (
	ThemeMeadow ThemeType = "meadow"
	ThemeAutumn ThemeType = "autumn"
	ThemeDusk   ThemeType = "dusk"
)

// Theme groups the colors a generated world draws from. Colors are CSS hex
// strings so both the 3D scene and the overhead map can use them directly.
type Theme struct {
	Type ThemeType

	// Base colors passed through to renderers
	Ground string
	Path   string

	// Patch colors, picked per ground patch
	PatchColors []string

	// Marker colors for overhead-map landmarks, keyed by landmark type
	MarkerColors map[LandmarkType]string
}

// GetTheme returns the theme for a type. Unknown or empty types fall back
// to the meadow theme.
func GetTheme(t ThemeType) Theme {
	switch t {
	case ThemeAutumn:
		return Theme{
			Type:        ThemeAutumn,
			Ground:      "#7a6a3f",
			Path:        "#a98f68",
			PatchColors: []string{"#9c6b30", "#b3823c", "#85542b", "#c29a50"},
			MarkerColors: map[LandmarkType]string{
				LandmarkStone: "#8d8d93",
				LandmarkWater: "#5b8dbf",
				LandmarkRock:  "#7a716b",
				LandmarkTree:  "#8a5a2b",
			},
		}

	case ThemeDusk:
		return Theme{
			Type:        ThemeDusk,
			Ground:      "#3c4252",
			Path:        "#6b6478",
			PatchColors: []string{"#4a5066", "#39404f", "#555c74", "#2f3542"},
			MarkerColors: map[LandmarkType]string{
				LandmarkStone: "#9a9aa6",
				LandmarkWater: "#4a6d94",
				LandmarkRock:  "#6f6a78",
				LandmarkTree:  "#2f4858",
			},
		}

	default: // meadow
		return Theme{
			Type:        ThemeMeadow,
			Ground:      "#4f7942",
			Path:        "#b8a172",
			PatchColors: []string{"#57864a", "#466e38", "#5f9052", "#3f6631"},
			MarkerColors: map[LandmarkType]string{
				LandmarkStone: "#8d8d93",
				LandmarkWater: "#5b8dbf",
				LandmarkRock:  "#7a716b",
				LandmarkTree:  "#2f5d31",
			},
		}
	}
}
