package services

import (
	"glade.dev/internal/generation"
	"glade.dev/internal/models"
)

// overlayPadding is the fraction of the map square kept clear around the
// drawn content on every side.
const overlayPadding = 0.08

// MapService projects generated worlds into overhead-map overlays. It is
// a pure adapter: it reads worlds and never feeds anything back into
// generation.
type MapService struct{}

// NewMapService creates a new MapService
func NewMapService() *MapService {
	return &MapService{}
}

// Overlay projects a world into normalized map coordinates. Only bounds,
// paths, and landmarks feed the map; patches and trees are scene detail
// the overhead view leaves out, and there is no player to draw.
func (s *MapService) Overlay(env *models.WorldEnvelope, theme generation.Theme) *models.MapOverlay {
	w := env.World

	overlay := &models.MapOverlay{
		Seed:      env.Seed,
		Bounds:    w.Bounds,
		Padding:   overlayPadding,
		Ground:    w.Palette.Ground,
		Paths:     make([]models.OverlayPath, 0, len(w.Paths)),
		Landmarks: make([]models.OverlayMarker, 0, len(w.Landmarks)),
	}

	for _, p := range w.Paths {
		op := models.OverlayPath{
			Width:  p.Width,
			Color:  w.Palette.Path,
			Points: make([]models.OverlayVec, 0, len(p.Points)),
		}
		for _, pt := range p.Points {
			op.Points = append(op.Points, project(pt.X, pt.Z, w.Bounds))
		}
		overlay.Paths = append(overlay.Paths, op)
	}

	for _, m := range w.Landmarks {
		vec := project(m.X, m.Z, w.Bounds)
		overlay.Landmarks = append(overlay.Landmarks, models.OverlayMarker{
			ID:    m.ID,
			Name:  m.Name,
			Type:  string(m.Type),
			Color: theme.MarkerColors[m.Type],
			U:     vec.U,
			V:     vec.V,
		})
	}

	return overlay
}

// project maps a world x/z onto the padded unit square. The map window is
// the [-bounds, bounds] square; paths may wander past it, so anything
// outside clamps to the window edge.
func project(x, z, bounds float64) models.OverlayVec {
	u := clamp01((x + bounds) / (2 * bounds))
	v := clamp01((z + bounds) / (2 * bounds))

	span := 1 - 2*overlayPadding
	return models.OverlayVec{
		U: overlayPadding + u*span,
		V: overlayPadding + v*span,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
