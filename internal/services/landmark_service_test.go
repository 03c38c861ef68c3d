package services

import (
	"errors"
	"testing"

	"glade.dev/internal/generation"
)

func TestLandmarkServiceAll(t *testing.T) {
	svc := NewLandmarkService(NewWorldService(generation.DefaultConfig(), testLogger()))

	got := svc.All()
	want := generation.DefaultLandmarks()
	if len(got) != len(want) {
		t.Fatalf("got %d landmarks, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].ID != want[i].ID {
			t.Errorf("landmark %d = %q, want %q (authored order)", i, got[i].ID, want[i].ID)
		}
	}
}

func TestLandmarkServiceByID(t *testing.T) {
	svc := NewLandmarkService(NewWorldService(generation.DefaultConfig(), testLogger()))

	pond, err := svc.ByID("pond")
	if err != nil {
		t.Fatalf("ByID(pond): %v", err)
	}
	if pond.X != 110 || pond.Z != 90 {
		t.Errorf("pond at (%v, %v), want (110, 90)", pond.X, pond.Z)
	}

	_, err = svc.ByID("no-such-place")
	if !errors.Is(err, ErrLandmarkNotFound) {
		t.Errorf("unknown id: err = %v, want ErrLandmarkNotFound", err)
	}
}

func TestLandmarkServiceSeesConfigOverride(t *testing.T) {
	cfg := generation.DefaultConfig()
	cfg.Landmarks = []generation.Landmark{
		{ID: "spire", Name: "The Spire", Type: generation.LandmarkStone, X: 1, Z: 2},
	}
	svc := NewLandmarkService(NewWorldService(cfg, testLogger()))

	if got := svc.All(); len(got) != 1 || got[0].ID != "spire" {
		t.Errorf("override not visible: %+v", got)
	}
}
