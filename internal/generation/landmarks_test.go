package generation

import (
	"reflect"
	"testing"
)

func TestDefaultLandmarksUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range DefaultLandmarks() {
		if seen[m.ID] {
			t.Errorf("duplicate landmark id %q", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestDefaultLandmarksPond(t *testing.T) {
	for _, m := range DefaultLandmarks() {
		if m.ID == "pond" {
			if m.X != 110 || m.Z != 90 {
				t.Errorf("pond at (%v, %v), want (110, 90)", m.X, m.Z)
			}
			if m.Type != LandmarkWater {
				t.Errorf("pond type %q, want %q", m.Type, LandmarkWater)
			}
			return
		}
	}
	t.Fatal("registry has no pond landmark")
}

func TestDefaultLandmarksStable(t *testing.T) {
	if !reflect.DeepEqual(DefaultLandmarks(), DefaultLandmarks()) {
		t.Error("registry should be identical across calls")
	}
}

func TestDefaultLandmarksWithinDefaultBounds(t *testing.T) {
	bounds := DefaultConfig().Bounds
	for _, m := range DefaultLandmarks() {
		if m.X < -bounds || m.X > bounds || m.Z < -bounds || m.Z > bounds {
			t.Errorf("landmark %q at (%v, %v) outside default bounds %v", m.ID, m.X, m.Z, bounds)
		}
	}
}

func TestValidateLandmarks(t *testing.T) {
	tests := []struct {
		name    string
		marks   []Landmark
		wantErr bool
	}{
		{"empty", nil, false},
		{"defaults", DefaultLandmarks(), false},
		{"duplicate id", []Landmark{
			{ID: "pond", Name: "Pond", Type: LandmarkWater},
			{ID: "pond", Name: "Other Pond", Type: LandmarkWater},
		}, true},
		{"blank id", []Landmark{{ID: "", Name: "Nameless", Type: LandmarkRock}}, true},
	}
	for _, tt := range tests {
		err := ValidateLandmarks(tt.marks)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
