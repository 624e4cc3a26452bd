package scene

import (
	"testing"

	"github.com/spectra/go-raytracer/pkg/core"
	"github.com/spectra/go-raytracer/pkg/geometry"
	"github.com/spectra/go-raytracer/pkg/renderer"
)

// Scenes must satisfy the renderer's scene contract
var _ renderer.Scene = (*Scene)(nil)

func TestNewSimpleScene(t *testing.T) {
	s := NewSimpleScene()

	if len(s.World.Objects) != 2 {
		t.Errorf("Expected 2 objects in simple scene, got %d", len(s.World.Objects))
	}

	top, bottom := s.GetBackgroundColors()
	if !top.Equals(core.NewVec3(0.5, 0.7, 1.0)) {
		t.Errorf("Expected sky blue top color, got %v", top)
	}
	if !bottom.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected white bottom color, got %v", bottom)
	}
}

func TestNewThreeSphereScene(t *testing.T) {
	s := NewThreeSphereScene()

	// Ground, center, hollow glass (outer + inner), metal
	if len(s.World.Objects) != 5 {
		t.Errorf("Expected 5 objects in three-sphere scene, got %d", len(s.World.Objects))
	}

	// The hollow glass inner shell has a negative radius
	hasNegativeRadius := false
	for _, object := range s.World.Objects {
		if sphere, ok := object.(*geometry.Sphere); ok && sphere.Radius < 0 {
			hasNegativeRadius = true
		}
	}
	if !hasNegativeRadius {
		t.Error("Expected a negative-radius inner shell for the hollow glass sphere")
	}
}

func TestNewCoverScene_Deterministic(t *testing.T) {
	first := NewCoverScene(3, 99)
	second := NewCoverScene(3, 99)

	if len(first.World.Objects) != len(second.World.Objects) {
		t.Fatalf("Expected identical object counts, got %d vs %d",
			len(first.World.Objects), len(second.World.Objects))
	}

	for i := range first.World.Objects {
		a := first.World.Objects[i].(*geometry.Sphere)
		b := second.World.Objects[i].(*geometry.Sphere)
		if !a.Center.Equals(b.Center) || a.Radius != b.Radius {
			t.Fatalf("Object %d differs between identically seeded scenes", i)
		}
	}
}

func TestNewCoverScene_SeedChangesLayout(t *testing.T) {
	first := NewCoverScene(3, 1)
	second := NewCoverScene(3, 2)

	if len(first.World.Objects) == len(second.World.Objects) {
		identical := true
		for i := range first.World.Objects {
			a := first.World.Objects[i].(*geometry.Sphere)
			b := second.World.Objects[i].(*geometry.Sphere)
			if !a.Center.Equals(b.Center) {
				identical = false
				break
			}
		}
		if identical {
			t.Error("Different seeds should produce different sphere layouts")
		}
	}
}

func TestNewCoverScene_ContainsFeatureSpheres(t *testing.T) {
	s := NewCoverScene(2, 42)

	// Ground plus three large feature spheres are always present
	if len(s.World.Objects) < 4 {
		t.Fatalf("Expected at least 4 objects, got %d", len(s.World.Objects))
	}

	found := 0
	features := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(-4, 1, 0),
		core.NewVec3(4, 1, 0),
	}
	for _, object := range s.World.Objects {
		sphere := object.(*geometry.Sphere)
		for _, center := range features {
			if sphere.Center.Equals(center) && sphere.Radius == 1.0 {
				found++
			}
		}
	}
	if found != 3 {
		t.Errorf("Expected 3 feature spheres, found %d", found)
	}
}

func TestSceneCameraOverrides(t *testing.T) {
	override := renderer.CameraConfig{VFov: 35.0}
	s := NewSimpleScene(override)

	if s.CameraConfig.VFov != 35.0 {
		t.Errorf("Expected overridden VFov 35, got %f", s.CameraConfig.VFov)
	}
	// Untouched fields keep the scene defaults
	if !s.CameraConfig.LookAt.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected default LookAt, got %v", s.CameraConfig.LookAt)
	}
}
