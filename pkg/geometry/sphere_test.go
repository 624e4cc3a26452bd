package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/spectra/go-raytracer/pkg/core"
)

// stubMaterial is a placeholder material for intersection tests
type stubMaterial struct{}

func (m *stubMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &stubMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &stubMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_CenterAimedRay(t *testing.T) {
	// A ray aimed at the center from distance d hits at t = d - radius,
	// and the normal there is anti-parallel to the ray direction
	center := core.NewVec3(0, 0, -5)
	radius := 2.0
	sphere := NewSphere(center, radius, &stubMaterial{})

	origin := core.NewVec3(0, 0, 0)
	direction := center.Subtract(origin).Normalize()
	ray := core.NewRay(origin, direction)

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	distance := center.Subtract(origin).Length()
	expectedT := distance - radius
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expectedT, hit.T)
	}

	// Normal should point straight back along the ray
	if hit.Normal.Add(direction).Length() > 1e-9 {
		t.Errorf("Expected normal %v, got %v", direction.Multiply(-1), hit.Normal)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &stubMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_SecondRoot(t *testing.T) {
	// A ray starting inside the sphere only has the farther root in range
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, &stubMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit from inside the sphere, but got miss")
	}

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected farther root t=1, got t=%f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside the sphere")
	}
}

func TestSphere_Hit_NegativeRadius(t *testing.T) {
	// Negative radius flips the reported normal (hollow shell trick)
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0, &stubMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// Geometric outward normal (0,0,1) is divided by -1, so the ray sees a
	// back face and the stored normal is flipped back to face the ray
	if hit.FrontFace {
		t.Error("Expected back face hit for negative radius")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
}

func TestHittableList_ClosestHit(t *testing.T) {
	list := NewHittableList()
	material := &stubMaterial{}
	list.Add(NewSphere(core.NewVec3(0, 0, -10), 1.0, material))
	list.Add(NewSphere(core.NewVec3(0, 0, -5), 1.0, material))
	list.Add(NewSphere(core.NewVec3(0, 0, -20), 1.0, material))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, 0.001, math.Inf(1))

	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// Nearest sphere is at z=-5, so the hit is at t=4
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected closest hit at t=4, got t=%f", hit.T)
	}
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss for empty list")
	}
}

func TestHittableList_RespectsRange(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -5), 1.0, &stubMaterial{}))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := list.Hit(ray, 0.001, 3.0); isHit {
		t.Error("Expected miss when the only hit is beyond tMax")
	}
}
