package scene

import (
	"github.com/spectra/go-raytracer/pkg/core"
	"github.com/spectra/go-raytracer/pkg/geometry"
	"github.com/spectra/go-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the world geometry
// with attached materials, the camera, and the sky gradient. Immutable once
// handed to a raytracer.
type Scene struct {
	Camera           *renderer.Camera
	CameraConfig     renderer.CameraConfig
	World            *geometry.HittableList
	BackgroundTop    core.Vec3 // Sky color straight up
	BackgroundBottom core.Vec3 // Sky color at the horizon
}

// NewScene creates an empty scene with the given camera configuration and
// the standard white-to-blue sky
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		Camera:           renderer.NewCamera(cameraConfig),
		CameraConfig:     cameraConfig,
		World:            geometry.NewHittableList(),
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.BackgroundTop, s.BackgroundBottom
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}
