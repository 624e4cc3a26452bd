package scene

import (
	"github.com/spectra/go-raytracer/pkg/core"
	"github.com/spectra/go-raytracer/pkg/geometry"
	"github.com/spectra/go-raytracer/pkg/material"
	"github.com/spectra/go-raytracer/pkg/renderer"
)

// NewSimpleScene creates a minimal scene: a gray sphere resting on a huge
// ground sphere, viewed from the origin looking down -Z
func NewSimpleScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 2.0,
		Aperture:    0.0, // Pinhole, no defocus blur
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100, -1), 100, ground))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray))

	return s
}

// NewThreeSphereScene creates the classic lineup: a diffuse sphere flanked
// by a hollow glass sphere and a metal sphere on a diffuse ground
func NewThreeSphereScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center))
	// Negative inner radius makes the glass sphere a hollow shell
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass))
	s.World.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold))

	return s
}
