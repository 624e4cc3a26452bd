package scene

import (
	"math/rand"

	"github.com/spectra/go-raytracer/pkg/core"
	"github.com/spectra/go-raytracer/pkg/geometry"
	"github.com/spectra/go-raytracer/pkg/material"
	"github.com/spectra/go-raytracer/pkg/renderer"
)

// NewCoverScene creates the randomized cover image: a grid of small
// spheres with a mixed material palette around three large feature spheres
// (glass, diffuse, metal) on a gray ground sphere. gridSize controls the
// extent of the small-sphere grid in each direction; the seed makes the
// placement reproducible.
func NewCoverScene(gridSize int, seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.FocusDistance = 10.0
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)
	random := rand.New(rand.NewSource(seed))

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Keep small spheres clear of the rightmost feature sphere's footprint
	featureCenter := core.NewVec3(4, 0.2, 0)

	for a := -gridSize; a <= gridSize; a++ {
		for b := -gridSize; b <= gridSize; b++ {
			center := core.NewVec3(
				float64(a)+0.9*(2*random.Float64()-1),
				0.2,
				float64(b)+0.9*(2*random.Float64()-1),
			)
			if center.Subtract(featureCenter).Length() <= 0.9 {
				continue
			}

			var sphereMaterial core.Material
			switch chooseMaterial := random.Float64(); {
			case chooseMaterial < 0.8:
				// Diffuse: squaring keeps most albedos muted
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				// Metal
				albedo := core.NewVec3(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				fuzz := 0.5 * random.Float64()
				sphereMaterial = material.NewMetal(albedo, fuzz)
			default:
				// Glass
				sphereMaterial = material.NewDielectric(1.5)
			}

			s.World.Add(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	s.World.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	s.World.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.World.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return s
}
