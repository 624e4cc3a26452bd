package renderer

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/spectra/go-raytracer/pkg/core"
)

// Ray parameters below tMinEpsilon are rejected so a scattered ray can't
// re-hit the surface it just left (shadow acne)
const tMinEpsilon = 0.001

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	TileSize        int   // Tile edge length in pixels (0 = 64)
	NumWorkers      int   // Number of parallel workers (0 = CPU count)
	Seed            int64 // Base seed for per-tile generators (0 = 42)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		TileSize:        64,
		NumWorkers:      0, // Auto-detect CPU count
		Seed:            42,
	}
}

// Validate checks the configuration, returning a descriptive error for
// caller mistakes before any rendering work begins
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("invalid image dimensions %dx%d: width and height must be at least 1", c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("invalid samples per pixel %d: must be at least 1", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max depth %d: must not be negative", c.MaxDepth)
	}
	if c.TileSize < 0 {
		return fmt.Errorf("invalid tile size %d: must not be negative", c.TileSize)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() core.Hittable
}

// Raytracer renders a scene into a framebuffer
type Raytracer struct {
	scene  Scene
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. The configuration is validated and
// defaults are filled in for zero-valued fields.
func NewRaytracer(scene Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("raytracer configuration: %w", err)
	}
	if config.TileSize == 0 {
		config.TileSize = 64
	}
	if config.Seed == 0 {
		config.Seed = 42
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}, nil
}

// Render renders the full image in parallel and returns the completed
// framebuffer. The scene and camera are read-only for the duration; each
// tile is written by exactly one worker.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats) {
	startTime := time.Now()

	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize, rt.config.Seed)

	pool := NewWorkerPool(rt.config.NumWorkers, len(tiles), func(tile *Tile) RenderStats {
		return rt.renderBounds(tile.Bounds, fb, tile.Random)
	})

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel with %d workers (%d tiles)...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, pool.GetNumWorkers(), len(tiles))

	pool.Start()
	for _, tile := range tiles {
		pool.SubmitTask(tile)
	}

	stats := RenderStats{NumWorkers: pool.GetNumWorkers()}
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.merge(result.Stats)
	}
	pool.Stop()

	stats.finalize()
	stats.Elapsed = time.Since(startTime)

	return fb, stats
}

// renderBounds renders all pixels within bounds into the framebuffer.
// Bounds of concurrent calls must not overlap.
func (rt *Raytracer) renderBounds(bounds image.Rectangle, fb *Framebuffer, random *rand.Rand) RenderStats {
	camera := rt.scene.GetCamera()

	// The -1 matches pixel centers to the viewport corners; single-pixel
	// axes degenerate to a denominator of 1
	denomS := float64(max(1, rt.config.Width-1))
	denomT := float64(max(1, rt.config.Height-1))

	stats := RenderStats{NumTiles: 1}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var ps PixelStats
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Jitter within the pixel; the framebuffer row order is
				// top-down while the camera's t axis is bottom-up
				s := (float64(x) + random.Float64()) / denomS
				t := (float64(rt.config.Height-1-y) + random.Float64()) / denomT

				ray := camera.GetRay(s, t, random)
				ps.AddSample(rt.rayColor(ray, rt.config.MaxDepth, random))
			}

			fb.Set(x, y, ps.Color().GammaCorrect(2.0).Clamp(0.0, 1.0))
			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}

// rayColor returns the radiance carried back along a ray, recursing through
// material scattering up to the given depth
func (rt *Raytracer) rayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// Past the bounce limit no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.GetWorld().Hit(r, tMinEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1, random))
}

// backgroundGradient returns the sky color for a ray that escapes the scene,
// blending bottom to top on the unit direction's Y component
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
