package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	"github.com/spectra/go-raytracer/pkg/core"
	"github.com/spectra/go-raytracer/pkg/renderer"
	"github.com/spectra/go-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "three", "Scene type: 'simple', 'three' or 'cover'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (0 derives it from the scene's aspect ratio)")
	samples := flag.Int("samples", 100, "Samples per pixel")
	maxDepth := flag.Int("depth", 50, "Maximum ray bounce depth")
	tileSize := flag.Int("tile", 64, "Tile size in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 uses all CPUs)")
	seed := flag.Int64("seed", 42, "Random seed for sampling and scene generation")
	gridSize := flag.Int("grid", 11, "Half-extent of the cover scene's sphere grid")
	output := flag.String("output", "", "Output file path (default output/<scene>/render.<format>)")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	preview := flag.Bool("preview", false, "Also save a downscaled preview thumbnail")
	verbose := flag.Bool("verbose", false, "Log per-render statistics")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Stochastic Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  simple - Two Lambertian spheres against the gradient sky")
		fmt.Println("  three  - Diffuse, hollow glass and metal spheres on a ground plane")
		fmt.Println("  cover  - Large randomized field of small spheres with three feature spheres")
		return
	}

	if err := run(*sceneType, *width, *height, *samples, *maxDepth, *tileSize,
		*workers, *seed, *gridSize, *output, *format, *preview, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, width, height, samples, maxDepth, tileSize, workers int,
	seed int64, gridSize int, output, format string, preview, verbose bool) error {

	selectedScene, height, err := createScene(sceneType, width, height, gridSize, seed)
	if err != nil {
		return err
	}

	config := renderer.Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		MaxDepth:        maxDepth,
		TileSize:        tileSize,
		NumWorkers:      workers,
		Seed:            seed,
	}

	var logger core.Logger = renderer.NewDefaultLogger()
	if !verbose {
		logger = renderer.NewSilentLogger()
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, config, logger)
	if err != nil {
		return err
	}

	return renderAndSave(raytracer, sceneType, output, format, preview,
		width, height, samples)
}

// createScene builds the named scene with a camera matched to the image
// dimensions, resolving the height from the scene's aspect ratio when unset
func createScene(sceneType string, width, height, gridSize int, seed int64) (*scene.Scene, int, error) {
	var aspectRatio float64
	switch sceneType {
	case "simple":
		aspectRatio = 2.0
	case "three", "cover":
		aspectRatio = 16.0 / 9.0
	default:
		return nil, 0, fmt.Errorf("unknown scene type %q (want 'simple', 'three' or 'cover')", sceneType)
	}
	if height <= 0 {
		height = int(float64(width) / aspectRatio)
	} else {
		aspectRatio = float64(width) / float64(height)
	}
	override := renderer.CameraConfig{AspectRatio: aspectRatio}

	switch sceneType {
	case "simple":
		return scene.NewSimpleScene(override), height, nil
	case "three":
		return scene.NewThreeSphereScene(override), height, nil
	default:
		return scene.NewCoverScene(gridSize, seed, override), height, nil
	}
}

func renderAndSave(raytracer *renderer.Raytracer, sceneType, output, format string,
	preview bool, width, height, samples int) error {

	fmt.Printf("Rendering %s scene at %dx%d, %d samples/pixel...\n", sceneType, width, height, samples)
	fb, stats := raytracer.Render()

	fmt.Printf("Render completed in %v\n", stats.Elapsed)
	fmt.Printf("Pixels: %d, samples: %d (%.1f/pixel), tiles: %d, workers: %d\n",
		stats.TotalPixels, stats.TotalSamples, stats.AverageSamples,
		stats.NumTiles, stats.NumWorkers)

	if output == "" {
		output = filepath.Join("output", sceneType, "render."+format)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var err error
	switch format {
	case "png":
		err = savePNG(fb, output)
	case "ppm":
		err = savePPM(fb, output)
	default:
		return fmt.Errorf("unknown output format %q (want 'png' or 'ppm')", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", output)

	if preview {
		thumbPath := previewPath(output)
		if err := savePreview(fb, thumbPath); err != nil {
			return err
		}
		fmt.Printf("Preview saved as %s\n", thumbPath)
	}
	return nil
}

// savePNG writes the framebuffer as a PNG image
func savePNG(fb *renderer.Framebuffer, path string) error {
	ctx := gg.NewContextForRGBA(fb.ToRGBA())
	if err := ctx.SavePNG(path); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}
	return nil
}

// savePPM writes the framebuffer in plain P3 format, one pixel per line,
// rows top to bottom
func savePPM(fb *renderer.Framebuffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating PPM file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", fb.Width(), fb.Height())
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			c := fb.At(x, y)
			fmt.Fprintf(w, "%d %d %d\n",
				int(255.999*c.X), int(255.999*c.Y), int(255.999*c.Z))
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing PPM data: %w", err)
	}
	return nil
}

// savePreview writes a quarter-width thumbnail next to the full render
func savePreview(fb *renderer.Framebuffer, path string) error {
	thumbWidth := uint(fb.Width() / 4)
	if thumbWidth < 1 {
		thumbWidth = 1
	}
	thumb := resize.Resize(thumbWidth, 0, fb.ToRGBA(), resize.Bilinear)

	ctx := gg.NewContextForImage(thumb)
	if err := ctx.SavePNG(path); err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	return nil
}

func previewPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + "_preview.png"
}
