package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
)

// Tile represents a rectangular region of the image to be rendered.
// Tiles never overlap, so each worker writes a disjoint part of the
// framebuffer without locking.
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a new tile with the specified bounds, seeding its
// generator from the base seed and tile ID so renders are reproducible
func NewTile(id int, bounds image.Rectangle, baseSeed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(baseSeed + int64(id))),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, baseSeed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), baseSeed))
			tileID++
		}
	}

	return tiles
}

// TileResult contains the statistics from rendering a single tile
type TileResult struct {
	TileID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering. Each worker pulls tiles off
// a shared queue and renders them with the provided render function.
type WorkerPool struct {
	taskQueue   chan *Tile
	resultQueue chan TileResult
	numWorkers  int
	render      func(*Tile) RenderStats
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
// (0 = available CPU count)
func NewWorkerPool(numWorkers, numTiles int, render func(*Tile) RenderStats) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan *Tile, numTiles),
		resultQueue: make(chan TileResult, numTiles),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop waits for all submitted tiles to finish and shuts the pool down
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile to the worker pool
func (wp *WorkerPool) SubmitTask(tile *Tile) {
	wp.taskQueue <- tile
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for tile := range wp.taskQueue {
		stats := wp.render(tile)
		wp.resultQueue <- TileResult{TileID: tile.ID, Stats: stats}
	}
}
