package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/integrator"
	"github.com/df07/go-recursive-pathtracer/pkg/scene"
)

// RenderOptions configures logging and progress reporting
type RenderOptions struct {
	Logger   core.Logger        // Defaults to a discarding logger
	Progress func(TileProgress) // Called once per finished tile, serialized
}

// progressCounter counts finished tiles under its own lock
type progressCounter struct {
	mu       sync.Mutex
	done     int
	total    int
	callback func(TileProgress)
}

func (p *progressCounter) tileDone(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.callback != nil {
		p.callback(TileProgress{TileID: id, TilesDone: p.done, TotalTiles: p.total})
	}
}

// Render traces sc into a new frame. The image is split into tiles, one
// goroutine per tile, all joined before Render returns. Output depends only
// on the scene, cfg and cfg.Seed, not on scheduling. A tile that panics
// aborts the render and its panic is returned as an error.
func Render(sc *scene.Scene, cfg Config, opts RenderOptions) (*Frame, RenderStats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render %s: %w", sc.Name, err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = core.DiscardLogger{}
	}

	start := time.Now()
	frame := NewFrame(cfg.Width, cfg.Height)
	shared := NewSharedFrame(frame, NewCamera(sc.CameraConfig, cfg.Width, cfg.Height))
	tracer := integrator.NewPathTracer(sc, cfg.SampleCount)

	// All seeds are drawn here, in tile order, before any goroutine starts
	tiles := NewTileGrid(cfg.Width, cfg.Height, cfg.Cells, rand.New(rand.NewSource(cfg.Seed)))
	progress := &progressCounter{total: len(tiles), callback: opts.Progress}

	logger.Printf("Rendering %s: %dx%d, %d tiles, %d samples, depth %d\n",
		sc.Name, cfg.Width, cfg.Height, len(tiles), cfg.SampleCount, cfg.MaxDepth)

	g, ctx := errgroup.WithContext(context.Background())
	for _, tile := range tiles {
		tile := tile
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("tile %d %v panicked: %v", tile.ID, tile.Bounds, r)
				}
			}()

			if err := renderTile(ctx, tile, shared, tracer, cfg); err != nil {
				return err
			}
			progress.tileDone(tile.ID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render %s: %w", sc.Name, err)
	}

	pixels := cfg.Width * cfg.Height
	stats := RenderStats{
		TotalPixels: pixels,
		Tiles:       len(tiles),
		PrimaryRays: int64(pixels),
		TotalRays:   tracer.RaysCast(),
		Elapsed:     time.Since(start),

		AverageLuminance: frame.AverageLuminance(),
	}
	logger.Printf("Rendered %d pixels (%d rays, %.1f per pixel) in %v\n",
		stats.TotalPixels, stats.TotalRays, stats.RaysPerPixel(), stats.Elapsed)
	logger.Printf("Average luminance: %.4f\n", stats.AverageLuminance)

	return frame, stats, nil
}

// renderTile traces every pixel of tile. The shared frame is locked only to
// fetch the camera ray and to store the result. It stops early when another
// tile has failed.
func renderTile(ctx context.Context, tile *Tile, shared *SharedFrame, tracer integrator.Integrator, cfg Config) error {
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			ray := shared.PixelRay(x, y)
			il := tracer.CastRay(ray, tile.Random, cfg.MaxDepth)
			shared.Set(x, y, il.Radiance(cfg.IntensityMin, cfg.IntensityMax))
		}
	}
	return nil
}
