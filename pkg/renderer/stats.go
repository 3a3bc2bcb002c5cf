package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Tiles       int           // Number of tiles the image was split into
	PrimaryRays int64         // Camera rays, one per pixel
	TotalRays   int64         // Rays that reached a scene scan, primary rays included
	Elapsed     time.Duration // Wall time from first spawn to last join

	AverageLuminance float64 // Mean Rec. 709 luminance of the finished frame
}

// RaysPerPixel returns the average number of traced rays per pixel
func (s RenderStats) RaysPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalRays) / float64(s.TotalPixels)
}

// TileProgress reports a finished tile
type TileProgress struct {
	TileID     int // Which tile finished
	TilesDone  int // Tiles finished so far, including this one
	TotalTiles int // Tiles in the render
}

// Percent returns completion in [0, 100]
func (p TileProgress) Percent() float64 {
	if p.TotalTiles == 0 {
		return 100
	}
	return 100 * float64(p.TilesDone) / float64(p.TotalTiles)
}
