package renderer

import (
	"testing"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
)

func TestAverageLuminance(t *testing.T) {
	// Red 0.2126 + green 0.7152 + blue 0.0722 + black 0 = 1.0, over 4 pixels
	frame := NewFrame(2, 2)
	frame.Set(0, 0, core.NewColor(1, 0, 0))
	frame.Set(1, 0, core.NewColor(0, 1, 0))
	frame.Set(0, 1, core.NewColor(0, 0, 1))

	avgLum := frame.AverageLuminance()
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminance %f, got %f", expected, avgLum)
	}
}

func TestAverageLuminance_White(t *testing.T) {
	frame := NewFrame(1, 1)
	frame.Set(0, 0, core.White)

	avgLum := frame.AverageLuminance()
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminance %f, got %f", expected, avgLum)
	}
}

func TestAverageLuminance_EmptyFrame(t *testing.T) {
	if got := NewFrame(0, 0).AverageLuminance(); got != 0 {
		t.Errorf("Expected 0 for an empty frame, got %f", got)
	}
}

func TestRenderStats_RaysPerPixel(t *testing.T) {
	tests := []struct {
		name     string
		stats    RenderStats
		expected float64
	}{
		{"No pixels", RenderStats{}, 0},
		{"Primary only", RenderStats{TotalPixels: 10, TotalRays: 10}, 1},
		{"With bounces", RenderStats{TotalPixels: 4, TotalRays: 26}, 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.RaysPerPixel(); got != tt.expected {
				t.Errorf("RaysPerPixel() = %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestTileProgress_Percent(t *testing.T) {
	tests := []struct {
		name     string
		progress TileProgress
		expected float64
	}{
		{"Half", TileProgress{TilesDone: 2, TotalTiles: 4}, 50},
		{"Done", TileProgress{TilesDone: 9, TotalTiles: 9}, 100},
		{"No tiles", TileProgress{}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.progress.Percent(); got != tt.expected {
				t.Errorf("Percent() = %f, want %f", got, tt.expected)
			}
		})
	}
}
