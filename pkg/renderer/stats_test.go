package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126 + Green 0.7152 + Blue 0.0722 + Black 0 = 1.0 over 4 pixels
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	if avgLum < 0.9999 || avgLum > 1.0001 {
		t.Errorf("Expected average luminosity 1.0, got %f", avgLum)
	}
}

func TestPixelStats(t *testing.T) {
	var ps PixelStats
	if c := ps.GetColor(); c != (core.Vec3{}) {
		t.Errorf("Empty pixel should be black, got %v", c)
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
	if c := ps.GetColor(); !c.Equals(core.NewVec3(0.5, 0.5, 0), 1e-12) {
		t.Errorf("Expected mean (0.5,0.5,0), got %v", c)
	}
}

func TestRenderStats_Add(t *testing.T) {
	var total RenderStats
	total.Add(RenderStats{TotalPixels: 10, TotalSamples: 40, Tiles: 1})
	total.Add(RenderStats{TotalPixels: 6, TotalSamples: 24, Tiles: 1})

	if total.TotalPixels != 16 || total.TotalSamples != 64 || total.Tiles != 2 {
		t.Errorf("Unexpected totals %+v", total)
	}
	if total.AverageSamples() != 4 {
		t.Errorf("Expected 4 samples per pixel, got %f", total.AverageSamples())
	}
}
