package texture

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
)

func TestSolidColor_Value(t *testing.T) {
	color := core.NewVec3(0.2, 0.4, 0.6)
	tex := NewSolidColor(color)

	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(10, -3, 2)} {
		if got := tex.Value(0.3, 0.7, p); got != color {
			t.Errorf("Expected %v at %v, got %v", color, p, got)
		}
	}
}

func TestCheckerTexture_Value(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerColors(even, odd)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		// sin(1)^3 > 0
		{"all positive sines", core.NewVec3(0.1, 0.1, 0.1), even},
		// sin(-1)*sin(1)*sin(1) < 0
		{"one negative sine", core.NewVec3(-0.1, 0.1, 0.1), odd},
		// two negatives cancel
		{"two negative sines", core.NewVec3(-0.1, -0.1, 0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Value(0, 0, tt.point); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPerlin_NoiseRangeAndDeterminism(t *testing.T) {
	a := NewPerlin(core.NewSeededSampler(42))
	b := NewPerlin(core.NewSeededSampler(42))
	sampler := core.NewSeededSampler(1)

	for i := 0; i < 200; i++ {
		p := core.RandomVec3(sampler, -50, 50)
		na := a.Noise(p)
		if na != b.Noise(p) {
			t.Fatalf("Same seed produced different noise at %v", p)
		}
		if math.Abs(na) > math.Sqrt(3) {
			t.Fatalf("Noise %f out of range at %v", na, p)
		}
		if turb := a.Turbulence(p, 7); turb < 0 {
			t.Fatalf("Turbulence must be non-negative, got %f", turb)
		}
	}
}

func TestPerlin_ZeroAtLatticePoints(t *testing.T) {
	perlin := NewPerlin(core.NewSeededSampler(5))
	// Gradient noise vanishes on integer lattice points
	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(3, -2, 7)} {
		if n := perlin.Noise(p); math.Abs(n) > 1e-12 {
			t.Errorf("Expected zero noise at lattice point %v, got %f", p, n)
		}
	}
}

func TestNoiseTexture_GreyInUnitRange(t *testing.T) {
	tex := NewNoiseTexture(4, core.NewSeededSampler(8))
	sampler := core.NewSeededSampler(9)

	for i := 0; i < 100; i++ {
		p := core.RandomVec3(sampler, -5, 5)
		c := tex.Value(0, 0, p)
		if c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Expected grey value, got %v", c)
		}
		if c.X < 0 || c.X > 1 {
			t.Fatalf("Grey level %f outside [0,1]", c.X)
		}
	}
}

func TestImageTexture_NoDataIsCyan(t *testing.T) {
	tex := NewImageTexture(nil)
	if got := tex.Value(0.5, 0.5, core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan debug color, got %v", got)
	}

	loaded, err := LoadImageTexture(filepath.Join(t.TempDir(), "missing.jpg"), 0)
	if err == nil {
		t.Fatal("Expected error for missing texture file")
	}
	if got := loaded.Value(0.1, 0.9, core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan from failed load, got %v", got)
	}
}

func TestImageTexture_Sampling(t *testing.T) {
	// 2x2 image: top row red, green; bottom row blue, white
	img := &loaders.ImageData{
		Width:  2,
		Height: 2,
		Pixels: []byte{
			255, 0, 0, 0, 255, 0,
			0, 0, 255, 255, 255, 255,
		},
	}
	tex := NewImageTexture(img)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"top left", 0.1, 0.9, core.NewVec3(1, 0, 0)},
		{"top right", 0.9, 0.9, core.NewVec3(0, 1, 0)},
		{"bottom left", 0.1, 0.1, core.NewVec3(0, 0, 1)},
		{"bottom right", 0.9, 0.1, core.NewVec3(1, 1, 1)},
		{"u=1 clamps to last column", 1.0, 1.0, core.NewVec3(0, 1, 0)},
		{"out of range clamps", -3, -3, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Value(tt.u, tt.v, core.Vec3{}); !got.Equals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
