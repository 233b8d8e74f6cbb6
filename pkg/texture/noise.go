package texture

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// turbulenceDepth is the number of noise octaves used by NoiseTexture
const turbulenceDepth = 7

// NoiseTexture is a marble-like grey pattern driven by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture with its own Perlin tables
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(sampler), Scale: scale}
}

// Value returns 0.5 * (1 + sin(scale*z + 10*turb(scale*p))) as a grey level
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	phase := n.Scale*p.Z + 10*n.Noise.Turbulence(p.Multiply(n.Scale), turbulenceDepth)
	grey := 0.5 * (1 + math.Sin(phase))
	return core.NewVec3(grey, grey, grey)
}
