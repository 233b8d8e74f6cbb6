package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// ErrUnknownScene is returned by New for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          geometry.Hittable // Root of the object graph
	Background     core.Vec3         // Radiance returned by rays that escape
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
	Camera         *geometry.Camera
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Options control how scenes are built
type Options struct {
	Seed           int64       // Seed for all construction randomness (placement, BVH axes, Perlin tables)
	AssetDir       string      // Directory holding texture images
	MaxTextureSize int         // Downscale textures larger than this; 0 keeps full size
	Logger         core.Logger // Receives warnings such as missing textures; may be nil
}

func (o Options) logf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// builder constructs a scene using sampler for every random decision
type builder func(opts Options, sampler core.Sampler) (*Scene, error)

var builders = map[string]builder{
	"random-spheres":     newRandomSpheresScene,
	"two-spheres":        newTwoSpheresScene,
	"two-perlin-spheres": newTwoPerlinSpheresScene,
	"earth":              newEarthScene,
	"simple-light":       newSimpleLightScene,
	"cornell-box":        newCornellBoxScene,
	"cornell-smoke":      newCornellSmokeScene,
	"final":              newFinalScene,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene. Building is deterministic for a given seed.
func New(name string, opts Options) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}

	s, err := build(opts, core.NewSeededSampler(opts.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
	}
	s.Name = name
	s.Preprocess()

	return s, nil
}

// Preprocess derives the image height from the aspect ratio when unset and creates the camera
func (s *Scene) Preprocess() {
	if s.SamplingConfig.Height <= 0 && s.CameraConfig.AspectRatio > 0 {
		s.SamplingConfig.Height = max(1, int(float64(s.SamplingConfig.Width)/s.CameraConfig.AspectRatio))
	}
	s.Camera = geometry.NewCamera(s.CameraConfig)
}

// SetWidth changes the image width, keeping the camera's aspect ratio
func (s *Scene) SetWidth(width int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = max(1, int(float64(width)/s.CameraConfig.AspectRatio))
}

// newCameraConfig returns the shared camera setup: Y up, focus at 10, shutter open over [0, 1]
func newCameraConfig(lookFrom, lookAt core.Vec3, vfov, aspectRatio, aperture float64) geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          vfov,
		AspectRatio:   aspectRatio,
		Aperture:      aperture,
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}
}
