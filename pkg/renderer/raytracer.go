package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ErrInvalidConfig is returned when a scene or render options cannot produce an image
var ErrInvalidConfig = errors.New("invalid render configuration")

// Options contains configuration for a render
type Options struct {
	Workers  int         // Number of parallel workers (0 = use CPU count)
	TileSize int         // Edge length of each square tile (0 = 32)
	Seed     int64       // Base seed; tile n samples with Seed+n
	Logger   core.Logger // Progress output (nil = NopLogger)
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Workers:  0,
		TileSize: 32,
		Seed:     42,
		Logger:   NewDefaultLogger(),
	}
}

// Raytracer renders a scene into an image
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	options    Options
	logger     core.Logger
}

// NewRaytracer validates the scene's sampling configuration and creates a raytracer
func NewRaytracer(sc *scene.Scene, options Options) (*Raytracer, error) {
	if sc == nil || sc.World == nil || sc.Camera == nil {
		return nil, fmt.Errorf("%w: scene must have a world and a camera", ErrInvalidConfig)
	}
	config := sc.SamplingConfig
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, config.Width, config.Height)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, config.SamplesPerPixel)
	}
	if options.TileSize < 0 || options.Workers < 0 {
		return nil, fmt.Errorf("%w: tile size %d, workers %d", ErrInvalidConfig, options.TileSize, options.Workers)
	}

	if options.TileSize == 0 {
		options.TileSize = DefaultOptions().TileSize
	}
	logger := options.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	return &Raytracer{
		scene:      sc,
		integrator: integrator.NewPathTracingIntegrator(config),
		options:    options,
		logger:     logger,
	}, nil
}

// Render traces every pixel and returns the finished image.
// Output for a fixed seed and tile size does not depend on the number of workers.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	config := rt.scene.SamplingConfig

	tiles := NewTileGrid(config.Width, config.Height, rt.options.TileSize, rt.options.Seed)
	pixels := make([]core.Vec3, config.Width*config.Height)

	pool := NewWorkerPool(rt.scene, rt.integrator, len(tiles), rt.options.Workers)
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel, max depth %d (%d tiles, %d workers)...\n",
		config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Pixels: pixels})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	var renderErr error
	progressStep := max(1, len(tiles)/10)
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Add(result.Stats)

		if done := i + 1; done%progressStep == 0 || done == len(tiles) {
			rt.logger.Printf("  %d/%d tiles (%.0f%%)\n", done, len(tiles), 100*float64(done)/float64(len(tiles)))
		}
	}
	pool.Stop()

	if renderErr != nil {
		return nil, stats, fmt.Errorf("render interrupted: %w", renderErr)
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("Render complete in %v (%d samples)\n", stats.Duration.Round(time.Millisecond), stats.TotalSamples)

	return ToRGBA(pixels, config.Width, config.Height), stats, nil
}

// ToRGBA converts linear colors in row-major image order into an 8-bit image
func ToRGBA(pixels []core.Vec3, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixels[y*width+x]))
		}
	}
	return img
}

// vec3ToColor applies gamma 2, clamps to [0, 0.999] and scales to 8 bits.
// NaN components, which can only come from degenerate geometry, map to black.
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2)
	return color.RGBA{
		R: toByte(colorVec.X),
		G: toByte(colorVec.Y),
		B: toByte(colorVec.Z),
		A: 255,
	}
}

func toByte(c float64) uint8 {
	if math.IsNaN(c) || c <= 0 {
		return 0
	}
	c = math.Min(c, 0.999)
	return uint8(256 * c)
}
