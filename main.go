package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	// A missing .env file is fine; the environment and flags still apply
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printScenes()
		return
	}
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if cfg.Help {
		_, _ = loadConfig([]string{"-h"}, os.Getenv, os.Stdout)
		printScenes()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := run(ctx, cfg, renderer.NewDefaultLogger(), time.Now()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func printScenes() {
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, name := range scene.Names() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
}

// run builds the scene, renders it, saves the image and optionally publishes it.
// It returns the path of the saved image.
func run(ctx context.Context, cfg Config, logger core.Logger, now time.Time) (string, error) {
	logger.Printf("Building scene %s...\n", cfg.Scene)
	sc, err := scene.New(cfg.Scene, scene.Options{
		Seed:           cfg.Seed,
		AssetDir:       cfg.AssetDir,
		MaxTextureSize: cfg.MaxTextureSize,
		Logger:         logger,
	})
	if err != nil {
		return "", err
	}

	if cfg.Width > 0 {
		sc.SetWidth(cfg.Width)
	}
	if cfg.Samples > 0 {
		sc.SamplingConfig.SamplesPerPixel = cfg.Samples
	}
	if cfg.MaxDepth > 0 {
		sc.SamplingConfig.MaxDepth = cfg.MaxDepth
	}

	raytracer, err := renderer.NewRaytracer(sc, renderer.Options{
		Workers:  cfg.Workers,
		TileSize: cfg.TileSize,
		Seed:     cfg.Seed,
		Logger:   logger,
	})
	if err != nil {
		return "", err
	}

	startTime := time.Now()
	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return "", err
	}
	logger.Printf("Render completed in %v (%d pixels, %.1f samples/pixel, %d tiles on %d workers)\n",
		time.Since(startTime), stats.TotalPixels, stats.AverageSamples(), stats.Tiles, stats.Workers)
	logger.Printf("Average luminance: %.4f\n", renderer.CalculateAverageLuminance(img))

	filename := output.RenderPath(cfg.OutputDir, cfg.Scene, now)
	if err := output.Save(img, filename); err != nil {
		return "", err
	}
	logger.Printf("Render saved as %s\n", filename)

	if cfg.Publish {
		publisher, err := output.NewS3Publisher(cfg.S3, logger)
		if err != nil {
			return filename, err
		}
		key := filepath.ToSlash(filepath.Join(cfg.Scene, filepath.Base(filename)))
		if _, err := publisher.Publish(ctx, key, img); err != nil {
			return filename, err
		}
	}

	return filename, nil
}
