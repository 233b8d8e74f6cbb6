package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/output"
)

// Config holds everything the CLI needs to build, render, save and publish a scene
type Config struct {
	Scene          string
	Width          int // 0 keeps the scene's default
	Samples        int // 0 keeps the scene's default
	MaxDepth       int // 0 keeps the scene's default
	Workers        int // 0 uses every CPU
	TileSize       int
	Seed           int64
	OutputDir      string
	AssetDir       string
	MaxTextureSize int // 0 keeps textures at full size
	Publish        bool
	Help           bool
	S3             output.S3Config
}

// loadConfig parses command line arguments. Flag defaults come from getenv so that
// values in the environment (or a .env file) apply unless overridden on the command line.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (Config, error) {
	var cfg Config

	defaultWidth, err := envInt(getenv, "RAYTRACER_WIDTH", 0)
	if err != nil {
		return cfg, err
	}
	defaultMaxTexture, err := envInt(getenv, "RAYTRACER_MAX_TEXTURE", 0)
	if err != nil {
		return cfg, err
	}
	defaultWorkers, err := envInt(getenv, "RAYTRACER_WORKERS", 0)
	if err != nil {
		return cfg, err
	}
	defaultSamples, err := envInt(getenv, "RAYTRACER_SPP", 0)
	if err != nil {
		return cfg, err
	}
	defaultDepth, err := envInt(getenv, "RAYTRACER_DEPTH", 0)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: pathtracer [options]")
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Scene, "scene", envString(getenv, "RAYTRACER_SCENE", "random-spheres"), "Scene to render")
	fs.IntVar(&cfg.Width, "width", defaultWidth, "Image width in pixels (0 = scene default)")
	fs.IntVar(&cfg.Samples, "spp", defaultSamples, "Samples per pixel (0 = scene default)")
	fs.IntVar(&cfg.MaxDepth, "depth", defaultDepth, "Maximum bounce depth (0 = scene default)")
	fs.IntVar(&cfg.Workers, "workers", defaultWorkers, "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&cfg.TileSize, "tile", 32, "Tile size in pixels")
	fs.Int64Var(&cfg.Seed, "seed", 42, "Seed for scene construction and sampling")
	fs.StringVar(&cfg.OutputDir, "out", envString(getenv, "RAYTRACER_OUTPUT_DIR", "output"), "Output directory")
	fs.StringVar(&cfg.AssetDir, "assets", envString(getenv, "RAYTRACER_ASSET_DIR", "assets"), "Directory holding texture images")
	fs.IntVar(&cfg.MaxTextureSize, "max-texture", defaultMaxTexture, "Downscale textures larger than this many pixels per side (0 = full size)")
	fs.BoolVar(&cfg.Publish, "publish", false, "Upload the render to the configured S3 bucket")
	fs.BoolVar(&cfg.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.S3 = output.S3Config{
		Endpoint:  getenv("S3_ENDPOINT"),
		Region:    envString(getenv, "S3_REGION", "us-east-1"),
		Bucket:    getenv("S3_BUCKET"),
		AccessKey: getenv("S3_ACCESS_KEY"),
		SecretKey: getenv("S3_SECRET_KEY"),
		Prefix:    getenv("S3_PREFIX"),
	}

	if cfg.Width < 0 || cfg.Samples < 0 || cfg.MaxDepth < 0 || cfg.Workers < 0 || cfg.TileSize <= 0 || cfg.MaxTextureSize < 0 {
		return cfg, fmt.Errorf("invalid numeric option: width=%d spp=%d depth=%d workers=%d tile=%d max-texture=%d",
			cfg.Width, cfg.Samples, cfg.MaxDepth, cfg.Workers, cfg.TileSize, cfg.MaxTextureSize)
	}
	if cfg.Publish && !cfg.S3.Enabled() {
		return cfg, output.ErrPublishingDisabled
	}

	return cfg, nil
}

func envString(getenv func(string) string, key, fallback string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) (int, error) {
	value := getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
	return n, nil
}
