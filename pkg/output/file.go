package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

// Save writes img to path, choosing the format from the file extension (png, jpg, gif, tif, bmp).
// Missing parent directories are created.
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes img to w as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// RenderPath returns the timestamped output file for a scene: <dir>/<scene>/render_<timestamp>.png
func RenderPath(dir, sceneName string, t time.Time) string {
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", t.Format("20060102_150405")))
}
