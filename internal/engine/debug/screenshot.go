// Package debug provides developer tooling such as screenshots.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshotter writes frames to timestamped PNG files.
type Screenshotter struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotter creates a screenshot writer for dir. An empty dir writes
// to the working directory.
func NewScreenshotter(outputDir, prefix string) *Screenshotter {
	return &Screenshotter{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Filename returns the path the next screenshot would be written to.
func (s *Screenshotter) Filename() string {
	timestamp := s.now().Format("2006-01-02_15-04-05.000")
	name := fmt.Sprintf("%s_%s.png", s.prefix, timestamp)
	if s.outputDir != "" {
		name = filepath.Join(s.outputDir, name)
	}
	return name
}

// Save encodes img as PNG and returns the written path.
func (s *Screenshotter) Save(img image.Image) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", fmt.Errorf("empty image")
	}

	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := s.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
